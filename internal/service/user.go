package service

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
	"HelpDesk/utils"
	"errors"

	"gorm.io/gorm"
)

// CreateUser hashes the password and creates a user.
func CreateUser(user *model.User) error {
	user.Password = utils.GetPwd(user.Password)
	if err := repo.Db.Create(user).Error; err != nil {
		return err
	}
	return nil
}

// FindByUsername returns a user with role preloaded.
func FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := repo.Db.Preload("Role").
		Where("user_name = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUser returns a user by id with role and department preloaded.
func GetUser(id uint64) (*model.User, error) {
	var user model.User
	err := repo.Db.Preload("Role").
		Preload("Department").
		Preload("Position").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CheckPassword verifies a user's password.
func CheckPassword(username, password string) error {
	user, err := FindByUsername(username)
	if err != nil {
		return err
	}
	if !utils.CheckPwd(password, user.Password) {
		return errors.New("password error")
	}
	return nil
}

// ListUsers returns all users with their references preloaded.
func ListUsers() ([]model.User, error) {
	var users []model.User
	err := repo.Db.Preload("Role").
		Preload("Department").
		Preload("Position").
		Order("last_name").
		Find(&users).Error
	return users, err
}

// UpdateUserRefs updates a user's role, department and position.
func UpdateUserRefs(id, roleID, departmentID, positionID uint64) (*model.User, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if roleID != 0 {
		updates["role_id"] = roleID
	}
	if departmentID != 0 {
		updates["department_id"] = departmentID
	}
	if positionID != 0 {
		updates["position_id"] = positionID
	}
	if len(updates) > 0 {
		if err := repo.Db.Model(&model.User{ID: user.ID}).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return GetUser(id)
}

// ListPerformers returns users holding the moderator role; they are the
// assignable group-order performers.
func ListPerformers() ([]model.User, error) {
	var users []model.User
	err := repo.Db.
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", string(model.RoleModerator)).
		Order("users.last_name").
		Find(&users).Error
	return users, err
}

package service

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
	"errors"

	"gorm.io/gorm"
)

// SeedRoles inserts the fixed role set when missing.
func SeedRoles() error {
	for _, name := range []model.RoleName{model.RoleAdmin, model.RoleModerator, model.RoleUser} {
		var role model.Role
		err := repo.Db.Where("name = ?", string(name)).First(&role).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := repo.Db.Create(&model.Role{Name: string(name)}).Error; err != nil {
			return err
		}
	}
	return nil
}

// FindRoleByName returns a role record by its name.
func FindRoleByName(name model.RoleName) (*model.Role, error) {
	var role model.Role
	if err := repo.Db.Where("name = ?", string(name)).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

// Reference CRUD. Each entity follows the same shape: create, list
// newest-last, update name/description, delete by id.

func CreateDepartment(name, description string, organizationID *uint64) (*model.Department, error) {
	department := &model.Department{Name: name, Description: description, OrganizationID: organizationID}
	if err := repo.Db.Create(department).Error; err != nil {
		return nil, err
	}
	return department, nil
}

func ListDepartments() ([]model.Department, error) {
	var departments []model.Department
	err := repo.Db.Preload("Organization").Order("name").Find(&departments).Error
	return departments, err
}

func UpdateDepartment(id uint64, name, description string, organizationID *uint64) error {
	res := repo.Db.Model(&model.Department{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":            name,
		"description":     description,
		"organization_id": organizationID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteDepartment(id uint64) error {
	res := repo.Db.Delete(&model.Department{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateOrganization(name, description string) (*model.Organization, error) {
	organization := &model.Organization{Name: name, Description: description}
	if err := repo.Db.Create(organization).Error; err != nil {
		return nil, err
	}
	return organization, nil
}

func ListOrganizations() ([]model.Organization, error) {
	var organizations []model.Organization
	err := repo.Db.Order("name").Find(&organizations).Error
	return organizations, err
}

func DeleteOrganization(id uint64) error {
	res := repo.Db.Delete(&model.Organization{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreatePosition(name, description string, chief bool) (*model.Position, error) {
	position := &model.Position{Name: name, Description: description, Chief: chief}
	if err := repo.Db.Create(position).Error; err != nil {
		return nil, err
	}
	return position, nil
}

func ListPositions() ([]model.Position, error) {
	var positions []model.Position
	err := repo.Db.Order("name").Find(&positions).Error
	return positions, err
}

func DeletePosition(id uint64) error {
	res := repo.Db.Delete(&model.Position{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateService(name, description string) (*model.Service, error) {
	service := &model.Service{Name: name, Description: description}
	if err := repo.Db.Create(service).Error; err != nil {
		return nil, err
	}
	return service, nil
}

func ListServices() ([]model.Service, error) {
	var services []model.Service
	err := repo.Db.Order("name").Find(&services).Error
	return services, err
}

func DeleteService(id uint64) error {
	res := repo.Db.Delete(&model.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateTheme(userID uint64, name, description string) (*model.ThemeConsultation, error) {
	theme := &model.ThemeConsultation{Name: name, Description: description, UserID: userID}
	if err := repo.Db.Create(theme).Error; err != nil {
		return nil, err
	}
	return theme, nil
}

func ListThemes() ([]model.ThemeConsultation, error) {
	var themes []model.ThemeConsultation
	err := repo.Db.Order("name").Find(&themes).Error
	return themes, err
}

func DeleteTheme(id uint64) error {
	res := repo.Db.Delete(&model.ThemeConsultation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func CreateVersion(userID uint64, version, userDescription, adminDescription string) (*model.Version, error) {
	record := &model.Version{
		Version:          version,
		UserDescription:  userDescription,
		AdminDescription: adminDescription,
		UserID:           userID,
	}
	if err := repo.Db.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func ListVersions() ([]model.Version, error) {
	var versions []model.Version
	err := repo.Db.Order("created_at DESC").Find(&versions).Error
	return versions, err
}

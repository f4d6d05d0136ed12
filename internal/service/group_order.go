package service

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
	"errors"

	"gorm.io/gorm"
)

// CreateGroupOrder opens a new group order in StatusInWork, assigned to
// a performer holding moderator capability.
func CreateGroupOrder(name, description string, performerID uint64) (*model.GroupOrder, error) {
	performer, err := GetUser(performerID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !model.RoleName(performer.Role.Name).IsModerator() {
		return nil, ErrForbidden
	}
	group := &model.GroupOrder{
		Name:        name,
		Description: description,
		Status:      string(StatusInWork),
		PerformerID: performer.ID,
	}
	if err := repo.Db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// GetGroupOrder loads a group order with its orders and results.
func GetGroupOrder(id uint64) (*model.GroupOrder, error) {
	var group model.GroupOrder
	err := repo.Db.
		Preload("Orders").
		Preload("Results").
		Preload("Services").
		Where("id = ?", id).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &group, nil
}

// UpdateGroupOrder edits title, description and performer.
func UpdateGroupOrder(id uint64, name, description string, performerID uint64) (*model.GroupOrder, error) {
	group, err := GetGroupOrder(id)
	if err != nil {
		return nil, err
	}
	performer, err := GetUser(performerID)
	if err != nil {
		return nil, ErrNotFound
	}
	if !model.RoleName(performer.Role.Name).IsModerator() {
		return nil, ErrForbidden
	}
	if err := repo.Db.Model(&model.GroupOrder{ID: group.ID}).Updates(map[string]interface{}{
		"name":         name,
		"description":  description,
		"performer_id": performer.ID,
	}).Error; err != nil {
		return nil, err
	}
	return GetGroupOrder(id)
}

// ListGroupOrders returns group orders newest first with an optional
// status filter.
func ListGroupOrders(filter string) ([]model.GroupOrder, error) {
	query := repo.Db.Model(&model.GroupOrder{}).
		Preload("Orders").
		Preload("Results").
		Order("created_at DESC")
	if filter != "" {
		status, ok := ParseStatus(filter)
		if !ok || !status.Storable() {
			return nil, ErrNotFound
		}
		query = query.Where("status = ?", string(status))
	}
	var groups []model.GroupOrder
	if err := query.Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// ChangeGroupOrderStatus runs the status state machine for one group
// order inside a single transaction: read, guard, write.
func ChangeGroupOrderStatus(id uint64, target string) (*model.GroupOrder, error) {
	status, ok := ParseStatus(target)
	if !ok {
		return nil, ErrNotFound
	}
	var group model.GroupOrder
	err := repo.Db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&group).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var positive int64
		if err := tx.Model(&model.Result{}).
			Where("group_order_id = ? AND positive = ?", group.ID, true).
			Count(&positive).Error; err != nil {
			return err
		}
		if err := ValidateTransition(Status(group.Status), status, positive); err != nil {
			return err
		}
		if err := tx.Model(&model.GroupOrder{ID: group.ID}).
			Update("status", string(status)).Error; err != nil {
			return err
		}
		group.Status = string(status)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// AttachOrder puts an ungrouped order into a group order. Attachment is
// one-way: a grouped order stays grouped and its creator loses edit
// rights over it.
func AttachOrder(orderID, groupOrderID uint64) error {
	return repo.Db.Transaction(func(tx *gorm.DB) error {
		var group model.GroupOrder
		if err := tx.Where("id = ?", groupOrderID).First(&group).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var order model.Order
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if order.GroupOrderID != nil {
			return ErrConflict
		}
		return tx.Model(&model.Order{}).
			Where("id = ?", order.ID).
			Update("group_order_id", group.ID).Error
	})
}

// AddResult attaches an outcome record to a group order.
func AddResult(groupOrderID uint64, name, description string, positive bool) (*model.Result, error) {
	group, err := GetGroupOrder(groupOrderID)
	if err != nil {
		return nil, err
	}
	result := &model.Result{
		Name:         name,
		Description:  description,
		Positive:     positive,
		GroupOrderID: group.ID,
	}
	if err := repo.Db.Create(result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateResult edits an existing result.
func UpdateResult(id uint64, name, description string, positive bool) (*model.Result, error) {
	var result model.Result
	if err := repo.Db.Where("id = ?", id).First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := repo.Db.Model(&result).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
		"positive":    positive,
	}).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// SetGroupOrderServices replaces the services linked to a group order.
func SetGroupOrderServices(groupOrderID uint64, serviceIDs []uint64) error {
	group, err := GetGroupOrder(groupOrderID)
	if err != nil {
		return err
	}
	var services []model.Service
	if len(serviceIDs) > 0 {
		if err := repo.Db.Where("id IN ?", serviceIDs).Find(&services).Error; err != nil {
			return err
		}
		if len(services) != len(serviceIDs) {
			return ErrNotFound
		}
	}
	return repo.Db.Model(group).Association("Services").Replace(services)
}

package service

import (
	"HelpDesk/internal/repo"
	"HelpDesk/model"
	"errors"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

// CreateOrder registers a new support order for its creator.
func CreateOrder(userID uint64, name, description string) (*model.Order, error) {
	order := &model.Order{
		Name:        name,
		Description: description,
		UserID:      userID,
	}
	if err := repo.Db.Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder loads an order visible to the caller: its creator, or any
// moderator.
func GetOrder(id, userID uint64, role model.RoleName) (*model.Order, error) {
	var order model.Order
	query := repo.Db.Preload("Files").Preload("GroupOrder").Where("id = ?", id)
	if !role.IsModerator() {
		query = query.Where("user_id = ?", userID)
	}
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetOrderWithFiles loads an order and its files without access checks;
// callers on the upload path have already authenticated.
func GetOrderWithFiles(id uint64) (*model.Order, error) {
	var order model.Order
	if err := repo.Db.Preload("Files").Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// getEditableOrder loads an order through the creator-edit clause: the
// caller must be the creator and the order must not belong to a group.
// The group_order_id IS NULL filter is the invariant making grouped
// orders read-only for their creators.
func getEditableOrder(id, userID uint64) (*model.Order, error) {
	var order model.Order
	err := repo.Db.
		Where("id = ? AND user_id = ? AND group_order_id IS NULL", id, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetEditableOrder exposes the creator-edit lookup for the edit form.
func GetEditableOrder(id, userID uint64) (*model.Order, error) {
	return getEditableOrder(id, userID)
}

// UpdateOrder edits an order's title and description via the
// creator-edit path.
func UpdateOrder(id, userID uint64, name, description string) (*model.Order, error) {
	order, err := getEditableOrder(id, userID)
	if err != nil {
		return nil, err
	}
	order.Name = name
	order.Description = description
	if err := repo.Db.Model(order).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
	}).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns orders visible to the caller, newest first, with an
// optional effective-status filter. "new" selects ungrouped orders; any
// other status selects orders whose group carries it.
func ListOrders(userID uint64, role model.RoleName, filter string) ([]model.Order, error) {
	query := repo.Db.Model(&model.Order{}).
		Preload("Files").
		Preload("GroupOrder").
		Order("orders.created_at DESC")
	if !role.IsModerator() {
		query = query.Where("orders.user_id = ?", userID)
	}
	if filter != "" {
		status, ok := ParseStatus(filter)
		if !ok {
			return nil, ErrNotFound
		}
		if status == StatusNew {
			query = query.Where("orders.group_order_id IS NULL")
		} else {
			query = query.
				Joins("JOIN group_orders ON group_orders.id = orders.group_order_id").
				Where("group_orders.status = ?", string(status))
		}
	}
	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteOrder removes an order via the creator-edit path, files first.
func DeleteOrder(ctx context.Context, id, userID uint64) error {
	order, err := getEditableOrder(id, userID)
	if err != nil {
		return err
	}
	if err := DeleteOrderFiles(ctx, order); err != nil {
		return err
	}
	return repo.Db.Delete(&model.Order{}, order.ID).Error
}

// DeleteOrderFilesForCreator deletes the files of an editable order.
func DeleteOrderFilesForCreator(ctx context.Context, id, userID uint64) error {
	order, err := getEditableOrder(id, userID)
	if err != nil {
		return err
	}
	return DeleteOrderFiles(ctx, order)
}

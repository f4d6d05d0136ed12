package model

import "time"

type Order struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(2048);not null" json:"description"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	// An order is editable by its creator only while GroupOrderID is null.
	GroupOrderID *uint64     `gorm:"column:group_order_id;index" json:"group_order_id,omitempty"`
	GroupOrder   *GroupOrder `gorm:"foreignKey:GroupOrderID;references:ID" json:"group_order,omitempty"`

	Files []File `gorm:"foreignKey:OrderID;references:ID" json:"files,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Order) TableName() string {
	return "orders"
}

package model

import "time"

type GroupOrder struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(512);not null;default:''" json:"description"`

	Status      string `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
	WithSupport bool   `gorm:"column:with_support;not null;default:false" json:"with_support"`

	PerformerID uint64 `gorm:"column:performer_id;not null;index" json:"performer_id"`
	Performer   User   `gorm:"foreignKey:PerformerID;references:ID" json:"-"`

	Orders  []Order  `gorm:"foreignKey:GroupOrderID;references:ID" json:"orders,omitempty"`
	Results []Result `gorm:"foreignKey:GroupOrderID;references:ID" json:"results,omitempty"`

	Services []Service `gorm:"many2many:group_order_services" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (GroupOrder) TableName() string {
	return "group_orders"
}

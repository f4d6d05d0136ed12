package model

import "time"

type Result struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:text;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Positive    bool   `gorm:"column:positive;not null;default:false" json:"positive"`

	GroupOrderID uint64 `gorm:"column:group_order_id;not null;index" json:"group_order_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Result) TableName() string {
	return "results"
}

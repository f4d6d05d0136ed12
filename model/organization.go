package model

import "time"

type Organization struct {
	ID uint64 `gorm:"primaryKey"`

	Name        string `gorm:"column:name;type:varchar(512);not null"`
	Description string `gorm:"column:description;type:varchar(255);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (Organization) TableName() string {
	return "organizations"
}

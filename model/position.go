package model

import "time"

type Position struct {
	ID uint64 `gorm:"primaryKey"`

	Name        string `gorm:"column:name;type:varchar(512);not null;unique"`
	Description string `gorm:"column:description;type:varchar(255);not null;default:''"`
	Chief       bool   `gorm:"column:chief;not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (Position) TableName() string {
	return "positions"
}

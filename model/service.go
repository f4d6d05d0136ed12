package model

import "time"

type Service struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(255);not null;unique" json:"name"`
	Description string `gorm:"column:description;type:varchar(512);not null;default:''" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Service) TableName() string {
	return "services"
}

package model

import "time"

type Recommendation struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string `gorm:"column:description;type:varchar(2048);not null;default:''" json:"description"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Recommendation) TableName() string {
	return "recommendations"
}

package model

import "time"

type ThemeConsultation struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"column:name;type:varchar(255);not null;unique" json:"name"`
	Description string `gorm:"column:description;type:varchar(255);not null;default:''" json:"description"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (ThemeConsultation) TableName() string {
	return "theme_consultations"
}

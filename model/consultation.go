package model

import "time"

type Consultation struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description  string `gorm:"column:description;type:varchar(2048);not null;default:''" json:"description"`
	Organization string `gorm:"column:organization;type:varchar(512);not null" json:"organization"`
	RegNumber    string `gorm:"column:reg_number;type:varchar(255);not null;default:''" json:"reg_number"`
	Person       string `gorm:"column:person;type:varchar(255);not null;default:''" json:"person"`

	Status bool `gorm:"column:status;not null;default:true" json:"status"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID;references:ID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Consultation) TableName() string {
	return "consultations"
}

package model

import "time"

type Department struct {
	ID uint64 `gorm:"primaryKey"`

	Name        string `gorm:"column:name;type:varchar(255);not null"`
	Description string `gorm:"column:description;type:varchar(255);not null;default:''"`

	OrganizationID *uint64       `gorm:"column:organization_id;index"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (Department) TableName() string {
	return "departments"
}

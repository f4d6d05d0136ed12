package model

import "time"

// Version is a release note shown on the portal landing page.
type Version struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Version          string `gorm:"column:version;type:varchar(255);not null" json:"version"`
	UserDescription  string `gorm:"column:user_description;type:varchar(2048);not null" json:"user_description"`
	AdminDescription string `gorm:"column:admin_description;type:varchar(2048);not null" json:"admin_description"`

	UserID uint64 `gorm:"column:user_id;not null;index" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name.
func (Version) TableName() string {
	return "versions"
}

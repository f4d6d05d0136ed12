package model

import "time"

// RoleName is the capability attached to a user and threaded through
// services instead of being read from ambient session state.
type RoleName string

const (
	RoleAdmin     RoleName = "admin"
	RoleModerator RoleName = "moderator"
	RoleUser      RoleName = "user"
)

// IsModerator reports whether the role carries moderator capability.
func (r RoleName) IsModerator() bool {
	return r == RoleModerator || r == RoleAdmin
}

// IsAdmin reports whether the role carries admin capability.
func (r RoleName) IsAdmin() bool {
	return r == RoleAdmin
}

type Role struct {
	ID uint64 `gorm:"primaryKey"`

	Name        string `gorm:"column:name;type:varchar(100);not null;unique"`
	Description string `gorm:"column:description;type:varchar(255);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (Role) TableName() string {
	return "roles"
}

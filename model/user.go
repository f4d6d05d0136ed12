package model

import (
	"fmt"
	"time"
)

type User struct {
	ID uint64 `gorm:"primaryKey"`

	UserName string `gorm:"column:user_name;type:varchar(50);not null;unique"`

	Password string `gorm:"column:pass_word;type:varchar(255);not null" json:"-"`

	Name       string `gorm:"column:name;type:varchar(100);not null"`
	SecondName string `gorm:"column:second_name;type:varchar(100);not null;default:''"`
	LastName   string `gorm:"column:last_name;type:varchar(100);not null;default:''"`

	Email         string `gorm:"column:email;type:varchar(100);not null;default:''"`
	Phone         string `gorm:"column:phone;type:varchar(50);not null;default:''"`
	InternalPhone string `gorm:"column:internal_phone;type:varchar(50);not null;default:''"`
	Description   string `gorm:"column:description;type:varchar(255);not null;default:''"`

	RoleID uint64 `gorm:"column:role_id;not null;index"`
	Role   Role   `gorm:"foreignKey:RoleID;references:ID"`

	DepartmentID uint64     `gorm:"column:department_id;not null;index"`
	Department   Department `gorm:"foreignKey:DepartmentID;references:ID"`

	PositionID uint64   `gorm:"column:position_id;not null;index"`
	Position   Position `gorm:"foreignKey:PositionID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}

// FullName returns "last first second" for display.
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s %s", u.LastName, u.Name, u.SecondName)
}

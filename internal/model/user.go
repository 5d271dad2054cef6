package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of account roles
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleStandardUser  Role = "STANDARD_USER"
)

// IsValid reports whether the role belongs to the closed enumeration
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleStandardUser:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	FirstName    string     `gorm:"column:first_name;not null"`
	LastName     string     `gorm:"column:last_name;not null"`
	Email        string     `gorm:"column:email;unique;not null"`
	Password     string     `gorm:"column:password;not null"`
	Role         Role       `gorm:"column:role;type:varchar(32);default:'STANDARD_USER';not null"`
	Active       bool       `gorm:"column:active;default:true;not null"`
	LastAccessAt *time.Time `gorm:"column:last_access_at"`
}

// IsAdministrator reports whether the user holds the administrator role
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}

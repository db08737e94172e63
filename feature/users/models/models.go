package models

import "time"

// Role determines what a user may do: admins manage users, users edit
// inventory, readers only view it.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleUser   Role = "user"
	RoleReader Role = "reader"
)

// Roles lists the valid roles.
var Roles = []Role{RoleAdmin, RoleUser, RoleReader}

// IsValidRole reports whether role is a known role.
func IsValidRole(role Role) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account that can sign in to the tracker. PasswordHash holds a
// bcrypt hash, never the clear-text password.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Username     string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"size:128;not null" json:"-"`
	Role         Role      `gorm:"size:16;not null" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides the gorm table name.
func (User) TableName() string {
	return "users"
}

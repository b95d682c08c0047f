package models

import "time"

// Role gates access to the editor studio. A user carries exactly one role.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleEditor  Role = "editor"
	RolePodcast Role = "podcast"
	RoleReader  Role = "reader"
)

// CanCompose reports whether the role may enter the editor studio.
func (r Role) CanCompose() bool {
	switch r {
	case RoleAdmin, RoleEditor, RolePodcast:
		return true
	}
	return false
}

// UserModel is one member of the media organization.
type UserModel struct {
	Base
	Name          string     `json:"name"`
	Email         string     `json:"email"    gorm:"uniqueIndex;not null"`
	Password      string     `json:"-"        gorm:"not null"`
	Role          Role       `json:"role"     gorm:"default:reader;index"`
	LastLoginTime *time.Time `json:"last_login_time"`
	LastLoginIP   string     `json:"last_login_ip"`
}

func (UserModel) TableName() string { return "users" }

package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Manages employees and holidays
	RoleUser  Role = "user"  // Regular employee account
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package model

import (
	"github.com/google/uuid"
)

// User represents a staff member who can sign in
type User struct {
	Base
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	FullName     string  `json:"full_name" db:"full_name"`
	Role         string  `json:"role" db:"role"`
	Department   *string `json:"department" db:"department"`
	Email        *string `json:"email,omitempty" db:"email"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HomeDepartment returns the user's department or "" when unset.
func (u *User) HomeDepartment() string {
	if u.Department == nil {
		return ""
	}
	return *u.Department
}

// CreateUserRequest represents user creation parameters
type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required,max=64"`
	Password   string  `json:"password" binding:"required,min=8"`
	FullName   string  `json:"full_name" binding:"required"`
	Role       string  `json:"role" binding:"required,role"`
	Department *string `json:"department" binding:"omitempty,department"`
	Email      *string `json:"email" binding:"omitempty,email"`
}

// UserRef is the minimal view of a user used by assignment pickers.
type UserRef struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"`
	FullName   string    `json:"full_name" db:"full_name"`
	Department *string   `json:"department" db:"department"`
}

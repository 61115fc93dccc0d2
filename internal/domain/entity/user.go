package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	StudentID string
	Phone     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicView is the shape of a user safe to return to clients.
type PublicView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Public() PublicView {
	return PublicView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

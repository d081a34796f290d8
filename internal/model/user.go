package model

import "time"

const (
	// RoleUser is the default role for signed-in users.
	RoleUser = "user"
	// RoleAdmin unlocks the admin surfaces.
	RoleAdmin = "admin"
)

// User represents a marketplace user. Email is the sole identity key across
// all entities; records are upserted on every sign-in.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	Image     string    `json:"image" gorm:"size:512"`
	Role      string    `json:"role" gorm:"size:50;default:'user'"`
	CreatedAt time.Time `json:"createdAt"` // set once on first sign-in
	LastLogin time.Time `json:"lastLogin"` // refreshed on every sign-in
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

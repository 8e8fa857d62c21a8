package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"John Doe"`
	Email     string    `json:"email" db:"email" example:"john@example.com"`
	Password  string    `json:"-" db:"password"` // hashed, excluded from JSON
	Role      RoleType  `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}

// UserRef carries the creator/student fields exposed on joined reads.
// Only name and email are ever surfaced, never the full record.
type UserRef struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
}

// user.go - Defines the User model for the database

package models // Declares the package name

import (
	"time"

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM (for the BeforeCreate hook)
)

type User struct { // User struct represents a user in the database
	ID        string    `gorm:"primaryKey;size:36" json:"id"`              // Unique user ID (UUID primary key)
	Name      string    `gorm:"size:50;not null" json:"name"`              // Display name
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"` // User's email (must be unique, cannot be null)
	Password  string    `gorm:"size:255;not null" json:"-"`                // Hashed password (never serialized)
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns a UUID so IDs are opaque and generated app-side.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

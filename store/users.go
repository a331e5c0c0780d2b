// users.go - Credential store: user persistence and lookup

package store

import (
	"errors"

	"go-gym-tracker/database"
	"go-gym-tracker/models"

	"gorm.io/gorm"
)

// ErrDuplicateEmail signals a registration attempt with an email that is
// already taken (HTTP 409).
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound signals a record that is absent or owned by someone else
// (HTTP 404).
var ErrNotFound = errors.New("record not found")

// CreateUser persists a new user. The Password field must already be hashed.
func CreateUser(user *models.User) error {
	// Cheap pre-check for the common case; the unique index still closes the race
	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	if err := database.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UserByEmail looks a user up by email for login.
func UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserByID resolves the authenticated user on protected requests.
func UserByID(id string) (*models.User, error) {
	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

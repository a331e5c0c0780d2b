// workouts.go - Workout store: owner-scoped CRUD and list filtering
//
// Every query here includes the owner's user ID, so a workout belonging to
// another user behaves exactly like a missing one.

package store

import (
	"errors"
	"strings"
	"time"

	"go-gym-tracker/database"
	"go-gym-tracker/models"

	"gorm.io/gorm"
)

// WorkoutFilter narrows ListWorkouts. All fields are optional and AND-combined.
type WorkoutFilter struct {
	Exercise  string     // Case-insensitive substring of the exercise name
	StartDate *time.Time // Inclusive lower bound on the workout date
	EndDate   *time.Time // Inclusive upper bound on the workout date
}

// CreateWorkout persists a new workout for its owner.
func CreateWorkout(workout *models.Workout) error {
	return database.DB.Create(workout).Error
}

// WorkoutByID fetches one workout, scoped to its owner.
func WorkoutByID(ownerID, id string) (*models.Workout, error) {
	var workout models.Workout
	err := database.DB.Where("id = ? AND user_id = ?", id, ownerID).First(&workout).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &workout, nil
}

// ListWorkouts returns the owner's workouts matching the filter, newest date
// first with creation time as the tie-break.
func ListWorkouts(ownerID string, filter WorkoutFilter) ([]models.Workout, error) {
	query := database.DB.Where("user_id = ?", ownerID)
	if filter.Exercise != "" {
		// LOWER+LIKE behaves the same on sqlite and postgres
		pattern := "%" + strings.ToLower(filter.Exercise) + "%"
		query = query.Where("LOWER(exercise_name) LIKE ?", pattern)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	workouts := []models.Workout{}
	err := query.Order("date DESC").Order("created_at DESC").Find(&workouts).Error
	return workouts, err
}

// UpdateWorkout applies a partial update to an owned workout. The lookup and
// the ownership check are a single scoped query; ownership itself is immutable
// after creation, so no field in changes may touch user_id.
func UpdateWorkout(ownerID, id string, changes map[string]any) (*models.Workout, error) {
	workout, err := WorkoutByID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return workout, nil
	}
	if err := database.DB.Model(workout).Updates(changes).Error; err != nil {
		return nil, err
	}
	// Re-read so the caller sees exactly what was stored, timestamps included
	return WorkoutByID(ownerID, id)
}

// DeleteWorkout removes an owned workout. A second delete of the same ID
// reports not-found.
func DeleteWorkout(ownerID, id string) error {
	result := database.DB.Where("id = ? AND user_id = ?", id, ownerID).Delete(&models.Workout{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

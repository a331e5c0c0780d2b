// workout.go - Defines the Workout model for the database

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workout struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`                                                                 // Unique workout ID (UUID primary key)
	UserID       string    `gorm:"size:36;not null;index:idx_workouts_user_date,priority:1" json:"userId"`                       // Foreign key to users table
	User         User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`                     // Deleting a user removes their workouts
	ExerciseName string    `gorm:"size:100;not null" json:"exerciseName"`                                                        // e.g. "Bench Press"
	Sets         int       `gorm:"not null" json:"sets"`                                                                         // 1-100
	Reps         int       `gorm:"not null" json:"reps"`                                                                         // 1-1000
	Weight       float64   `gorm:"not null" json:"weight"`                                                                       // 0-10000, fractional allowed
	Date         time.Time `gorm:"not null;index:idx_workouts_user_date,priority:2,sort:desc" json:"date"`                       // Workout date, defaults to creation time
	Notes        string    `gorm:"size:500" json:"notes"`                                                                        // Optional free text
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.Date.IsZero() { // Date defaults to creation time when omitted
		w.Date = time.Now()
	}
	return nil
}

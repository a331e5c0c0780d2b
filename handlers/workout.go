// workout.go - Handles the owner-scoped workout CRUD endpoints

package handlers

import (
	"errors"
	"net/http"

	"go-gym-tracker/models"
	"go-gym-tracker/store"
	"go-gym-tracker/validation"

	"github.com/gin-gonic/gin"
)

// CreateWorkout handles POST /api/workouts.
func CreateWorkout(c *gin.Context) {
	var input validation.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		failFields(c, errs)
		return
	}

	workout := models.Workout{
		UserID:       currentUserID(c),
		ExerciseName: input.ExerciseName,
		Sets:         input.Sets,
		Reps:         input.Reps,
		Weight:       *input.Weight,
		Notes:        input.Notes,
	}
	if input.Date != "" {
		date, err := validation.ParseDate(input.Date)
		if err != nil {
			failFields(c, validation.FieldErrors{"date": validation.BadDateMessage})
			return
		}
		workout.Date = date
	}

	if err := store.CreateWorkout(&workout); err != nil {
		serverError(c, err, "Server error while creating workout")
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts handles GET /api/workouts with optional exercise/startDate/endDate filters.
func ListWorkouts(c *gin.Context) {
	filter := store.WorkoutFilter{Exercise: c.Query("exercise")}

	if raw := c.Query("startDate"); raw != "" {
		date, err := validation.ParseDate(raw)
		if err != nil {
			failFields(c, validation.FieldErrors{"startDate": validation.BadDateMessage})
			return
		}
		filter.StartDate = &date
	}
	if raw := c.Query("endDate"); raw != "" {
		date, err := validation.ParseEndDate(raw)
		if err != nil {
			failFields(c, validation.FieldErrors{"endDate": validation.BadDateMessage})
			return
		}
		filter.EndDate = &date
	}

	workouts, err := store.ListWorkouts(currentUserID(c), filter)
	if err != nil {
		serverError(c, err, "Server error while fetching workouts")
		return
	}

	c.JSON(http.StatusOK, workouts)
}

// GetWorkout handles GET /api/workouts/:id.
func GetWorkout(c *gin.Context) {
	workout, err := store.WorkoutByID(currentUserID(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Workout not found")
			return
		}
		serverError(c, err, "Server error while fetching workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout handles PUT /api/workouts/:id. Only fields present in the
// body are changed.
func UpdateWorkout(c *gin.Context) {
	var input validation.WorkoutUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		failFields(c, errs)
		return
	}

	changes := map[string]any{}
	if input.ExerciseName != nil {
		changes["exercise_name"] = *input.ExerciseName
	}
	if input.Sets != nil {
		changes["sets"] = *input.Sets
	}
	if input.Reps != nil {
		changes["reps"] = *input.Reps
	}
	if input.Weight != nil {
		changes["weight"] = *input.Weight
	}
	if input.Notes != nil {
		changes["notes"] = *input.Notes
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			failFields(c, validation.FieldErrors{"date": validation.BadDateMessage})
			return
		}
		changes["date"] = date
	}

	workout, err := store.UpdateWorkout(currentUserID(c), c.Param("id"), changes)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Workout not found")
			return
		}
		serverError(c, err, "Server error while updating workout")
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout handles DELETE /api/workouts/:id.
func DeleteWorkout(c *gin.Context) {
	if err := store.DeleteWorkout(currentUserID(c), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusNotFound, "Workout not found")
			return
		}
		serverError(c, err, "Server error while deleting workout")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

// validation.go - Single source of truth for field constraints
//
// Both the API handlers and the terminal client validate input through this
// package, so the bounds can never drift between the two layers.

package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Field bounds. Referenced by the struct tags below and by client-side help text.
const (
	NameMin     = 2
	NameMax     = 50
	PasswordMin = 6
	ExerciseMin = 2
	ExerciseMax = 100
	SetsMin     = 1
	SetsMax     = 100
	RepsMin     = 1
	RepsMax     = 1000
	WeightMin   = 0
	WeightMax   = 10000
	NotesMax    = 500
)

// DateLayout is the calendar-date input format. RFC 3339 timestamps are also accepted.
const DateLayout = "2006-01-02"

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// WorkoutInput is the create payload. Weight is a pointer so that an explicit
// 0 (bodyweight exercise) is distinguishable from a missing field.
type WorkoutInput struct {
	ExerciseName string   `json:"exerciseName" validate:"required,min=2,max=100"`
	Sets         int      `json:"sets" validate:"min=1,max=100"`
	Reps         int      `json:"reps" validate:"min=1,max=1000"`
	Weight       *float64 `json:"weight" validate:"required,min=0,max=10000"`
	Date         string   `json:"date"`
	Notes        string   `json:"notes" validate:"max=500"`
}

// WorkoutUpdate is the partial-update payload: only non-nil fields are applied.
type WorkoutUpdate struct {
	ExerciseName *string  `json:"exerciseName" validate:"omitempty,min=2,max=100"`
	Sets         *int     `json:"sets" validate:"omitempty,min=1,max=100"`
	Reps         *int     `json:"reps" validate:"omitempty,min=1,max=1000"`
	Weight       *float64 `json:"weight" validate:"omitempty,min=0,max=10000"`
	Date         *string  `json:"date"`
	Notes        *string  `json:"notes" validate:"omitempty,max=500"`
}

// FieldErrors maps a JSON field name to a human-readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	for _, msg := range e {
		return msg
	}
	return "validation failed"
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check validates a struct against its tags and returns per-field messages,
// or nil when everything passes.
func Check(v any) FieldErrors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	errs := FieldErrors{}
	for _, fe := range err.(validator.ValidationErrors) {
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = message(fe.Field(), fe.Tag())
		}
	}
	return errs
}

func message(field, tag string) string {
	switch field {
	case "name":
		if tag == "required" {
			return "Name is required"
		}
		return "Name must be between 2 and 50 characters"
	case "email":
		if tag == "required" {
			return "Email is required"
		}
		return "Please enter a valid email"
	case "password":
		if tag == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters"
	case "exerciseName":
		if tag == "required" {
			return "Exercise name is required"
		}
		return "Exercise name must be between 2 and 100 characters"
	case "sets":
		return "Sets must be between 1 and 100"
	case "reps":
		return "Reps must be between 1 and 1000"
	case "weight":
		if tag == "required" {
			return "Weight is required"
		}
		return "Weight must be between 0 and 10000"
	case "notes":
		return "Notes cannot exceed 500 characters"
	}
	return "Invalid value"
}

// BadDateMessage is reused for body and query-string date failures.
const BadDateMessage = "Date must be a valid date"

// ParseDate accepts a calendar date (2006-01-02) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ParseEndDate parses an inclusive upper bound: a bare calendar date is
// extended to the last instant of that day so that same-day workouts match.
func ParseEndDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	return time.Parse(time.RFC3339, s)
}

func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
}

func (in *LoginInput) Normalize() {
	in.Email = strings.TrimSpace(in.Email)
}

func (in *WorkoutInput) Normalize() {
	in.ExerciseName = strings.TrimSpace(in.ExerciseName)
	in.Notes = strings.TrimSpace(in.Notes)
	in.Date = strings.TrimSpace(in.Date)
}

func (in *WorkoutUpdate) Normalize() {
	if in.ExerciseName != nil {
		*in.ExerciseName = strings.TrimSpace(*in.ExerciseName)
	}
	if in.Notes != nil {
		*in.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Date != nil {
		*in.Date = strings.TrimSpace(*in.Date)
	}
}

// Empty reports whether the update carries no fields at all.
func (in *WorkoutUpdate) Empty() bool {
	return in.ExerciseName == nil && in.Sets == nil && in.Reps == nil &&
		in.Weight == nil && in.Date == nil && in.Notes == nil
}

// state.go - Client-side workout list state
//
// The list mirrors the server: changing the filter refetches from the server
// rather than filtering a cached copy, while create/update/delete reconcile
// the local slice with the server's response instead of a full refetch.

package client

import "go-gym-tracker/models"

// Filter holds the raw filter form values. Dates stay as entered (calendar
// date or RFC 3339) and are validated when a query is built.
type Filter struct {
	Exercise  string
	StartDate string
	EndDate   string
}

// WorkoutList is the in-memory workout collection with its active filter.
type WorkoutList struct {
	Items  []models.Workout
	Filter Filter
}

// Refresh replaces the list with a fresh server query for the active filter.
func (l *WorkoutList) Refresh(c *Client) error {
	items, err := c.Workouts(l.Filter)
	if err != nil {
		return err
	}
	l.Items = items
	return nil
}

// SetFilter activates a new filter. A changed filter always triggers a fresh
// server query; an unchanged one is a no-op.
func (l *WorkoutList) SetFilter(c *Client, filter Filter) error {
	if filter == l.Filter {
		return nil
	}
	previous := l.Filter
	l.Filter = filter
	if err := l.Refresh(c); err != nil {
		l.Filter = previous
		return err
	}
	return nil
}

// Add inserts a freshly created workout at the head of the list.
func (l *WorkoutList) Add(workout models.Workout) {
	l.Items = append([]models.Workout{workout}, l.Items...)
}

// Apply replaces the matching workout in place with the server's updated copy.
func (l *WorkoutList) Apply(workout models.Workout) {
	for i := range l.Items {
		if l.Items[i].ID == workout.ID {
			l.Items[i] = workout
			return
		}
	}
}

// Remove drops a deleted workout from the list.
func (l *WorkoutList) Remove(id string) {
	for i := range l.Items {
		if l.Items[i].ID == id {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return
		}
	}
}

// Get returns the workout at a 1-based position, as shown in the list view.
func (l *WorkoutList) Get(position int) (*models.Workout, bool) {
	if position < 1 || position > len(l.Items) {
		return nil, false
	}
	return &l.Items[position-1], true
}

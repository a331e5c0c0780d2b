// state_test.go - Tests for workout list state and filter-driven refetching

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-gym-tracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listServer serves a fixed workout list and counts how many queries arrive.
func listServer(t *testing.T, items []models.Workout, hits *atomic.Int32) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(items)
	}))
	t.Cleanup(server.Close)
	return New(server.URL)
}

func TestSetFilterRefetchesOnlyOnChange(t *testing.T) {
	var hits atomic.Int32
	api := listServer(t, []models.Workout{{ID: "w1", ExerciseName: "Bench Press"}}, &hits)

	list := WorkoutList{}
	require.NoError(t, list.Refresh(api))
	assert.Equal(t, int32(1), hits.Load())
	require.Len(t, list.Items, 1)

	// New filter: fresh server query
	require.NoError(t, list.SetFilter(api, Filter{Exercise: "press"}))
	assert.Equal(t, int32(2), hits.Load())

	// Same filter again: no query
	require.NoError(t, list.SetFilter(api, Filter{Exercise: "press"}))
	assert.Equal(t, int32(2), hits.Load())
}

func TestSetFilterKeepsOldFilterOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	api := New(server.URL)

	list := WorkoutList{Filter: Filter{Exercise: "press"}}
	err := list.SetFilter(api, Filter{Exercise: "squat"})
	require.Error(t, err)
	assert.Equal(t, "press", list.Filter.Exercise, "failed refetch must not switch the active filter")
}

func TestLocalReconcile(t *testing.T) {
	list := WorkoutList{Items: []models.Workout{
		{ID: "w1", ExerciseName: "Bench Press", Weight: 135},
		{ID: "w2", ExerciseName: "Squat", Weight: 185},
	}}

	// Create: inserted at head
	list.Add(models.Workout{ID: "w3", ExerciseName: "Deadlift"})
	require.Len(t, list.Items, 3)
	assert.Equal(t, "w3", list.Items[0].ID)

	// Update: replaced in place, position preserved
	list.Apply(models.Workout{ID: "w1", ExerciseName: "Bench Press", Weight: 140})
	assert.Equal(t, 140.0, list.Items[1].Weight)

	// Unknown ID: no-op
	list.Apply(models.Workout{ID: "missing"})
	require.Len(t, list.Items, 3)

	// Delete: removed
	list.Remove("w2")
	require.Len(t, list.Items, 2)
	list.Remove("w2")
	require.Len(t, list.Items, 2)

	// 1-based lookup for the terminal views
	workout, ok := list.Get(1)
	require.True(t, ok)
	assert.Equal(t, "w3", workout.ID)
	_, ok = list.Get(0)
	assert.False(t, ok)
	_, ok = list.Get(3)
	assert.False(t, ok)
}

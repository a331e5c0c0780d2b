// client_test.go - Tests for the API client against a stub server

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-gym-tracker/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServer returns a test server that records the last request and replies
// with the given status and JSON body.
func stubServer(t *testing.T, status int, body string, lastReq **http.Request) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastReq != nil {
			*lastReq = r.Clone(r.Context())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestLoginParsesAuthResponse(t *testing.T) {
	server := stubServer(t, http.StatusOK,
		`{"user":{"id":"u1","name":"Alice","email":"alice@example.com"},"token":"tok"}`, nil)
	api := New(server.URL)

	resp, err := api.Login("alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "Alice", resp.User.Name)
}

func TestClientSideValidationShortCircuits(t *testing.T) {
	// Server that fails the test if it is ever reached
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input must not reach the server")
	}))
	t.Cleanup(server.Close)
	api := New(server.URL)

	_, err := api.Register("A", "not-an-email", "123")
	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "password")

	_, err = api.CreateWorkout(validation.WorkoutInput{ExerciseName: "X", Sets: 0, Reps: 0})
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "sets")
}

func TestTokenAndFilterOnListRequest(t *testing.T) {
	var lastReq *http.Request
	server := stubServer(t, http.StatusOK, `[]`, &lastReq)
	api := New(server.URL)
	api.Token = "session-token"

	_, err := api.Workouts(Filter{Exercise: "press", StartDate: "2024-01-01"})
	require.NoError(t, err)
	require.NotNil(t, lastReq)
	assert.Equal(t, "Bearer session-token", lastReq.Header.Get("Authorization"))
	assert.Equal(t, "press", lastReq.URL.Query().Get("exercise"))
	assert.Equal(t, "2024-01-01", lastReq.URL.Query().Get("startDate"))
	assert.Empty(t, lastReq.URL.Query().Get("endDate"))
}

func TestFilterDateValidatedLocally(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("bad filter dates must not reach the server")
	}))
	t.Cleanup(server.Close)
	api := New(server.URL)

	_, err := api.Workouts(Filter{StartDate: "yesterday"})
	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "startDate")
}

func TestServerErrorsSurfaceMessage(t *testing.T) {
	server := stubServer(t, http.StatusConflict, `{"message":"Email already registered"}`, nil)
	api := New(server.URL)

	_, err := api.Register("Alice", "alice@example.com", "secret1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Error())
	assert.False(t, apiErr.Unauthorized())
}

func TestServerFieldErrorsSurface(t *testing.T) {
	server := stubServer(t, http.StatusBadRequest, `{"errors":{"sets":"Sets must be between 1 and 100"}}`, nil)
	api := New(server.URL)

	weight := 100.0
	_, err := api.CreateWorkout(validation.WorkoutInput{
		ExerciseName: "Squat", Sets: 3, Reps: 10, Weight: &weight,
	})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Sets must be between 1 and 100", apiErr.Fields["sets"])
}

func TestUnauthorizedDetection(t *testing.T) {
	server := stubServer(t, http.StatusUnauthorized, `{"message":"Invalid or expired token"}`, nil)
	api := New(server.URL)
	api.Token = "stale"

	_, err := api.Workouts(Filter{})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Unauthorized())
}

func TestDeleteSendsNoBody(t *testing.T) {
	var lastReq *http.Request
	server := stubServer(t, http.StatusOK, `{"message":"Workout deleted successfully"}`, &lastReq)
	api := New(server.URL)

	require.NoError(t, api.DeleteWorkout("w1"))
	require.NotNil(t, lastReq)
	assert.Equal(t, http.MethodDelete, lastReq.Method)
	assert.Equal(t, "/api/workouts/w1", lastReq.URL.Path)
}

func TestUpdateSendsOnlyPresentFields(t *testing.T) {
	var captured map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"w1","weight":140}`))
	}))
	t.Cleanup(server.Close)
	api := New(server.URL)

	weight := 140.0
	_, err := api.UpdateWorkout("w1", validation.WorkoutUpdate{Weight: &weight})
	require.NoError(t, err)

	// Absent pointer fields serialize as null and must be skipped server-side;
	// weight is the only non-null field here
	assert.NotEqual(t, "null", string(captured["weight"]))
	assert.Equal(t, "null", string(captured["exerciseName"]))
}

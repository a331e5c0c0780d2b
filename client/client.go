// client.go - HTTP client for the gym tracker API
//
// Inputs are validated with the same validation package the server uses, so a
// request that fails client-side would have failed server-side too.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-gym-tracker/models"
	"go-gym-tracker/validation"
)

// APIError carries the server's status code and message text for display.
type APIError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	for _, msg := range e.Fields {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unauthorized reports whether the session token was rejected, which the
// caller treats as session expiry.
func (e *APIError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// AuthResponse is the register/login payload.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Client talks to one API server, attaching the session token when set.
type Client struct {
	BaseURL string
	Token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Register validates the form fields locally, then creates the account.
func (c *Client) Register(name, email, password string) (*AuthResponse, error) {
	input := validation.RegisterInput{Name: name, Email: email, Password: password}
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		return nil, errs
	}
	var out AuthResponse
	if err := c.do(http.MethodPost, "/api/auth/register", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Login(email, password string) (*AuthResponse, error) {
	input := validation.LoginInput{Email: email, Password: password}
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		return nil, errs
	}
	var out AuthResponse
	if err := c.do(http.MethodPost, "/api/auth/login", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Workouts fetches the filtered list. Dates are checked locally before the
// request goes out.
func (c *Client) Workouts(filter Filter) ([]models.Workout, error) {
	query := url.Values{}
	if filter.Exercise != "" {
		query.Set("exercise", filter.Exercise)
	}
	if filter.StartDate != "" {
		if _, err := validation.ParseDate(filter.StartDate); err != nil {
			return nil, validation.FieldErrors{"startDate": validation.BadDateMessage}
		}
		query.Set("startDate", filter.StartDate)
	}
	if filter.EndDate != "" {
		if _, err := validation.ParseDate(filter.EndDate); err != nil {
			return nil, validation.FieldErrors{"endDate": validation.BadDateMessage}
		}
		query.Set("endDate", filter.EndDate)
	}
	var out []models.Workout
	if err := c.do(http.MethodGet, "/api/workouts", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Workout(id string) (*models.Workout, error) {
	var out models.Workout
	if err := c.do(http.MethodGet, "/api/workouts/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateWorkout(input validation.WorkoutInput) (*models.Workout, error) {
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		return nil, errs
	}
	if input.Date != "" {
		if _, err := validation.ParseDate(input.Date); err != nil {
			return nil, validation.FieldErrors{"date": validation.BadDateMessage}
		}
	}
	var out models.Workout
	if err := c.do(http.MethodPost, "/api/workouts", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateWorkout(id string, input validation.WorkoutUpdate) (*models.Workout, error) {
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		return nil, errs
	}
	if input.Date != nil {
		if _, err := validation.ParseDate(*input.Date); err != nil {
			return nil, validation.FieldErrors{"date": validation.BadDateMessage}
		}
	}
	var out models.Workout
	if err := c.do(http.MethodPut, "/api/workouts/"+id, nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteWorkout(id string) error {
	return c.do(http.MethodDelete, "/api/workouts/"+id, nil, nil, nil)
}

func (c *Client) Health() error {
	return c.do(http.MethodGet, "/api/health", nil, nil, nil)
}

// errorPayload mirrors the server's two error shapes.
type errorPayload struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func (c *Client) do(method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload errorPayload
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Message = payload.Message
			apiErr.Fields = payload.Errors
		}
		return apiErr
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

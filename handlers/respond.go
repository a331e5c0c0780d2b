// respond.go - Shared response and logging helpers for the API handlers

package handlers

import (
	"net/http"
	"os"

	"go-gym-tracker/middleware"
	"go-gym-tracker/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "handlers").Logger()

// fail writes the standard error payload: {"message": "..."}.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// failFields writes per-field validation messages: {"errors": {field: msg}}.
func failFields(c *gin.Context, errs validation.FieldErrors) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// serverError logs the real cause and hides it from the client.
func serverError(c *gin.Context, err error, message string) {
	logger.Error().Err(err).Str("path", c.FullPath()).Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// currentUserID reads the authenticated user ID set by the auth middleware.
func currentUserID(c *gin.Context) string {
	id, _ := c.Get(middleware.UserIDKey)
	userID, _ := id.(string)
	return userID
}

// user.go - Handles user registration, login and the health check

package handlers // Declares the package name

import ( // Import required packages
	"errors"
	"net/http" // HTTP status codes

	"go-gym-tracker/auth"       // Session token issuing
	"go-gym-tracker/models"     // User model
	"go-gym-tracker/store"      // Credential store
	"go-gym-tracker/validation" // Shared field constraints

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Register creates a new account and returns the user with a session token.
func Register(c *gin.Context) {
	var input validation.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.Normalize()
	if errs := validation.Check(input); errs != nil { // Field constraints, before any store call
		failFields(c, errs)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		serverError(c, err, "Server error during registration")
		return
	}

	user := models.User{Name: input.Name, Email: input.Email, Password: string(hash)}
	if err := store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			fail(c, http.StatusConflict, "Email already registered")
			return
		}
		serverError(c, err, "Server error during registration")
		return
	}

	token, err := auth.Issue(user.ID)
	if err != nil {
		serverError(c, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

// Login verifies credentials and returns the user with a fresh session token.
// Unknown email and wrong password produce the same 401.
func Login(c *gin.Context) {
	var input validation.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	input.Normalize()
	if errs := validation.Check(input); errs != nil {
		failFields(c, errs)
		return
	}

	user, err := store.UserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fail(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		serverError(c, err, "Server error during login")
		return
	}
	// bcrypt comparison is constant-time
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.Issue(user.ID)
	if err != nil {
		serverError(c, err, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
}

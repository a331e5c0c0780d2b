// main.go - Entry point for the gym tracker API server

package main // Declares the package name

import ( // Import required packages
	"os"

	"go-gym-tracker/config"     // Project config management
	"go-gym-tracker/database"   // Database connection and setup
	"go-gym-tracker/handlers"   // HTTP handlers for API endpoints
	"go-gym-tracker/middleware" // Middleware (e.g., authentication)

	"github.com/gin-contrib/cors" // CORS middleware for the browser client
	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/rs/zerolog"       // Structured logging
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "main").Logger()

func main() { // Main function, program entry point
	// STEP 1: Load configuration and connect to the database
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		logger.Fatal().Err(err).Msg("DB connection error")
	}

	// STEP 2: Create Gin router and configure routes
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/api/health", handlers.Health) // Public: liveness check

	// Public routes (no authentication required)
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", handlers.Register) // Public route: user registration
		authRoutes.POST("/login", handlers.Login)       // Public route: user login
	}

	// Protected routes (require a valid session token)
	api := r.Group("/api/workouts")
	api.Use(middleware.AuthMiddleware()) // Apply JWT authentication middleware
	{
		api.GET("", handlers.ListWorkouts)          // Protected: filtered workout list
		api.POST("", handlers.CreateWorkout)        // Protected: create workout
		api.GET("/:id", handlers.GetWorkout)        // Protected: fetch one workout
		api.PUT("/:id", handlers.UpdateWorkout)     // Protected: partial update
		api.DELETE("/:id", handlers.DeleteWorkout)  // Protected: delete workout
	}

	// STEP 3: Start the web server
	logger.Info().Str("port", cfg.Port).Str("environment", cfg.Environment).Msg("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

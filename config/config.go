// config.go - Handles configuration for the project

package config // Declares the package name

import ( // Import required packages
	"os"   // For reading environment variables
	"sync" // For loading .env only once

	"github.com/joho/godotenv" // .env file support
)

type Config struct { // Config struct holds all configuration values
	Port        string // Port the HTTP server listens on
	DBDriver    string // Database driver: "sqlite" or "postgres"
	DBDSN       string // Database connection string (file path for sqlite)
	JWTSecret   string // Secret key for JWT authentication
	Environment string // "development" or "production" (development runs auto-migration)
}

var loadDotenv sync.Once // Ensures .env is read at most once per process

func Load() *Config { // Load reads config from environment variables or uses defaults
	loadDotenv.Do(func() {
		_ = godotenv.Load() // Missing .env is fine, plain env vars still apply
	})
	return &Config{
		Port:        getEnv("PORT", "8080"),               // Get listen port or use default
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),        // Get DB driver or use default
		DBDSN:       getEnv("DB_DSN", "gym.db"),           // Get DB connection string or use default
		JWTSecret:   getEnv("JWT_SECRET", "supersecret"),  // Get JWT secret or use default
		Environment: getEnv("ENVIRONMENT", "development"), // Get environment flag or use default
	}
}

// IsDevelopment reports whether schema auto-migration should run on startup.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string { // Helper to get env var or fallback
	if value := os.Getenv(key); value != "" { // If env var is set, use it
		return value
	}
	return fallback // Otherwise, use fallback value
}

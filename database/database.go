// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"fmt"

	"go-gym-tracker/config" // Project config
	"go-gym-tracker/models" // User and Workout models

	"gorm.io/driver/postgres" // Postgres driver for GORM (production)
	"gorm.io/driver/sqlite"   // SQLite driver for GORM (development/tests)
	"gorm.io/gorm"            // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

// Connect opens the database selected by DB_DRIVER and, in development,
// auto-migrates the schema. TranslateError lets the handlers detect duplicate
// emails as gorm.ErrDuplicatedKey regardless of driver.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	// Auto-migrate the models (create tables if needed); production schemas
	// are expected to be managed out of band
	if cfg.IsDevelopment() {
		if err := DB.AutoMigrate(&models.User{}, &models.Workout{}); err != nil {
			return err
		}
	}

	return nil
}

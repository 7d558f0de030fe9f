package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"volunteer-connect/internal/config"
	"volunteer-connect/internal/models"
)

// Connect opens the configured relational store. The returned handle is passed
// explicitly to the repository; there is no package-level connection.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.GetDSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := Open(dialector, logger.Default.LogMode(logger.Error))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Printf("Database connection established successfully (driver=%s)", cfg.Database.Driver)
	return db, nil
}

// Open wraps gorm.Open with the settings every store handle needs
func Open(dialector gorm.Dialector, gormLogger logger.Interface) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
}

// Models lists every table in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Organization{},
		&models.Opportunity{},
		&models.Application{},
		&models.Payment{},
	}
}

// AutoMigrate runs automatic migrations for all models
func AutoMigrate(db *gorm.DB) error {
	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migration failed for %T: %w", model, err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Reset drops every table and recreates the schema
func Reset(db *gorm.DB) error {
	tables := Models()

	// Children first so foreign keys never block a drop
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", tables[i], err)
		}
	}

	return AutoMigrate(db)
}

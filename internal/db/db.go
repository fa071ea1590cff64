package db

import (
	"meal_max/internal/config" // Application configuration
	"meal_max/internal/domain" // Importing domain models

	"github.com/glebarez/sqlite" // Pure-Go SQLite driver for GORM
	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to the database selected by the configuration
func Open(cfg *config.Config) (*gorm.DB, error) {
	// SQLite keeps the catalog in a single local file
	if cfg.DBDriver == "sqlite" {
		return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	}
	// Data Source Name (DSN) for the MySQL connection
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.Meal{}); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}

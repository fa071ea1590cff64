package main

import (
	"meal_max/internal/config" // Custom import path (Config)
	"meal_max/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Connect to the configured database
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	db.Migrate(conn) // Create or update the meals table
}

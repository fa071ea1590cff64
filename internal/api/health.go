package api

import (
	"meal_max/internal/domain" // Importing domain models
	"net/http"                 // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// HealthCheckHandler reports that the service is up
func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Return healthy status
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// DBCheckHandler verifies that the meals table exists
func DBCheckHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Check for the meals table
		if !db.Migrator().HasTable(&domain.Meal{}) {
			// If missing, report the database as broken
			c.JSON(http.StatusNotFound, gin.H{"error": "meals table does not exist"})
			return
		}
		// Return healthy database status
		c.JSON(http.StatusOK, gin.H{"database_status": "healthy"})
	}
}

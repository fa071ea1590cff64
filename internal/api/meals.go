package api

import (
	"meal_max/internal/domain"  // Importing domain models
	"meal_max/internal/kitchen" // Catalog store
	"net/http"                  // HTTP status codes
	"strconv"                   // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// CreateMealRequest represents a meal creation request
type CreateMealRequest struct {
	Name       string  `json:"meal" binding:"required"`    // Meal name
	Cuisine    string  `json:"cuisine" binding:"required"` // Cuisine label
	Price      float64 `json:"price"`                      // Validated by the store
	Difficulty string  `json:"difficulty"`                 // Validated by the store
}

// CreateMealHandler adds a new meal to the catalog
func CreateMealHandler(store *kitchen.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMealRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Create the meal; price and difficulty are validated by the store
		meal, err := store.CreateMeal(req.Name, req.Cuisine, req.Price, domain.Difficulty(req.Difficulty))
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"meal":  req.Name,    // Requested meal name
				"error": err.Error(), // Error message
			}).Error("Failed to create meal") // Log creation failure
			respondError(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"status": "combatant ready", "combatant": meal.Name})
	}
}

// DeleteMealHandler tombstones a meal by its ID
func DeleteMealHandler(store *kitchen.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the meal ID from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			// If not a number, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
			return
		}
		// Delete the meal
		if err := store.DeleteMeal(uint(id)); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"meal_id": id,          // Requested meal id
				"error":   err.Error(), // Error message
			}).Error("Failed to delete meal") // Log deletion failure
			respondError(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"status": "meal deleted"})
	}
}

// GetMealByIDHandler returns a meal by its ID
func GetMealByIDHandler(store *kitchen.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Parse the meal ID from the path
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			// If not a number, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal ID"})
			return
		}
		// Fetch the meal
		meal, err := store.GetMealByID(uint(id))
		if err != nil {
			respondError(c, err)
			return
		}
		// Return the meal
		c.JSON(http.StatusOK, gin.H{"status": "success", "meal": meal})
	}
}

// GetMealByNameHandler returns a meal by its name
func GetMealByNameHandler(store *kitchen.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Fetch the meal by the path name
		meal, err := store.GetMealByName(c.Param("name"))
		if err != nil {
			respondError(c, err)
			return
		}
		// Return the meal
		c.JSON(http.StatusOK, gin.H{"status": "success", "meal": meal})
	}
}

// LeaderboardHandler returns meals ranked by wins or win percentage
func LeaderboardHandler(store *kitchen.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Read the sort key, defaulting to wins
		sortBy := c.DefaultQuery("sort", kitchen.SortByWins)
		// Build the leaderboard
		entries, err := store.Leaderboard(sortBy)
		if err != nil {
			respondError(c, err)
			return
		}
		// Return the ranked entries
		c.JSON(http.StatusOK, gin.H{"status": "success", "leaderboard": entries})
	}
}

// ClearMealsHandler removes every meal from the catalog
func ClearMealsHandler(store *kitchen.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Clear the catalog
		if err := store.ClearMeals(); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Failed to clear meals") // Log reset failure
			respondError(c, err)
			return
		}
		// Return success response
		c.JSON(http.StatusOK, gin.H{"status": "meals cleared"})
	}
}

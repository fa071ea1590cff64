package api

import (
	"meal_max/internal/battle"  // Battle engine
	"meal_max/internal/domain"  // Importing domain models
	"meal_max/internal/kitchen" // Catalog store
	"net/http"                  // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// PrepCombatantRequest represents a combatant staging request
type PrepCombatantRequest struct {
	Name string `json:"meal" binding:"required"` // Name of the meal to stage
}

// combatantNames projects staged meals onto their names
func combatantNames(meals []domain.Meal) []string {
	names := make([]string, 0, len(meals))
	for _, meal := range meals {
		names = append(names, meal.Name)
	}
	return names
}

// PrepCombatantHandler stages a catalog meal for the next battle
func PrepCombatantHandler(store *kitchen.Store, engine *battle.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PrepCombatantRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Look the meal up in the catalog
		meal, err := store.GetMealByName(req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		// Stage the meal
		if err := engine.PrepCombatant(*meal); err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"meal":  req.Name,    // Requested meal name
				"error": err.Error(), // Error message
			}).Error("Failed to prep combatant") // Log staging failure
			respondError(c, err)
			return
		}
		// Return the staged lineup
		c.JSON(http.StatusOK, gin.H{"status": "combatant prepped", "combatants": combatantNames(engine.Combatants())})
	}
}

// GetCombatantsHandler returns the currently staged meals
func GetCombatantsHandler(engine *battle.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Return the staged meals in staging order
		c.JSON(http.StatusOK, gin.H{"status": "success", "combatants": engine.Combatants()})
	}
}

// ClearCombatantsHandler empties the staging area
func ClearCombatantsHandler(engine *battle.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		engine.ClearCombatants() // Drop all staged meals
		// Return success response
		c.JSON(http.StatusOK, gin.H{"status": "combatants cleared"})
	}
}

// BattleHandler resolves a battle between the two staged meals
func BattleHandler(engine *battle.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Resolve the battle
		winner, err := engine.Battle()
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"error": err.Error(), // Error message
			}).Error("Battle failed") // Log resolution failure
			respondError(c, err)
			return
		}
		// Return the winner
		c.JSON(http.StatusOK, gin.H{"status": "battle complete", "winner": winner})
	}
}

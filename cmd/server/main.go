package main

import (
	"log"                          // log package is needed for logging
	"meal_max/internal/api"        // Custom package for API handlers
	"meal_max/internal/battle"     // Battle engine
	"meal_max/internal/config"     // Custom package for configuration
	"meal_max/internal/db"         // Database helpers
	"meal_max/internal/kitchen"    // Catalog store
	"meal_max/internal/middleware" // Custom package for middleware
	"meal_max/internal/utils"      // random.org client

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the configured database
	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Wire the catalog store, the random source and the battle engine
	store := kitchen.NewStore(conn)                                         // Meal persistence
	source := utils.NewRandomOrgClient(cfg.RandomOrgURL, cfg.RandomTimeout) // Battle randomness
	engine := battle.NewEngine(store, source)                               // Battle resolution

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin with structured request logging and panic recovery
	r := gin.New()                                    // Gin router instance
	r.Use(middleware.RequestLogger(), gin.Recovery()) // Request middleware chain

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Health routes
	apiGroup := r.Group("/api")
	apiGroup.GET("/health", api.HealthCheckHandler())   // Liveness endpoint
	apiGroup.GET("/db-check", api.DBCheckHandler(conn)) // Database check endpoint

	// Meal routes
	apiGroup.POST("/create-meal", api.CreateMealHandler(store))               // Create meal endpoint
	apiGroup.DELETE("/delete-meal/:id", api.DeleteMealHandler(store))         // Delete meal endpoint
	apiGroup.GET("/get-meal-by-id/:id", api.GetMealByIDHandler(store))        // Meal by id endpoint
	apiGroup.GET("/get-meal-by-name/:name", api.GetMealByNameHandler(store))  // Meal by name endpoint
	apiGroup.GET("/leaderboard", api.LeaderboardHandler(store))               // Leaderboard endpoint
	apiGroup.DELETE("/clear-meals", api.ClearMealsHandler(store))             // Catalog reset endpoint

	// Battle routes
	apiGroup.POST("/prep-combatant", api.PrepCombatantHandler(store, engine)) // Stage combatant endpoint
	apiGroup.GET("/get-combatants", api.GetCombatantsHandler(engine))         // Staged combatants endpoint
	apiGroup.POST("/clear-combatants", api.ClearCombatantsHandler(engine))    // Clear staging endpoint
	apiGroup.GET("/battle", api.BattleHandler(engine))                        // Battle endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}

package config

import (
	"meal_max/internal/utils" // random.org defaults
	"os"                      // For environment variables
	"strconv"                 // For string to int conversion
	"time"                    // For timeout durations

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string        // Application port
	DBDriver      string        // Database driver ("mysql" or "sqlite")
	DBUser        string        // Database user (mysql)
	DBPassword    string        // Database password (mysql)
	DBHost        string        // Database host (mysql)
	DBPort        string        // Database port (mysql)
	DBName        string        // Database name (mysql)
	DBPath        string        // Database file path (sqlite)
	RandomOrgURL  string        // random.org endpoint
	RandomTimeout time.Duration // random.org request timeout
	IsProd        bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	timeoutSeconds := 5 // Default random.org timeout in seconds
	// Override the timeout when a positive value is set
	if v, err := strconv.Atoi(os.Getenv("RANDOM_TIMEOUT_SECONDS")); err == nil && v > 0 {
		timeoutSeconds = v
	}
	return &Config{
		AppPort:       envOr("APP_PORT", "5000"),                             // Application port
		DBDriver:      envOr("DB_DRIVER", "mysql"),                           // Database driver
		DBUser:        os.Getenv("DB_USER"),                                  // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                              // Database password
		DBHost:        os.Getenv("DB_HOST"),                                  // Database host
		DBPort:        os.Getenv("DB_PORT"),                                  // Database port
		DBName:        os.Getenv("DB_NAME"),                                  // Database name
		DBPath:        envOr("DB_PATH", "meal_max.db"),                       // Database file path
		RandomOrgURL:  envOr("RANDOM_ORG_URL", utils.DefaultRandomOrgURL),    // random.org endpoint
		RandomTimeout: time.Duration(timeoutSeconds) * time.Second,           // random.org request timeout
		IsProd:        os.Getenv("IS_PROD") == "true",                        // Is production environment
	}
}

// envOr returns the variable's value, or fallback when it is unset
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend selectors. The ledger operations are identical under both;
// only the store implementation behind them changes.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Storage
	StorageBackend string

	// Database (postgres backend only)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Startup connect retry
	DBConnectAttempts int
	DBConnectBackoff  time.Duration

	// Leaderboard demo-mode padding with placeholder rows
	LeaderboardDemoPadding bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		StorageBackend: getEnv("STORAGE_BACKEND", StoragePostgres),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "dia"),
		DBPassword: getEnv("DB_PASSWORD", "dia"),
		DBName:     getEnv("DB_NAME", "dia"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		DBConnectAttempts: getEnvInt("DB_CONNECT_ATTEMPTS", 30),

		LeaderboardDemoPadding: getEnvBool("LEADERBOARD_DEMO_PADDING", true),
	}

	backoffStr := getEnv("DB_CONNECT_BACKOFF", "5s")
	backoff, err := time.ParseDuration(backoffStr)
	if err != nil {
		log.Printf("Warning: invalid DB_CONNECT_BACKOFF value '%s', falling back to 5s\n", backoffStr)
		backoff = 5 * time.Second
	}
	config.DBConnectBackoff = backoff

	return config, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, value, defaultValue)
		return defaultValue
	}
	return b
}

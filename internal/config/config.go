package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// AI review generation
	ReviewBaseURL   string
	ReviewModel     string
	ReviewMaxTokens int
	ReviewTimeout   time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "tradelog"),
		DBPassword: getEnv("DB_PASSWORD", "tradelog"),
		DBName:     getEnv("DB_NAME", "investment_journal"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Review generation. The API key is deliberately not cached here:
		// the review client reads DASHSCOPE_API_KEY at call time.
		ReviewBaseURL: getEnv("REVIEW_BASE_URL", "https://dashscope.aliyuncs.com/compatible-mode/v1"),
		ReviewModel:   getEnv("REVIEW_MODEL", "deepseek-v3"),
	}

	maxTokensStr := getEnv("REVIEW_MAX_TOKENS", "8192")
	maxTokens, err := strconv.Atoi(maxTokensStr)
	if err != nil {
		log.Printf("Warning: invalid REVIEW_MAX_TOKENS value '%s', falling back to 8192\n", maxTokensStr)
		maxTokens = 8192
	}
	config.ReviewMaxTokens = maxTokens

	timeoutStr := getEnv("REVIEW_TIMEOUT", "60s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid REVIEW_TIMEOUT value '%s', falling back to 60s\n", timeoutStr)
		timeout = 60 * time.Second
	}
	config.ReviewTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

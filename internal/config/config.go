package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	FrontEndURL  string // Base URL embedded in password-reset links
	SMTPHost     string
	SMTPPort     int
	EmailUser    string
	EmailPass    string
	AppEnv       string
}

// Load loads configuration from a .env file (if present) and environment
// variables, falling back to defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; env vars alone are enough.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "5000"))
	if err != nil {
		return nil, err
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./users.db"),
		FrontEndURL:  getEnv("FRONT_END", "http://localhost:3000"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     smtpPort,
		EmailUser:    getEnv("EMAIL_USER", ""),
		EmailPass:    getEnv("EMAIL_PASSWORD", ""),
		AppEnv:       getEnv("APP_ENV", "development"),
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

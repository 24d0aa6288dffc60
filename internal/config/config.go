package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port        string
	DatabaseURL string
	CORS        CORSConfig
	Mail        MailConfig
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// MailConfig holds email-delivery provider configuration. An empty credential
// for the selected provider means delivery is not configured; the notifier
// then reports intended recipients without dispatching.
type MailConfig struct {
	Provider     string
	ResendAPIKey string
	Sender       string
	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORS: CORSConfig{
			AllowedOrigins:   getEnvSlice("CORS_ORIGINS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", false),
		},
		Mail: MailConfig{
			Provider:     getEnv("MAIL_PROVIDER", "resend"),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			Sender:       getEnv("MAIL_FROM", "Lost & Found <notifications@lostfound.app>"),
			AWSRegion:    getEnv("AWS_REGION", "us-east-1"),
			AWSAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			AWSSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		},
	}

	return cfg, nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		values := strings.Split(value, ",")
		for i, v := range values {
			values[i] = strings.TrimSpace(v)
		}
		return values
	}
	return defaultValue
}

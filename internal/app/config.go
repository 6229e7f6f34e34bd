package app

import (
	"errors"
	"os"
	"strconv"
	"time"
)

var ErrMissingJWTSecret = errors.New("app: AUTH_JWT_SECRET must be set")

type Config struct {
	JWTSecret string // Required: HMAC secret for session tokens
	Issuer    string // Optional: issuer claim for tokens (default: userd)

	MongoURI      string // Optional: MongoDB connection string (default: mongodb://localhost:27017)
	MongoDatabase string // Optional: database name (default: userd)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret:           os.Getenv("AUTH_JWT_SECRET"),
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "userd"),
		MongoURI:            getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:       getEnvOrDefault("MONGO_DATABASE", "userd"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	// The signing secret has no sane default; refuse to start without one.
	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

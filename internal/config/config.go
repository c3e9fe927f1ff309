package config

import (
	"errors"
	"os"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
// The server refuses to start instead of falling back to a weak default.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	UploadRoot string
	GinMode    string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "5000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "studify"),
		DBPassword: getEnv("DB_PASSWORD", "studify"),
		DBName:     getEnv("DB_NAME", "studify"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		UploadRoot: getEnv("UPLOAD_ROOT", "."),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

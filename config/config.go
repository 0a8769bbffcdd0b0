package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env, falling back to the process environment.
func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		return os.Getenv(key)
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	value := Config(key)
	if value == "" {
		return fallback
	}
	return value
}

func IsDev() bool {
	return ConfigDefault("APP_ENV", "development") == "development"
}

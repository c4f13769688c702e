package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads an env variable, loading .env first when present
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if value := Config(key); value != "" {
		return value
	}
	return fallback
}

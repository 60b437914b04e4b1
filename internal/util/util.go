package util

import (
	"os"

	"github.com/google/uuid"
)

// NewID returns a new random identifier for games and players
func NewID() string {
	return uuid.New().String()
}

// Getenv will return an environment variable or a default value
func Getenv(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}

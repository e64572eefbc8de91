package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	MongoDB     string
	Port        string
	LogLevel    string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// LoadConfig reads the service configuration from the environment.
// A missing .env file is fine; system environment variables still apply.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MongoDB:     getEnv("MONGO_DB", "shootup"),
		Port:        getEnv("PORT", "8000"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

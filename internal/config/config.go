package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Values come from the environment,
// optionally seeded from a .env file.
type Config struct {
	Port        string
	DatabaseURL string

	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float32

	DoctorsCSV    string
	ResultLimit   int
	NotifyChannel string
	LogLevel      string
}

// Load reads the configuration. A missing .env file is not an error; the
// process environment always wins.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIMaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 400),
		OpenAITemperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.7),
		DoctorsCSV:        getEnv("DOCTORS_CSV", "data/doctors.csv"),
		ResultLimit:       getEnvAsInt("RESULT_LIMIT", 3),
		NotifyChannel:     getEnv("NOTIFY_CHANNEL", "chat_updates"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.ResultLimit <= 0 {
		return nil, fmt.Errorf("RESULT_LIMIT must be positive, got %d", cfg.ResultLimit)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt(key string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return def
}

func getEnvAsFloat32(key string, def float32) float32 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 32); err == nil {
		return float32(v)
	}
	return def
}

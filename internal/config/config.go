package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings read from the environment
type Config struct {
	Port string

	StoreDriver   string // sqlite, redis or memory
	DBPath        string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeocodingURL string
	ForecastURL  string
	UserAgent    string
	HTTPTimeout  time.Duration
}

// Load reads an optional .env file, then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		StoreDriver:   getEnvOrDefault("STORE_DRIVER", "sqlite"),
		DBPath:        getEnvOrDefault("DB_PATH", "wthr.db"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		GeocodingURL:  os.Getenv("GEOCODING_URL"),
		ForecastURL:   os.Getenv("FORECAST_URL"),
		UserAgent:     os.Getenv("WTHR_USER_AGENT"),
		HTTPTimeout:   getEnvDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return i
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

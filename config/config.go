package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Port           string
	Environment    string
	LoggingConfig  LoggingConfig
	StoreConfig    StoreConfig
	GeocoderConfig GeocoderConfig
	ImportConfig   ImportConfig
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// StoreConfig holds the flat-file table locations
type StoreConfig struct {
	FlightsPath string
	HotelsPath  string
}

// GeocoderConfig holds the forward-geocoding service configuration
type GeocoderConfig struct {
	BaseURL     string
	UserAgent   string
	Timeout     time.Duration
	MinInterval time.Duration // minimum delay between requests, per provider policy
	MaxRetries  int
}

// ImportConfig holds batch importer configuration
type ImportConfig struct {
	FlightActivityPath string
	StayActivityPath   string
	Airline            string // airline label stamped on imported flight activity
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(".env")

	port := getEnv("PORT", "8080")
	environment := getEnv("ENVIRONMENT", "development")

	loggingConfig := LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "json"),
	}

	storeConfig := StoreConfig{
		FlightsPath: getEnv("FLIGHTS_FILE", "flights.csv"),
		HotelsPath:  getEnv("HOTELS_FILE", "hotels.csv"),
	}

	geocoderTimeout, err := time.ParseDuration(getEnv("GEOCODER_TIMEOUT", "30s"))
	if err != nil {
		geocoderTimeout = 30 * time.Second
	}
	geocoderMinInterval, err := time.ParseDuration(getEnv("GEOCODER_MIN_INTERVAL", "1s"))
	if err != nil {
		geocoderMinInterval = time.Second
	}
	geocoderMaxRetries, _ := strconv.Atoi(getEnv("GEOCODER_MAX_RETRIES", "3"))

	geocoderConfig := GeocoderConfig{
		BaseURL:     getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		UserAgent:   getEnv("GEOCODER_USER_AGENT", "travellog/1.0"),
		Timeout:     geocoderTimeout,
		MinInterval: geocoderMinInterval,
		MaxRetries:  geocoderMaxRetries,
	}

	importConfig := ImportConfig{
		FlightActivityPath: getEnv("IMPORT_FLIGHTS_FILE", "flightData.txt"),
		StayActivityPath:   getEnv("IMPORT_STAYS_FILE", "marriottData.txt"),
		Airline:            getEnv("IMPORT_AIRLINE", "American Airlines"),
	}

	return &Config{
		Port:           port,
		Environment:    environment,
		LoggingConfig:  loggingConfig,
		StoreConfig:    storeConfig,
		GeocoderConfig: geocoderConfig,
		ImportConfig:   importConfig,
	}, nil
}

// TestConfig returns a default test configuration
func TestConfig() *Config {
	return &Config{
		Port:        "8080",
		Environment: "test",
		LoggingConfig: LoggingConfig{
			Level:  "error",
			Format: "text",
		},
		StoreConfig: StoreConfig{
			FlightsPath: "flights.csv",
			HotelsPath:  "hotels.csv",
		},
		GeocoderConfig: GeocoderConfig{
			BaseURL:     "http://localhost:8108",
			UserAgent:   "travellog-test",
			Timeout:     5 * time.Second,
			MinInterval: 0, // no pacing in tests
			MaxRetries:  0,
		},
		ImportConfig: ImportConfig{
			FlightActivityPath: "flightData.txt",
			StayActivityPath:   "marriottData.txt",
			Airline:            "American Airlines",
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if len(strings.TrimSpace(value)) == 0 {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

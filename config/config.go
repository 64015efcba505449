package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultMaxUploadSize is the largest accepted document upload
	DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB
)

type Config struct {
	ServerPort  string
	Environment string
	LogLevel    string
	// Simulated latency
	SubmitDelay time.Duration // client and case forms
	UploadDelay time.Duration // document uploads
	// Documents
	MaxUploadSize int64
	// Store
	IDStrategy string // "uuid" or "sequence"
	SeedData   bool
	// Other
	AllowedOrigins []string
	WriteRateLimit int // mutating requests per minute per IP, 0 disables
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SubmitDelay:    getEnvDuration("SUBMIT_DELAY", time.Second),
		UploadDelay:    getEnvDuration("UPLOAD_DELAY", 1500*time.Millisecond),
		MaxUploadSize:  getEnvInt64("MAX_UPLOAD_SIZE", DefaultMaxUploadSize),
		IDStrategy:     getEnv("ID_STRATEGY", "uuid"),
		SeedData:       getEnvBool("SEED_DATA", true),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		WriteRateLimit: int(getEnvInt64("WRITE_RATE_LIMIT", 60)),
	}
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration accepts Go durations ("1500ms") or bare milliseconds ("1500")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil && d >= 0 {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		log.Printf("[WARNING] Invalid number for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

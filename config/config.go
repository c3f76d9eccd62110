package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	FrontendURL string
	// Sessions
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	SessionCookieSecure  bool
	// Uploads and previews
	MaxUploadBytes      int64
	PreviewMaxDimension int
	PreviewQuality      int
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Sessions live only in memory
		SessionTTL:           time.Duration(getEnvInt("SESSION_TTL_MINUTES", 30)) * time.Minute,
		SessionSweepInterval: time.Duration(getEnvInt("SESSION_SWEEP_SECONDS", 60)) * time.Second,
		SessionCookieSecure:  getEnvBool("SESSION_COOKIE_SECURE", false),
		// Uploads
		MaxUploadBytes:      int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)), // 10 MiB per request
		PreviewMaxDimension: getEnvInt("PREVIEW_MAX_DIMENSION", 256),
		PreviewQuality:      getEnvInt("PREVIEW_QUALITY", 80),
	}

	if cfg.SessionTTL <= 0 {
		log.Println("WARNING: SESSION_TTL_MINUTES <= 0, idle sessions will never expire.")
	}
	if cfg.SessionSweepInterval <= 0 {
		cfg.SessionSweepInterval = time.Minute
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

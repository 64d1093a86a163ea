package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	StorageDir     string
	CORSOrigin     string
	LogLevel       string
	LogFormat      string
	MaxUploadBytes int64
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8000"),
		StorageDir:     getEnv("STORAGE_DIR", "saved_resumes"),
		CORSOrigin:     getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 15<<20)),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

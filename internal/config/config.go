package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from the environment with
// an optional .env file on top.
type Config struct {
	Port          string // listen address, e.g. ":3001"
	ExportDir     string // directory exported PDFs are written to
	PublicBaseURL string // overrides the host-derived URL for exported files
	GeminiAPIKey  string // empty selects the mock generator
	GeminiModel   string
	LogLevel      string // "debug" or anything else for info
}

// Load reads configuration, falling back to development defaults.
func Load() *Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		Port:          getenv("PORT", ":3001"),
		ExportDir:     getenv("EXPORT_DIR", "exports"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

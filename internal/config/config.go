package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SupabaseURL string
	SupabaseKey string
	CORSOrigins []string
	Port        string
	LogLevel    string
}

func New() *Config {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		SupabaseURL: os.Getenv("SUPABASE_URL"),
		SupabaseKey: os.Getenv("SUPABASE_SERVICE_KEY"),
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
		Port:        getEnvDefault("PORT", "8080"),
		LogLevel:    os.Getenv("LOGLEVEL"),
	}
}

// Validate reports startup-fatal omissions. The store endpoint and its
// credential have no workable defaults.
func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return errors.New("SUPABASE_URL is required")
	}
	if c.SupabaseKey == "" {
		return errors.New("SUPABASE_SERVICE_KEY is required")
	}
	return nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

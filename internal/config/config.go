package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	SecretKey   string
	DatabaseURL string // reserved for a future persistence layer
	CORSOrigins []string
	Env         string
	ServerPort  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		SecretKey:   getEnv("SECRET_KEY", "interview-app-secret-key"),
		DatabaseURL: getEnv("DATABASE_URL", "sqlite:///interview.db"),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:8080,http://localhost:3000")),
		Env:         getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("SERVER_PORT", "8000"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

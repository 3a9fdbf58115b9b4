package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	SeedDemoData bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	tokenTTL := 168 * time.Hour // 7 days
	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			tokenTTL = parsed
		}
	}

	// Tokens are unverifiable without a secret, so refusing to start is the
	// only safe behavior.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not configured")
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=taskflow port=5432 sslmode=disable"),
		JWTSecret:    secret,
		TokenTTL:     tokenTTL,
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	JWTSecret   string
	AppBaseURL  string

	EmailAPIKey string
	EmailSender string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// RedisURL is optional; when empty the todo cache is disabled.
	RedisURL     string
	TodoCacheTTL time.Duration
}

func Load() *Config {
	// .env is a development convenience; missing file is fine.
	_ = godotenv.Load()

	return &Config{
		Port:               GetEnvAsString("PORT", "3000"),
		Env:                GetEnvAsString("ENV", "development"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AppBaseURL:         GetEnvAsString("APP_BASE_URL", "http://localhost:3000"),
		EmailAPIKey:        os.Getenv("EMAIL_API_KEY"),
		EmailSender:        os.Getenv("EMAIL_SENDER"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		TodoCacheTTL:       GetEnvAsDuration("TODO_CACHE_TTL", 5*time.Minute),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, sourced from environment variables
// with development fallbacks.
type Config struct {
	Port        string
	Environment string
	LogLevel    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret      string
	AllowedOrigins []string
}

// Load reads configs/.env when present and assembles the Config
func Load() Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "clientportal"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		AllowedOrigins: []string{
			getEnv("FRONTEND_ORIGIN", "http://localhost:5173"),
		},
	}

	if cfg.JWTSecret == "" {
		if cfg.Environment == "production" {
			panic("FATAL: JWT_SECRET environment variable is required in production")
		}
		cfg.JWTSecret = "default_super_secret_key" // Development fallback only
	}

	return cfg
}

// DSN returns the postgres connection string
func (c Config) DSN() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN    string
	Port           string
	UploadDir      string
	JWTSecret      string
	AllowedOrigins string
	GinMode        string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=resto port=5432 sslmode=disable"),
		Port:           getEnv("PORT", "8080"),
		UploadDir:      getEnv("UPLOAD_DIR", "./uploads"),
		JWTSecret:      getEnv("JWT_SECRET", "resto-dev-secret"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", ""),
		GinMode:        getEnv("GIN_MODE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

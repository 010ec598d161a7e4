package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DBDriver            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	JWTSecret           string
	GinMode             string
	InstallmentRounding string
}

func Load() *Config {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DBDriver:            getEnv("DB_DRIVER", "postgres"),
		DBHost:              getEnv("DB_HOST", "localhost"),
		DBPort:              getEnv("DB_PORT", "5432"),
		DBUser:              getEnv("DB_USER", "arremato"),
		DBPassword:          getEnv("DB_PASSWORD", "arremato"),
		DBName:              getEnv("DB_NAME", "arremato_portfolio"),
		JWTSecret:           getEnv("JWT_SECRET", "default-secret-key-change-me"),
		GinMode:             getEnv("GIN_MODE", "debug"),
		InstallmentRounding: getEnv("INSTALLMENT_ROUNDING", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

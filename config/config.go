package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads variables from .env unless GO_ENV points at a deployed
// environment.
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	return nil
}

// EnvironmentVariable holds all configuration read from the environment.
type EnvironmentVariable struct {
	GO_ENV string
	PORT   int

	// JWT configuration. The secret is shared with the hosted identity
	// provider that issues the tokens.
	JWT_SECRET string
	JWT_ISSUER string

	// Store selection: "memory" (default, volatile) or "postgres".
	STORE_DRIVER string
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string

	// Optional catalogue cache.
	REDIS_URL string

	ALLOWED_ORIGINS string
}

// Get reads the environment into an EnvironmentVariable with defaults
// applied.
func Get() (*EnvironmentVariable, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	storeDriver := os.Getenv("STORE_DRIVER")
	if storeDriver == "" {
		storeDriver = "memory"
	}

	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}

	return &EnvironmentVariable{
		GO_ENV: os.Getenv("GO_ENV"),
		PORT:   port,

		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: os.Getenv("JWT_ISSUER"),

		STORE_DRIVER: storeDriver,
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),

		REDIS_URL: os.Getenv("REDIS_URL"),

		ALLOWED_ORIGINS: allowedOrigins,
	}, nil
}

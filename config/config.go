package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	ModelAPIKey    string
	ModelName      string
	ModelAPIURL    string
	ModelTimeout   time.Duration
	DBPath         string
	SchemaCacheTTL time.Duration
	HistoryLimit   int
	SQLServer      SQLServerConfig
}

type SQLServerConfig struct {
	Server       string
	Port         string
	Database     string
	UserID       string
	Password     string
	Encrypt      bool
	MaxOpenConns int
	MaxIdleConns int
}

func GetConfig() Config {
	// A missing .env file is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return Config{
		Port:           getEnv("PORT", "9090"),
		ModelAPIKey:    getEnv("MODEL_API_KEY", ""),
		ModelName:      getEnv("MODEL_NAME", "qwen3-max"),
		ModelAPIURL:    getEnv("MODEL_API_URL", ""),
		ModelTimeout:   getEnvDuration("MODEL_TIMEOUT", 60*time.Second),
		DBPath:         getEnv("DB_PATH", "./data/badger"),
		SchemaCacheTTL: getEnvDuration("SCHEMA_CACHE_TTL", 5*time.Minute),
		HistoryLimit:   getEnvInt("HISTORY_LIMIT", 50),
		SQLServer: SQLServerConfig{
			Server:       getEnv("SQL_SERVER", ""),
			Port:         getEnv("SQL_PORT", "1433"),
			Database:     getEnv("SQL_DATABASE", ""),
			UserID:       getEnv("SQL_USER", ""),
			Password:     getEnv("SQL_PASSWORD", ""),
			Encrypt:      getEnv("SQL_ENCRYPT", "true") == "true",
			MaxOpenConns: getEnvInt("SQL_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("SQL_MAX_IDLE_CONNS", 5),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Warning: invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Warning: invalid value for %s, using default %s", key, defaultValue)
	}
	return defaultValue
}

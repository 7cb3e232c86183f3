package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port int

	DBEngine   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	JWTSecret     []byte
	SessionSecret []byte

	KafkaAddress string

	LogLevel string
}

// Load reads .env (if present) and assembles the configuration from the
// environment. The secret defaults match the original deployment and are
// meant for local development only.
func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return &Config{
		Port: EnvIntDefault("PORT", 3000),

		DBEngine:   EnvDefault("DB_ENGINE", "auto"),
		DBHost:     EnvDefault("DB_HOST", "localhost"),
		DBPort:     EnvDefault("DB_PORT", "5432"),
		DBUser:     EnvDefault("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     EnvDefault("DB_NAME", "ghana_lingo"),
		SQLitePath: EnvDefault("SQLITE_PATH", "ghanalingo.db"),

		JWTSecret:     []byte(EnvDefault("JWT_SECRET", "ghanalingo_secret_key")),
		SessionSecret: []byte(EnvDefault("SESSION_SECRET", "ghanalingo_session_secret")),

		KafkaAddress: os.Getenv("KAFKA_ADDRESS"),

		LogLevel: EnvDefault("LOG_LEVEL", "info"),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

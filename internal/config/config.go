package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP          HTTPConfig
	Database      DatabaseConfig
	Directory     DirectoryConfig
	MigrationsDir string
	DefaultLocale string
}

type HTTPConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DirectoryConfig описывает внешние справочники пользователей и команд.
type DirectoryConfig struct {
	UserBaseURL string
	TeamBaseURL string
	Timeout     time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "membership"),
			Password: getEnv("DB_PASSWORD", "membership"),
			DBName:   getEnv("DB_NAME", "role_membership"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Directory: DirectoryConfig{
			UserBaseURL: getEnv("USER_API_BASE_URL", "http://localhost:8081/user"),
			TeamBaseURL: getEnv("TEAM_API_BASE_URL", "http://localhost:8082/team"),
			Timeout:     getEnvDuration("DIRECTORY_TIMEOUT", 5*time.Second),
		},
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

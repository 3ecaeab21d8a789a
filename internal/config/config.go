package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Storage  StorageConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// SessionConfig holds admin session configuration
type SessionConfig struct {
	JWTSecret     string
	Expiry        time.Duration
	EncryptionKey string
}

// BucketConfig holds one storage bucket's settings
type BucketConfig struct {
	Name        string
	SizeLimitKB int
	DefaultExt  string
}

// StorageConfig holds file storage configuration
type StorageConfig struct {
	Root          string
	PublicBaseURL string
	Speakers      BucketConfig
	Volunteers    BucketConfig
	Sponsors      BucketConfig
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "communityday"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Session: SessionConfig{
			JWTSecret:     getEnv("SESSION_JWT_SECRET", "change-this-in-production"),
			Expiry:        getEnvAsDuration("SESSION_EXPIRY", 24*time.Hour),
			EncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
		Storage: StorageConfig{
			Root:          getEnv("STORAGE_ROOT", "./uploads"),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", "http://localhost:8080/uploads"),
			Speakers: BucketConfig{
				Name:        getEnv("SPEAKERS_BUCKET", "speakers"),
				SizeLimitKB: getEnvAsInt("SPEAKERS_SIZE_LIMIT", 100),
				DefaultExt:  "jpg",
			},
			Volunteers: BucketConfig{
				Name:        getEnv("VOLUNTEERS_BUCKET", "volunteers"),
				SizeLimitKB: getEnvAsInt("VOLUNTEERS_SIZE_LIMIT", 50),
				DefaultExt:  "jpg",
			},
			Sponsors: BucketConfig{
				Name:        getEnv("SPONSORS_BUCKET", "sponsors"),
				SizeLimitKB: getEnvAsInt("SPONSORS_SIZE_LIMIT", 200),
				DefaultExt:  "jpg",
			},
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the immutable service configuration, constructed once in main
// and passed down.
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type UploadConfig struct {
	// MaxBytes caps the combined size of one upload request.
	MaxBytes int
}

type LoggerConfig struct {
	Level string
}

// Load reads configuration from a .env file if present, falling back to
// plain environment variables (useful for Docker).
func Load() (*Config, error) {
	envFiles := []string{".env", "../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxBytes, err := strconv.Atoi(getEnv("UPLOAD_MAX_BYTES", "5242880"))
	if err != nil || maxBytes <= 0 {
		maxBytes = 5 << 20
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Upload: UploadConfig{
			MaxBytes: maxBytes,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

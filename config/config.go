package config

import (
	"os"
	"strconv"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type UploadConfig struct {
	MaxSizeBytes int64
	TempDir      string
}

type AppConfig struct {
	Port        string
	Database    DatabaseConfig
	Upload      UploadConfig
	JWTSecret   string
	Environment string
}

func GetDatabaseConfig() DatabaseConfig {
	port, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "internhub"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}
}

func GetUploadConfig() UploadConfig {
	maxSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_BYTES", ""), 10, 64)
	if err != nil || maxSize <= 0 {
		maxSize = 10 << 20 // 10 MB
	}

	return UploadConfig{
		MaxSizeBytes: maxSize,
		TempDir:      getEnv("UPLOAD_TEMP_DIR", os.TempDir()),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		Port:        getEnv("PORT", "8081"),
		Database:    GetDatabaseConfig(),
		Upload:      GetUploadConfig(),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

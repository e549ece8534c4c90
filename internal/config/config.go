package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
}

type AppConfig struct {
	Host               string
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	UploadDir          string
}

type DatabaseConfig struct {
	Path string
}

type GeminiConfig struct {
	APIKey              string
	Model               string
	GenerateTimeoutSecs int
	FilePollIntervalMs  int
	FilePollMaxAttempts int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Host:               getEnv("APP_HOST", "127.0.0.1"),
			Port:               getEnv("APP_PORT", "8003"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			UploadDir:          getEnv("UPLOAD_DIR", "static"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "analysis_results.db"),
		},
		Gemini: GeminiConfig{
			APIKey:              getEnv("GOOGLE_GEMINI_API_KEY", ""),
			Model:               getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			GenerateTimeoutSecs: getEnvAsInt("GENERATE_TIMEOUT_SECONDS", 600),
			FilePollIntervalMs:  getEnvAsInt("FILE_POLL_INTERVAL_MS", 2000),
			FilePollMaxAttempts: getEnvAsInt("FILE_POLL_MAX_ATTEMPTS", 30),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
}

type AppConfig struct {
	Port            string
	Environment     string
	LogFilePath     string
	SessionFilePath string
}

type BackendConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	// Upper bound on concurrent per-job match requests during aggregation.
	MatchFanout int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:            getEnv("CONSOLE_PORT", "4000"),
			Environment:     getEnv("GO_ENV", "development"),
			LogFilePath:     getEnv("LOG_FILE_PATH", "console.log"),
			SessionFilePath: getEnv("SESSION_FILE_PATH", ".recruit-session.json"),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			RequestTimeout: time.Duration(getEnvAsInt("BACKEND_TIMEOUT_SECONDS", 30)) * time.Second,
			MatchFanout:    getEnvAsInt("MATCH_FANOUT", 8),
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

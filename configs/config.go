package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	LLMBaseURL     string
	LLMAPIKey      string
	LLMModel       string
	LLMTimeout     time.Duration
	LLMMaxRetries  int
	LLMBackoffBase time.Duration

	RabbitMQURI      string
	RabbitMQExchange string

	AutoSaveInterval time.Duration
	ArchiveInterval  time.Duration
	IdleThreshold    time.Duration

	ServiceName    string
	ServiceVersion string
}

var AppConfig *Config

func LoadConfig() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:    getEnvOrDefault("PORT", "5000"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),

		LLMBaseURL:     getEnvOrDefault("LLM_BASE_URL", "https://api.groq.com/openai/v1"),
		LLMAPIKey:      getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:       getEnvOrDefault("LLM_MODEL", "llama-3.3-70b-versatile"),
		LLMTimeout:     getDurationOrDefault("LLM_TIMEOUT", 30*time.Second),
		LLMMaxRetries:  getIntOrDefault("LLM_MAX_RETRIES", 3),
		LLMBackoffBase: getDurationOrDefault("LLM_BACKOFF_BASE", time.Second),

		RabbitMQURI:      getEnvOrDefault("RABBITMQ_URI", ""),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),

		AutoSaveInterval: getDurationOrDefault("SESSION_AUTOSAVE_INTERVAL", 30*time.Second),
		ArchiveInterval:  getDurationOrDefault("SESSION_ARCHIVE_INTERVAL", time.Hour),
		IdleThreshold:    getDurationOrDefault("SESSION_IDLE_THRESHOLD", time.Hour),

		ServiceName:    getEnvOrDefault("SERVICE_NAME", "interview-service"),
		ServiceVersion: getEnvOrDefault("SERVICE_VERSION", "3.0.0"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration for %s, using default %s", key, defaultValue)
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"time"

	"github.com/campus-connect/CampusTalk/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerName string `env:"SERVER_NAME"`
	Addr       string `env:"ADDR"`
	Mode       string `env:"MODE"`
	APIPrefix  string `env:"API_PREFIX"`

	DBDriver string `env:"DB_DRIVER"`
	DSN      string `env:"DSN"`

	Log logger.LogConfig

	// Rate limiting (ulule/limiter format, e.g. "600-M")
	RateLimit string `env:"RATE_LIMIT"`

	// Retrieval response cache
	ResponseCacheTTL time.Duration `env:"RESPONSE_CACHE_TTL"`

	// Generative fallback chain; the chain stays disabled unless enabled
	// explicitly, canned persona fallbacks always work without it.
	FallbackEnabled   bool   `env:"FALLBACK_ENABLED"`
	LLMApiKey         string `env:"LLM_API_KEY"`
	LLMBaseURL        string `env:"LLM_BASE_URL"`
	LLMModel          string `env:"LLM_MODEL"`
	InferenceURL      string `env:"INFERENCE_URL"`
	InferenceToken    string `env:"INFERENCE_TOKEN"`
	InferenceTimeout  time.Duration
	MonitorPrefix     string `env:"MONITOR_PREFIX"`
	TrackedUsersLimit int    `env:"TRACKED_USERS_LIMIT"`
}

var GlobalConfig *Config

// Load reads the optional .env file and populates GlobalConfig. Every field
// has a default so the server starts with no environment at all.
func Load() error {
	envFile := ".env"
	if env := os.Getenv("APP_ENV"); env != "" {
		envFile = ".env." + env
	}
	if err := godotenv.Load(envFile); err != nil {
		// Missing .env is fine, defaults apply.
		log.Printf("Note: %s not loaded: %v (using defaults)", envFile, err)
	}

	GlobalConfig = &Config{
		ServerName: getString("SERVER_NAME", "CampusTalk"),
		Addr:       getString("ADDR", ":7080"),
		Mode:       getString("MODE", "development"),
		APIPrefix:  getString("API_PREFIX", "/api"),
		DBDriver:   getString("DB_DRIVER", "sqlite"),
		DSN:        getString("DSN", "./campustalk.db"),
		Log: logger.LogConfig{
			Level:      getString("LOG_LEVEL", "info"),
			Filename:   getString("LOG_FILENAME", ""),
			MaxSize:    getInt("LOG_MAX_SIZE", 100),
			MaxAge:     getInt("LOG_MAX_AGE", 30),
			MaxBackups: getInt("LOG_MAX_BACKUPS", 5),
		},
		RateLimit:         getString("RATE_LIMIT", "600-M"),
		ResponseCacheTTL:  getDuration("RESPONSE_CACHE_TTL", 5*time.Minute),
		FallbackEnabled:   getBool("FALLBACK_ENABLED", false),
		LLMApiKey:         getString("LLM_API_KEY", ""),
		LLMBaseURL:        getString("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:          getString("LLM_MODEL", "gpt-3.5-turbo"),
		InferenceURL:      getString("INFERENCE_URL", ""),
		InferenceToken:    getString("INFERENCE_TOKEN", ""),
		InferenceTimeout:  getDuration("INFERENCE_TIMEOUT", 10*time.Second),
		MonitorPrefix:     getString("MONITOR_PREFIX", "/metrics"),
		TrackedUsersLimit: getInt("TRACKED_USERS_LIMIT", 1024),
	}
	return nil
}

func getString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		return cast.ToInt(v)
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		return cast.ToBool(v)
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	JWTSecret   string
	FrontendURL string

	// Redis Configuration (rate limiting backend)
	RedisURL      string
	RedisPassword string

	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitAIThreshold     int

	// AI collaborator configuration. Provider selection is an explicit value
	// threaded into each component, never read from ambient state per call.
	AI AIConfig
}

// AIConfig configures the generative-AI collaborator boundary: model
// selection, sampling, and the timeout/retry/breaker envelope around every
// network call.
type AIConfig struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	MaxRetries  int

	BreakerEnabled          bool
	BreakerMaxRequests      uint32
	BreakerMinRequests      uint32
	BreakerFailureThreshold float64
	BreakerInterval         time.Duration
	BreakerTimeout          time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// AI endpoints are expensive network round trips; keep them scarce
		RateLimitAIThreshold: getEnvInt("RATE_LIMIT_AI_THRESHOLD", 10),

		AI: AIConfig{
			Provider: getEnv("AI_PROVIDER", "gemini"),
			APIKey:   getEnv("GEMINI_API_KEY", ""),
			Model:    getEnv("AI_MODEL", "gemini-2.0-flash"),
			// Low variance keeps the generator factual; the constrained
			// generation contract depends on it
			Temperature: float32(getEnvFloat("AI_TEMPERATURE", 0.1)),
			Timeout:     time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 60)) * time.Second,
			MaxRetries:  getEnvInt("AI_MAX_RETRIES", 2),

			BreakerEnabled:          getEnvBool("AI_BREAKER_ENABLED", true),
			BreakerMaxRequests:      uint32(getEnvInt("AI_BREAKER_MAX_REQUESTS", 3)),
			BreakerMinRequests:      uint32(getEnvInt("AI_BREAKER_MIN_REQUESTS", 5)),
			BreakerFailureThreshold: getEnvFloat("AI_BREAKER_FAILURE_THRESHOLD", 0.6),
			BreakerInterval:         time.Duration(getEnvInt("AI_BREAKER_INTERVAL_SECONDS", 60)) * time.Second,
			BreakerTimeout:          time.Duration(getEnvInt("AI_BREAKER_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is missing. Authenticated endpoints will reject all tokens.")
	}
	if cfg.AI.APIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY not configured. Job analysis endpoints will be unavailable.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

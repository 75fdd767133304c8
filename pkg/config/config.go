package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// CORS origins allowed to call the API (frontend dev servers by default)
	AllowedOrigins []string

	// Redis (rate limiter backend)
	Redis RedisConfig

	// Market data provider
	Yahoo YahooConfig

	// Batch screening
	Screener ScreenerConfig

	// Daily picks
	Picks PicksConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// YahooConfig holds Yahoo Finance provider configuration
type YahooConfig struct {
	BaseURL    string
	Timeout    time.Duration
	RateLimit  int // requests per second
	MaxRetries int
}

// ScreenerConfig holds batch screening limits
type ScreenerConfig struct {
	MaxTickers int // 요청당 최대 종목 수
	Workers    int // 동시 분석 워커 수
}

// PicksConfig holds daily pick generation settings
type PicksConfig struct {
	TopN         int
	Universe     string // static, file, sp500
	UniverseFile string
	SP500URL     string
	Schedule     string // cron expression with seconds
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8000"),
		Env:  getEnv("ENV", "development"),

		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		Yahoo: YahooConfig{
			BaseURL:    getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout:    getEnvAsDuration("YAHOO_TIMEOUT", "10s"),
			RateLimit:  getEnvAsInt("YAHOO_RATE_LIMIT", 5),
			MaxRetries: getEnvAsInt("YAHOO_MAX_RETRIES", 2),
		},

		Screener: ScreenerConfig{
			MaxTickers: getEnvAsInt("SCREENER_MAX_TICKERS", 50),
			Workers:    getEnvAsInt("SCREENER_WORKERS", 8),
		},

		Picks: PicksConfig{
			TopN:         getEnvAsInt("PICKS_TOP_N", 10),
			Universe:     getEnv("PICKS_UNIVERSE", "static"),
			UniverseFile: getEnv("PICKS_UNIVERSE_FILE", "config/universe.yaml"),
			SP500URL:     getEnv("PICKS_SP500_URL", "https://en.wikipedia.org/wiki/List_of_S%26P_500_companies"),
			Schedule:     getEnv("PICKS_SCHEDULE", "0 30 16 * * 1-5"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Screener.MaxTickers <= 0 {
		return fmt.Errorf("SCREENER_MAX_TICKERS must be positive")
	}

	if c.Screener.Workers <= 0 {
		return fmt.Errorf("SCREENER_WORKERS must be positive")
	}

	switch c.Picks.Universe {
	case "static", "file", "sp500":
	default:
		return fmt.Errorf("PICKS_UNIVERSE must be one of: static, file, sp500")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
		"backend/.env",
	}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

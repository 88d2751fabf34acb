package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config (командный центр)
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	// Session Config
	JWTSecret        string        `env:"JWT_SECRET"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SeedDemoAccounts bool          `env:"SEED_DEMO_ACCOUNTS" envDefault:"true"`

	// Dispatch Config. Задержки используются только симулированным бэкендом.
	DispatchPrecheckDelay time.Duration `env:"DISPATCH_PRECHECK_DELAY" envDefault:"1200ms"`
	DispatchLockDelay     time.Duration `env:"DISPATCH_LOCK_DELAY" envDefault:"2800ms"`
	DispatchStageTimeout  time.Duration `env:"DISPATCH_STAGE_TIMEOUT" envDefault:"30s"`

	// Location Config
	LocationMaxAge       time.Duration `env:"LOCATION_MAX_AGE" envDefault:"10s"`
	LocationHighAccuracy bool          `env:"LOCATION_HIGH_ACCURACY" envDefault:"true"`

	// Profile Config
	ProfileDraftTTL time.Duration `env:"PROFILE_DRAFT_TTL" envDefault:"720h"`

	// Bystander reports rate limit
	ReportRateLimitRPS   int `env:"REPORT_RATE_LIMIT_RPS" envDefault:"1"`
	ReportRateLimitBurst int `env:"REPORT_RATE_LIMIT_BURST" envDefault:"5"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		SessionTTL:             getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SeedDemoAccounts:       getEnvAsBool("SEED_DEMO_ACCOUNTS", true),
		DispatchPrecheckDelay:  getEnvAsDuration("DISPATCH_PRECHECK_DELAY", 1200*time.Millisecond),
		DispatchLockDelay:      getEnvAsDuration("DISPATCH_LOCK_DELAY", 2800*time.Millisecond),
		DispatchStageTimeout:   getEnvAsDuration("DISPATCH_STAGE_TIMEOUT", 30*time.Second),
		LocationMaxAge:         getEnvAsDuration("LOCATION_MAX_AGE", 10*time.Second),
		LocationHighAccuracy:   getEnvAsBool("LOCATION_HIGH_ACCURACY", true),
		ProfileDraftTTL:        getEnvAsDuration("PROFILE_DRAFT_TTL", 720*time.Hour),
		ReportRateLimitRPS:     getEnvAsInt("REPORT_RATE_LIMIT_RPS", 1),
		ReportRateLimitBurst:   getEnvAsInt("REPORT_RATE_LIMIT_BURST", 5),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if cfg.DispatchLockDelay < cfg.DispatchPrecheckDelay {
		return nil, fmt.Errorf("DISPATCH_LOCK_DELAY (%s) must not be shorter than DISPATCH_PRECHECK_DELAY (%s)",
			cfg.DispatchLockDelay, cfg.DispatchPrecheckDelay)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

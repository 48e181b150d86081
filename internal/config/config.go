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
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Mail Config
	SMTPHost        string        `env:"SMTP_HOST"`
	SMTPPort        int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser        string        `env:"SMTP_USER"`
	SMTPPassword    string        `env:"SMTP_PASSWORD"`
	MailFrom        string        `env:"MAIL_FROM" envDefault:"alertas@sos.local"`
	MailConcurrency int           `env:"MAIL_CONCURRENCY" envDefault:"0"`
	MailSendTimeout time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"10s"`
	MailTimezone    string        `env:"MAIL_TIMEZONE" envDefault:"UTC"`

	// Alert policy
	DetailMinChars          int `env:"ALERT_DETAIL_MIN_CHARS" envDefault:"5"`
	DetailMaxChars          int `env:"ALERT_DETAIL_MAX_CHARS" envDefault:"300"`
	DetailMinWords          int `env:"ALERT_DETAIL_MIN_WORDS" envDefault:"3"`
	DetailMaxWords          int `env:"ALERT_DETAIL_MAX_WORDS" envDefault:"100"`
	ResolutionNotesMinChars int `env:"ALERT_RESOLUTION_MIN_LENGTH" envDefault:"10"`

	// Credentials
	BcryptCost   int           `env:"BCRYPT_COST" envDefault:"10"`
	ResetCodeTTL time.Duration `env:"RESET_CODE_TTL" envDefault:"15m"`

	// Rate limiting
	RateLimit       string        `env:"RATE_LIMIT" envDefault:"100-M"`
	AuthRateLimit   int64         `env:"AUTH_RATE_LIMIT" envDefault:"5"`
	AuthRateWindow  time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"15m"`
	RateLimitPrefix string        `env:"RATE_LIMIT_PREFIX" envDefault:"sos_limiter"`

	// API Keys for admin endpoints
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", 10),
		HTTPPort:    getEnv("HTTP_PORT", getEnv("PORT", "3000")),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		MailFrom:        getEnv("MAIL_FROM", "alertas@sos.local"),
		MailConcurrency: getEnvAsInt("MAIL_CONCURRENCY", 0),
		MailSendTimeout: getEnvAsDuration("MAIL_SEND_TIMEOUT", 10*time.Second),
		MailTimezone:    getEnv("MAIL_TIMEZONE", "UTC"),

		DetailMinChars:          getEnvAsInt("ALERT_DETAIL_MIN_CHARS", 5),
		DetailMaxChars:          getEnvAsInt("ALERT_DETAIL_MAX_CHARS", 300),
		DetailMinWords:          getEnvAsInt("ALERT_DETAIL_MIN_WORDS", 3),
		DetailMaxWords:          getEnvAsInt("ALERT_DETAIL_MAX_WORDS", 100),
		ResolutionNotesMinChars: getEnvAsInt("ALERT_RESOLUTION_MIN_LENGTH", 10),

		BcryptCost:   getEnvAsInt("BCRYPT_COST", 10),
		ResetCodeTTL: getEnvAsDuration("RESET_CODE_TTL", 15*time.Minute),

		RateLimit:       getEnv("RATE_LIMIT", "100-M"),
		AuthRateLimit:   int64(getEnvAsInt("AUTH_RATE_LIMIT", 5)),
		AuthRateWindow:  getEnvAsDuration("AUTH_RATE_WINDOW", 15*time.Minute),
		RateLimitPrefix: getEnv("RATE_LIMIT_PREFIX", "sos_limiter"),
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

	if cfg.DetailMinChars > cfg.DetailMaxChars || cfg.DetailMinWords > cfg.DetailMaxWords {
		return nil, fmt.Errorf("invalid alert detail bounds: chars [%d,%d], words [%d,%d]",
			cfg.DetailMinChars, cfg.DetailMaxChars, cfg.DetailMinWords, cfg.DetailMaxWords)
	}

	// 0 - без ограничения параллельных отправок
	if cfg.MailConcurrency < 0 {
		cfg.MailConcurrency = 0
	}

	return cfg, nil
}

// Location возвращает часовой пояс для форматирования дат в письмах
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.MailTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

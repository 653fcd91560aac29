package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/config.yaml"

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	LLM      LLMConfig      `yaml:"llm"`
	Chat     ChatConfig     `yaml:"chat"`
	Articles ArticlesConfig `yaml:"articles"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// Rate limiter backends.
const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendValkey = "valkey"
)

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool   `yaml:"enabled"`
	RequestsPerMinute int    `yaml:"requestsPerMinute"`
	Burst             int    `yaml:"burst"`
	Backend           string `yaml:"backend"`
	ValkeyAddr        string `yaml:"valkeyAddr"`
}

// RetryConfig configures best-effort retries for POST requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// LLMConfig contains Gemini settings.
type LLMConfig struct {
	APIKey      string        `yaml:"apiKey"`
	Model       string        `yaml:"model"`
	Temperature float32       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// ChatConfig bounds the assistant conversation.
type ChatConfig struct {
	MaxHistoryTurns int `yaml:"maxHistoryTurns"`
}

// ArticlesConfig controls the health feed.
type ArticlesConfig struct {
	BatchSize int `yaml:"batchSize"`
}

// AuthConfig configures locally issued session tokens.
type AuthConfig struct {
	Secret   string        `yaml:"secret"`
	TokenTTL time.Duration `yaml:"tokenTtl"`
}

// BookingConfig selects where booking events go.
type BookingConfig struct {
	Kafka KafkaConfig `yaml:"kafka"`
}

// KafkaConfig contains producer settings for booking events.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// Load reads configuration from a YAML file and environment variables. A .env
// file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat(defaultConfigPath); err == nil {
		if err := hydrateFromFile(cfg, defaultConfigPath); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = parsed
		}
	}
	if v := os.Getenv("CHAT_MAX_HISTORY_TURNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chat.MaxHistoryTurns = parsed
		}
	}
	if v := os.Getenv("ARTICLES_BATCH_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Articles.BatchSize = parsed
		}
	}
	if v := os.Getenv("AUTH_SECRET"); v != "" {
		cfg.Auth.Secret = v
	}
	if v := os.Getenv("AUTH_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.TokenTTL = parsed
		}
	}
	if v := os.Getenv("BOOKING_KAFKA_ENABLED"); v != "" {
		cfg.Booking.Kafka.Enabled = parseBool(v)
	}
	if v := os.Getenv("BOOKING_KAFKA_BROKERS"); v != "" {
		cfg.Booking.Kafka.Brokers = splitList(v)
	}
	if v := os.Getenv("BOOKING_KAFKA_TOPIC"); v != "" {
		cfg.Booking.Kafka.Topic = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BACKEND"); v != "" {
		cfg.HTTP.RateLimit.Backend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VALKEY_ADDR"); v != "" {
		cfg.HTTP.RateLimit.ValkeyAddr = v
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 30,
				Burst:             10,
				Backend:           RateLimitBackendMemory,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				BaseBackoff: 200 * time.Millisecond,
				Exclude: []string{
					"/api/v1/auth/login",
					"/api/v1/bookings",
				},
			},
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		LLM: LLMConfig{
			Model:       "gemini-2.5-flash",
			Temperature: 0.2,
			Timeout:     60 * time.Second,
		},
		Chat: ChatConfig{
			MaxHistoryTurns: 20,
		},
		Articles: ArticlesConfig{
			BatchSize: 6,
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Booking: BookingConfig{
			Kafka: KafkaConfig{
				Topic: "medifind.bookings",
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("llm.apiKey cannot be empty (set GEMINI_API_KEY)")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("llm.timeout must be positive")
	}
	if c.Chat.MaxHistoryTurns <= 0 {
		return errors.New("chat.maxHistoryTurns must be positive")
	}
	if c.Articles.BatchSize <= 0 {
		return errors.New("articles.batchSize must be positive")
	}
	if len(c.Auth.Secret) < 16 {
		return errors.New("auth.secret must be at least 16 characters (set AUTH_SECRET)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.tokenTtl must be positive")
	}
	if c.Booking.Kafka.Enabled {
		if len(c.Booking.Kafka.Brokers) == 0 {
			return errors.New("booking.kafka.brokers cannot be empty when kafka is enabled")
		}
		if strings.TrimSpace(c.Booking.Kafka.Topic) == "" {
			return errors.New("booking.kafka.topic cannot be empty when kafka is enabled")
		}
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
		switch c.HTTP.RateLimit.Backend {
		case RateLimitBackendMemory:
		case RateLimitBackendValkey:
			if strings.TrimSpace(c.HTTP.RateLimit.ValkeyAddr) == "" {
				return errors.New("http.rateLimit.valkeyAddr cannot be empty for the valkey backend")
			}
		default:
			return fmt.Errorf("http.rateLimit.backend %q is not supported", c.HTTP.RateLimit.Backend)
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	return nil
}

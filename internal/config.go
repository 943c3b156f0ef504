package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Security      SecurityConfig      `mapstructure:"security" validate:"required"`
	Assistant     AssistantConfig     `mapstructure:"assistant" validate:"required"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"required,min=1"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"required,min=1"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Source          string        `mapstructure:"source"`
}

type SecurityConfig struct {
	AccessTokenSecret    string        `mapstructure:"access_token_secret" validate:"required,min=32"`
	RefreshTokenSecret   string        `mapstructure:"refresh_token_secret" validate:"required,min=32"`
	AccessTokenDuration  time.Duration `mapstructure:"access_token_duration"`
	RefreshTokenDuration time.Duration `mapstructure:"refresh_token_duration"`
	BCryptCost           int           `mapstructure:"bcrypt_cost"`
}

// AssistantConfig carries everything the chat subsystem needs. The provider
// client is constructed once from this struct in cmd and injected; business
// logic never reads environment state.
type AssistantConfig struct {
	APIKey             string        `mapstructure:"api_key" validate:"required"`
	Model              string        `mapstructure:"model"`
	BaseURL            string        `mapstructure:"base_url"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	PolicyMaxTokens    int           `mapstructure:"policy_max_tokens"`
	GeneralMaxTokens   int           `mapstructure:"general_max_tokens"`
	PolicyTemperature  float32       `mapstructure:"policy_temperature"`
	GeneralTemperature float32       `mapstructure:"general_temperature"`
	MaxPromptBytes     int           `mapstructure:"max_prompt_bytes"`
	HistoryLimit       int           `mapstructure:"history_limit"`
}

type ObservabilityConfig struct {
	Env string `mapstructure:"env"`
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Source == "" {
		return errors.New("database source is required")
	}
	if _, err := url.Parse(c.Database.Source); err != nil {
		return fmt.Errorf("invalid database source: %w", err)
	}
	if len(c.Security.AccessTokenSecret) < 32 {
		return errors.New("access token secret must be at least 32 characters")
	}
	if len(c.Security.RefreshTokenSecret) < 32 {
		return errors.New("refresh token secret must be at least 32 characters")
	}
	if c.Assistant.APIKey == "" {
		return errors.New("assistant api key is required")
	}
	c.applyDefaults()
	return nil
}

func (c *Config) applyDefaults() {
	if c.Security.AccessTokenDuration <= 0 {
		c.Security.AccessTokenDuration = 15 * time.Minute
	}
	if c.Security.RefreshTokenDuration <= 0 {
		c.Security.RefreshTokenDuration = 7 * 24 * time.Hour
	}
	if c.Assistant.Model == "" {
		c.Assistant.Model = "gpt-4o"
	}
	if c.Assistant.RequestTimeout <= 0 {
		c.Assistant.RequestTimeout = 30 * time.Second
	}
	if c.Assistant.PolicyMaxTokens <= 0 {
		c.Assistant.PolicyMaxTokens = 800
	}
	if c.Assistant.GeneralMaxTokens <= 0 {
		c.Assistant.GeneralMaxTokens = 500
	}
	if c.Assistant.PolicyTemperature <= 0 {
		c.Assistant.PolicyTemperature = 0.3
	}
	if c.Assistant.GeneralTemperature <= 0 {
		c.Assistant.GeneralTemperature = 0.7
	}
	if c.Assistant.HistoryLimit <= 0 {
		c.Assistant.HistoryLimit = 50
	}
}

// LoadConfigFromEnv builds configuration from environment variables for
// container deployments where no config.yml is mounted.
func LoadConfigFromEnv() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:           envInt("SERVER_PORT", 8080),
			BaseURL:        os.Getenv("SERVER_BASE_URL"),
			AllowedOrigins: os.Getenv("SERVER_ALLOWED_ORIGINS"),
			ReadTimeout:    envDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   envDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    envDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Source:          os.Getenv("DATABASE_URL"),
			MaxOpenConns:    envInt("DATABASE_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("DATABASE_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: envDuration("DATABASE_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: envDuration("DATABASE_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		Security: SecurityConfig{
			AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
			RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
			BCryptCost:         envInt("BCRYPT_COST", 10),
		},
		Assistant: AssistantConfig{
			APIKey:         os.Getenv("OPENAI_API_KEY"),
			Model:          os.Getenv("OPENAI_MODEL"),
			BaseURL:        os.Getenv("OPENAI_BASE_URL"),
			RequestTimeout: envDuration("ASSISTANT_REQUEST_TIMEOUT", 30*time.Second),
			MaxPromptBytes: envInt("ASSISTANT_MAX_PROMPT_BYTES", 0),
		},
		Observability: ObservabilityConfig{
			Env: os.Getenv("APP_ENV"),
		},
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

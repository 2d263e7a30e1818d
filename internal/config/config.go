package config

import (
	"github.com/spf13/viper"

	"github.com/souravmenon1999/topstepx-engine/types"
)

// Config holds the application configuration.
type Config struct {
	Executor  ExecutorConfig  `mapstructure:"executor"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Order     OrderConfig     `mapstructure:"order"`
	Retry     RetryConfig     `mapstructure:"retry"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ExecutorConfig holds venue endpoint settings.
type ExecutorConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	AccountID uint64 `mapstructure:"account_id"`
}

// AuthConfig holds loginKey credentials.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	APIKey   string `mapstructure:"api_key"`
}

// OrderConfig holds default order parameters.
type OrderConfig struct {
	Symbol    string  `mapstructure:"symbol"`
	Quantity  uint32  `mapstructure:"quantity"`
	OrderType string  `mapstructure:"order_type"` // "limit" or "market"
	Limit     float64 `mapstructure:"limit_price"`
}

// RetryConfig holds transient-failure retry settings.
type RetryConfig struct {
	MaxRetries  int `mapstructure:"max_retries"`
	BaseDelayMs int `mapstructure:"base_delay_ms"`
}

// RateLimitConfig holds sliding-window rate limiting settings.
type RateLimitConfig struct {
	MaxCalls      int `mapstructure:"max_calls"`
	PeriodSeconds int `mapstructure:"period_seconds"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// LoadConfig reads configuration from a file.
func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, types.NewConfigLoadingError("failed to read config file", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, types.NewConfigLoadingError("failed to unmarshal config", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Retry.MaxRetries == 0 {
		cfg.Retry.MaxRetries = 3
	}
	if cfg.Retry.BaseDelayMs == 0 {
		cfg.Retry.BaseDelayMs = 750
	}
	if cfg.RateLimit.MaxCalls == 0 {
		cfg.RateLimit.MaxCalls = 60
	}
	if cfg.RateLimit.PeriodSeconds == 0 {
		cfg.RateLimit.PeriodSeconds = 60
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

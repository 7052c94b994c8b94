package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Database (payment ledger only; upstream data is never persisted)
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Redis (free-tier counters)
	RedisURL string `mapstructure:"REDIS_URL"`

	// Receipt signing
	ReceiptSecret string        `mapstructure:"RECEIPT_SECRET"`
	ReceiptTTL    time.Duration `mapstructure:"RECEIPT_TTL"`

	// Free tier: requests allowed per client per window before 402
	FreeTierRequests int           `mapstructure:"FREE_TIER_REQUESTS"`
	FreeTierWindow   time.Duration `mapstructure:"FREE_TIER_WINDOW"`

	// CORS
	CorsOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Upstream APIs
	NHLBaseURL         string        `mapstructure:"NHL_BASE_URL"`
	ESPNBaseURL        string        `mapstructure:"ESPN_BASE_URL"`
	UpstreamTimeout    time.Duration `mapstructure:"UPSTREAM_TIMEOUT"`
	UpstreamRateLimit  int           `mapstructure:"UPSTREAM_RATE_LIMIT"`
	BreakerThreshold   int           `mapstructure:"CIRCUIT_BREAKER_THRESHOLD"`

	// Live score stream
	ScorePollInterval string `mapstructure:"SCORE_POLL_INTERVAL"`
	EnableScoreStream bool   `mapstructure:"ENABLE_SCORE_STREAM"`

	// Agent registration (cmd/register-agent)
	EthRPCURL       string `mapstructure:"ETH_RPC_URL"`
	AgentPrivateKey string `mapstructure:"AGENT_PRIVATE_KEY"`
	RegistryAddress string `mapstructure:"AGENT_REGISTRY_ADDRESS"`
	AgentName       string `mapstructure:"AGENT_NAME"`
	AgentURL        string `mapstructure:"AGENT_URL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "puckdata.db")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("RECEIPT_SECRET", "dev-receipt-secret")
	viper.SetDefault("RECEIPT_TTL", "720h")
	viper.SetDefault("FREE_TIER_REQUESTS", 10)
	viper.SetDefault("FREE_TIER_WINDOW", "24h")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	viper.SetDefault("NHL_BASE_URL", "https://api-web.nhle.com/v1")
	viper.SetDefault("ESPN_BASE_URL", "https://site.api.espn.com/apis/site/v2/sports/hockey/nhl")
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("UPSTREAM_RATE_LIMIT", 10) // requests per second per upstream
	viper.SetDefault("CIRCUIT_BREAKER_THRESHOLD", 5)
	viper.SetDefault("SCORE_POLL_INTERVAL", "30s")
	viper.SetDefault("ENABLE_SCORE_STREAM", true)
	viper.SetDefault("ETH_RPC_URL", "")
	viper.SetDefault("AGENT_PRIVATE_KEY", "")
	viper.SetDefault("AGENT_REGISTRY_ADDRESS", "")
	viper.SetDefault("AGENT_NAME", "puckdata")
	viper.SetDefault("AGENT_URL", "http://localhost:8080")

	// Read from environment
	viper.AutomaticEnv()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Parse CORS origins from comma-separated string
	if corsStr := viper.GetString("CORS_ORIGINS"); corsStr != "" {
		config.CorsOrigins = strings.Split(corsStr, ",")
	}

	return &config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

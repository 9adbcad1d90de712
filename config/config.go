package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Redis RedisConfig
	Cache CacheConfig

	// Knowledge sources
	IFixit IFixitConfig
	Tavily TavilyConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Pipeline & transport
	Strategy  StrategyConfig
	Stream    StreamConfig
	RateLimit RateLimitConfig
	Usage     UsageConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig sizes the in-process tier that sits in front of Redis.
type CacheConfig struct {
	LocalSize int
	LocalTTL  time.Duration
}

type IFixitConfig struct {
	BaseURL string
	Timeout time.Duration
}

type TavilyConfig struct {
	APIKey      string
	BaseURL     string
	MaxResults  int
	SearchDepth string
	Timeout     time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type StrategyConfig struct {
	ProviderTimeout time.Duration
	MaxGuides       int
}

type StreamConfig struct {
	ChunkSize   int
	PacingDelay time.Duration
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// UsageConfig caps per-user token consumption. Zero means unlimited.
type UsageConfig struct {
	TokenLimit int64
}

// Load loads configuration using Viper.
// A .env file is loaded first when present so its values are visible as env vars.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Redis.Addr = redisAddr
	}
	cfg.Cache.LocalSize = viper.GetInt("cache.local_size")
	cfg.Cache.LocalTTL = viper.GetDuration("cache.local_ttl")

	// Knowledge sources
	cfg.IFixit.BaseURL = viper.GetString("ifixit.base_url")
	cfg.IFixit.Timeout = viper.GetDuration("ifixit.timeout")

	cfg.Tavily.APIKey = viper.GetString("tavily.api_key")
	cfg.Tavily.BaseURL = viper.GetString("tavily.base_url")
	cfg.Tavily.MaxResults = viper.GetInt("tavily.max_results")
	cfg.Tavily.SearchDepth = viper.GetString("tavily.search_depth")
	cfg.Tavily.Timeout = viper.GetDuration("tavily.timeout")
	if tavilyKey := viper.GetString("tavily_api_key"); tavilyKey != "" {
		cfg.Tavily.APIKey = tavilyKey
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Pipeline & transport
	cfg.Strategy.ProviderTimeout = viper.GetDuration("strategy.provider_timeout")
	cfg.Strategy.MaxGuides = viper.GetInt("strategy.max_guides")
	cfg.Stream.ChunkSize = viper.GetInt("stream.chunk_size")
	cfg.Stream.PacingDelay = viper.GetDuration("stream.pacing_delay")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.Usage.TokenLimit = viper.GetInt64("usage.token_limit")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("cache.local_size", 1000)
	viper.SetDefault("cache.local_ttl", "10m")

	viper.SetDefault("ifixit.base_url", "https://www.ifixit.com/api/2.0")
	viper.SetDefault("ifixit.timeout", "15s")
	viper.SetDefault("tavily.base_url", "https://api.tavily.com")
	viper.SetDefault("tavily.max_results", 5)
	viper.SetDefault("tavily.search_depth", "basic")
	viper.SetDefault("tavily.timeout", "15s")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("strategy.provider_timeout", "20s")
	viper.SetDefault("strategy.max_guides", 3)
	viper.SetDefault("stream.chunk_size", 1)
	viper.SetDefault("stream.pacing_delay", "30ms")
	viper.SetDefault("rate_limit.requests_per_min", 30)
	viper.SetDefault("usage.token_limit", 0)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"repair-assistant/config"
	"repair-assistant/pkg/gemini"
	"repair-assistant/pkg/groq"
	"repair-assistant/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "%s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "%d provider(s) failed to initialize but continuing with %d working provider(s)",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// NewManagerFromConfig builds the provider chain and wraps it in a Manager.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, l log.Logger) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg, l)
	if err != nil {
		return nil, err
	}

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 60*time.Second),
	}, l), nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := parseDuration(cfg.Timeout, 0)

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "groq":
		client, err := newCompatibleClient(cfg, cfg.BaseURL, timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create groq client: %w", err)
		}
		return NewGroqAdapter(client), nil

	case "deepseek", "qwen", "alibaba":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = compatibleBaseURLs[cfg.Name]
		}
		client, err := newCompatibleClient(cfg, baseURL, timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewCompatibleAdapter(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

// compatibleBaseURLs are default endpoints of OpenAI-compatible providers.
var compatibleBaseURLs = map[string]string{
	"deepseek": "https://api.deepseek.com/v1",
	"qwen":     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
	"alibaba":  "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

func newCompatibleClient(cfg config.ProviderConfig, baseURL string, timeout time.Duration) (*groq.Client, error) {
	groqCfg := groq.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
	}
	if timeout > 0 {
		groqCfg.HTTPClient = &http.Client{Timeout: timeout}
	}
	return groq.New(groqCfg)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}

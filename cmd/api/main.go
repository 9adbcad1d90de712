package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"repair-assistant/config"
	_ "repair-assistant/docs" // Swagger docs
	chatRepo "repair-assistant/internal/chat/repository/redis"
	chatUC "repair-assistant/internal/chat/usecase"
	"repair-assistant/internal/httpserver"
	"repair-assistant/internal/intent"
	"repair-assistant/internal/pipeline"
	cacheMemory "repair-assistant/internal/repair/repository/memory"
	cacheRedis "repair-assistant/internal/repair/repository/redis"
	"repair-assistant/internal/strategy"
	"repair-assistant/internal/synthesize"
	"repair-assistant/pkg/ifixit"
	"repair-assistant/pkg/llmprovider"
	"repair-assistant/pkg/log"
	pkgRedis "repair-assistant/pkg/redis"
	"repair-assistant/pkg/tavily"
)

// @title       Repair Assistant API
// @description Device repair assistant: intent extraction, iFixit guides with web fallback, streamed answers.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Repair Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Redis: strategy cache and usage counters
	rdb, err := pkgRedis.Connect(ctx, pkgRedis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer rdb.Close()

	cache := cacheMemory.New(cacheRedis.New(rdb, logger), cacheMemory.Options{
		Size: cfg.Cache.LocalSize,
		TTL:  cfg.Cache.LocalTTL,
	}, logger)

	// 4. LLM providers
	llm, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}

	// 5. Knowledge sources
	ifixitClient := ifixit.New(ifixit.Config{
		BaseURL:    cfg.IFixit.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.IFixit.Timeout},
	})

	tavilyClient, err := tavily.New(tavily.Config{
		APIKey:      cfg.Tavily.APIKey,
		BaseURL:     cfg.Tavily.BaseURL,
		MaxResults:  cfg.Tavily.MaxResults,
		SearchDepth: cfg.Tavily.SearchDepth,
		HTTPClient:  &http.Client{Timeout: cfg.Tavily.Timeout},
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Tavily: %v", err)
		return
	}

	// 6. Pipeline
	extractor := intent.New(llm, logger)
	strategyOpt := strategy.Options{
		ProviderTimeout: cfg.Strategy.ProviderTimeout,
		MaxGuides:       cfg.Strategy.MaxGuides,
	}
	guide := strategy.NewGuide(ifixitClient, extractor, cache, strategyOpt, logger)
	web := strategy.NewWeb(tavilyClient, cache, strategyOpt, logger)
	controller := pipeline.New(extractor, guide, web, synthesize.New(llm, logger), logger)

	// 7. Chat domain
	uc := chatUC.New(controller, chatRepo.New(rdb, logger), chatUC.Options{
		ChunkSize:   cfg.Stream.ChunkSize,
		PacingDelay: cfg.Stream.PacingDelay,
		TokenLimit:  cfg.Usage.TokenLimit,
	}, logger)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Redis:          rdb,
		ChatUseCase:    uc,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

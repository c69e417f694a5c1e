package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"

	"github.com/placement-bot/backend/internal/api/handlers"
	"github.com/placement-bot/backend/internal/assistant"
	"github.com/placement-bot/backend/internal/cache/redis"
	"github.com/placement-bot/backend/internal/docs"
	"github.com/placement-bot/backend/internal/generator"
	"github.com/placement-bot/backend/internal/history"
	"github.com/placement-bot/backend/internal/knowledge"
	"github.com/placement-bot/backend/internal/metrics"
	"github.com/placement-bot/backend/internal/middleware/ratelimit"
	"github.com/placement-bot/backend/internal/middleware/security"
	"github.com/placement-bot/backend/internal/retrieval"
	"github.com/placement-bot/backend/pkg/config"
	appLogger "github.com/placement-bot/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting internship assistant API server")

	metrics.Register()

	kb := knowledge.NewStore(cfg.Knowledge.Path)
	appLogger.Info("Knowledge base loaded", zap.Int("entries", kb.Len()))

	// Every collaborator below is optional. Missing credentials or an
	// unreachable backend degrade the tier chain instead of aborting startup.
	var caps assistant.Capabilities

	var responseCache assistant.ResponseCache
	var embeddingCache retrieval.EmbeddingCache
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			time.Duration(cfg.Redis.TTLMinutes)*time.Minute,
		)
		if err != nil {
			appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
		} else {
			defer redisClient.Close()
			responseCache = redisClient
			embeddingCache = redisClient
			caps.Cache = true
		}
	}

	var hist *history.Store
	if cfg.SQLite.Path != "" {
		hist, err = history.NewStore(cfg.SQLite.Path)
		if err != nil {
			appLogger.Warn("History store unavailable", zap.Error(err))
			hist = nil
		} else {
			defer hist.Close()
			caps.History = true
		}
	}

	var gen assistant.Generator
	var embedder retrieval.Embedder
	var ragBuilder *retrieval.Builder
	if cfg.Generator.APIKey != "" {
		gen = generator.NewClient(
			cfg.Generator.APIKey,
			cfg.Generator.Model,
			cfg.Generator.Temperature,
			cfg.Generator.MaxTokens,
			cfg.Generator.TimeoutSec,
			cfg.Generator.ForeignTolerance,
		)
		caps.Generator = true

		embedder = retrieval.NewOpenAIEmbedder(
			cfg.Generator.APIKey,
			cfg.Retrieval.EmbeddingModel,
			cfg.Retrieval.BatchSize,
			embeddingCache,
		)
		caps.Retrieval = true
	}

	var fetcher *docs.Fetcher
	var docNames []string
	if cfg.Documents.BaseURL != "" && len(cfg.Documents.Names) > 0 {
		fetcher = docs.NewFetcher(cfg.Documents.BaseURL, time.Duration(cfg.Documents.TimeoutSec)*time.Second)
		docNames = cfg.Documents.Names
		caps.Documents = true
	}

	if caps.Retrieval {
		ragBuilder = retrieval.NewBuilder(embedder, fetcher, docNames, retrieval.BuilderOptions{
			DocChunkSize:    cfg.Retrieval.DocChunkSize,
			DocChunkOverlap: cfg.Retrieval.DocChunkOverlap,
			QAChunkSize:     cfg.Retrieval.QAChunkSize,
			QAChunkOverlap:  cfg.Retrieval.QAChunkOverlap,
		})
	}

	appLogger.Info("Capabilities resolved",
		zap.Bool("generator", caps.Generator),
		zap.Bool("retrieval", caps.Retrieval),
		zap.Bool("documents", caps.Documents),
		zap.Bool("cache", caps.Cache),
		zap.Bool("history", caps.History),
	)

	bot := assistant.New(kb, caps, assistant.Options{
		HighThreshold:   cfg.Similarity.HighThreshold,
		MediumThreshold: cfg.Similarity.MediumThreshold,
		TopK:            cfg.Retrieval.TopK,
	}, gen, embedder, ragBuilder, responseCache, hist)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The index builds in the background so the lexical tiers answer from
	// the first request.
	go func() {
		buildCtx, buildCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer buildCancel()
		if err := bot.RebuildIndex(buildCtx); err != nil {
			appLogger.Warn("Initial index build failed", zap.Error(err))
		}
	}()

	if cfg.Knowledge.Watch {
		watcher, err := knowledge.NewWatcher(cfg.Knowledge.Path, func() {
			bot.Reload(context.Background())
		})
		if err != nil {
			appLogger.Warn("Knowledge watcher unavailable", zap.Error(err))
		} else {
			defer watcher.Close()
			go watcher.Run(ctx)
		}
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{
		IsDevelopment: cfg.Logging.Level == "debug",
	}))

	limiter := ratelimit.New(cfg.RateLimit.RequestsPerMinute)
	defer limiter.Stop()

	chatHandler := handlers.NewChatHandler(bot)
	adminHandler := handlers.NewAdminHandler(bot)
	wsHandler := handlers.NewWebSocketHandler(bot)

	api := app.Group("/api/v1")

	api.Post("/chat", limiter.Middleware(), chatHandler.HandleChat)
	api.Get("/faq", chatHandler.HandleFAQ)
	api.Get("/history", chatHandler.HandleHistory)

	api.Post("/admin/reload", adminHandler.HandleReload)
	api.Get("/admin/status", adminHandler.HandleStatus)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	app.Get("/metrics", metrics.Handler())

	app.Use("/ws/chat", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/chat", websocket.New(wsHandler.HandleConnection))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	cancel()
	app.Shutdown()
	appLogger.Info("Server stopped")
}

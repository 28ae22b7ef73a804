package main

// @title Transit Graph API
// @version 1.0.0
// @description Транспортный граф Ruter: остановки, линии, табло отправлений, поиск мест и планировщик поездок.
// @description
// @description Основные возможности:
// @description - Остановки, линии и табло отправлений, сгруппированные по платформам и направлениям
// @description - Поиск мест по названию и остановок по координатам (lat/lng или UTM32)
// @description - Планирование поездок
// @description - GraphQL схема поверх тех же данных (POST /graphql)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/transit-graph/docs"
	"github.com/transit-graph/internal/config"
	"github.com/transit-graph/internal/delivery/graph"
	httpDelivery "github.com/transit-graph/internal/delivery/http"
	"github.com/transit-graph/internal/delivery/http/handler"
	"github.com/transit-graph/internal/domain/repository"
	"github.com/transit-graph/internal/infrastructure/ruter"
	"github.com/transit-graph/internal/pkg/logger"
	"github.com/transit-graph/internal/pkg/tracing"
	"github.com/transit-graph/internal/repository/cache"
	"github.com/transit-graph/internal/usecase"
	"github.com/transit-graph/internal/worker"
	"github.com/transit-graph/internal/worker/warmup"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transit Graph")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	// 3. Tracing
	shutdownTracing, err := tracing.Init(&cfg.Tracing, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}

	// 4. Optional Redis second level cache
	var (
		redisClient *cache.Redis
		store       repository.CacheRepository
	)
	if cfg.Cache.RedisEnabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		store = cache.NewRedisStore(redisClient)
		log.Info("Redis connected", zap.Duration("ttl", cfg.Cache.RedisTTL))
	}

	plannerLocation, err := cfg.PlannerLocation()
	if err != nil {
		log.Fatal("Invalid planner timezone", zap.Error(err))
	}

	// 5. Upstream client behind the response cache
	responseCache := cache.NewResponseCache(cfg.Cache.Capacity, cfg.Cache.TTL, log)
	fetcher := ruter.NewCachedFetcher(
		ruter.NewHTTPFetcher(&cfg.Upstream, log),
		responseCache,
		store,
		cfg.Cache.RedisTTL,
		log,
	)
	transitRepo := ruter.NewClient(fetcher, cfg.Upstream.BaseURL, plannerLocation, log)

	log.Info("Upstream client initialized",
		zap.Int("cache_capacity", cfg.Cache.Capacity),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
	)

	// 6. Initialize Use Cases
	stopUC := usecase.NewStopUseCase(transitRepo, log)
	lineUC := usecase.NewLineUseCase(transitRepo, log)
	placeUC := usecase.NewPlaceUseCase(transitRepo, log)
	plannerUC := usecase.NewPlannerUseCase(transitRepo, log)

	schema, err := graph.NewSchema(stopUC, lineUC, placeUC, plannerUC, log)
	if err != nil {
		log.Fatal("Failed to build GraphQL schema", zap.Error(err))
	}

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewStopHandler(stopUC, log),
		handler.NewLineHandler(lineUC, log),
		handler.NewPlaceHandler(placeUC, log),
		handler.NewPlannerHandler(plannerUC, log),
		handler.NewGraphQLHandler(schema, log),
	)

	// 8. Background workers
	workers := worker.NewManager(log)
	if len(cfg.Warmup.StopIDs) > 0 {
		workers.Register(warmup.NewRealtimeWarmer(transitRepo, &cfg.Warmup, log))
	}
	workers.Start(context.Background())

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workers.Stop(); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	shutdownTracing(ctx)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}

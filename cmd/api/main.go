package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/ticket-insights/internal/api/http"
	"github.com/spec-kit/ticket-insights/internal/api/http/handlers"
	"github.com/spec-kit/ticket-insights/internal/auth"
	"github.com/spec-kit/ticket-insights/internal/config"
	"github.com/spec-kit/ticket-insights/internal/events"
	"github.com/spec-kit/ticket-insights/internal/observability"
	"github.com/spec-kit/ticket-insights/internal/persistence"
	"github.com/spec-kit/ticket-insights/internal/repository"
	"github.com/spec-kit/ticket-insights/internal/service"
	"github.com/spec-kit/ticket-insights/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAnalyticsWorker(dispatcher, metrics, logger)

	if cfg.Kafka.Enabled() {
		publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer publisher.Close() //nolint:errcheck
		for _, eventType := range []events.EventType{
			events.EventAssigneesRecommended,
			events.EventPriorityRecommended,
			events.EventResponseTimeEstimated,
			events.EventSimilarTicketsFound,
		} {
			dispatcher.Subscribe(eventType, publisher.Handler())
		}
		logger.Info("kafka event sink enabled", zap.Strings("brokers", cfg.Kafka.Brokers))
	}

	ticketRepo := repository.NewTicketReader(pg.PoolHandle())
	recommendationService := service.NewRecommendationService(service.RecommendationDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
		Logger:     logger,
	})

	authMiddleware := auth.NewMiddleware(auth.NewTokenManager(cfg.Auth.JWTSecret))

	var rateLimit fiber.Handler
	if cfg.RateLimit.Enabled {
		rateLimit = httptransport.NewRateLimiter(redis, cfg.RateLimit.PerMinute, logger)
	}

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	recommendationsHandler := handlers.NewRecommendationsHandler(recommendationService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          healthHandler,
		Recommendations: recommendationsHandler,
		AuthMiddleware:  authMiddleware,
		RateLimit:       rateLimit,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}

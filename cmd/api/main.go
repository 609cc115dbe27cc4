package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krissstine/petcarewithollama/internal/adapters/cache"
	"github.com/krissstine/petcarewithollama/internal/adapters/catalog"
	"github.com/krissstine/petcarewithollama/internal/adapters/providers/speech"
	"github.com/krissstine/petcarewithollama/internal/api/handlers"
	"github.com/krissstine/petcarewithollama/internal/api/routes"
	appservices "github.com/krissstine/petcarewithollama/internal/application/services"
	"github.com/krissstine/petcarewithollama/internal/domain/providers"
	"github.com/krissstine/petcarewithollama/internal/domain/repositories"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/clients/postgres"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/clients/redis"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/observability"
	queryservices "github.com/krissstine/petcarewithollama/internal/query/services"
	"github.com/krissstine/petcarewithollama/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Select the catalog source
	var source repositories.CatalogSource
	switch cfg.Catalog.Source {
	case "postgres":
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		logger.Info().Msg("PostgreSQL client initialized")
		source = catalog.NewPostgresSource(pgClient)
	case "embedded":
		source = catalog.NewEmbeddedSource()
	default:
		logger.Fatal().Str("source", cfg.Catalog.Source).Msg("unknown catalog source")
	}

	// Load the catalog snapshot. It is immutable for the process lifetime.
	snapshot, err := source.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalog")
	}
	logger.Info().
		Int("clinics", len(snapshot.Clinics())).
		Int("stores", len(snapshot.Stores())).
		Msg("catalog loaded")

	// Initialize Redis client
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		// The assistant works without caching
		logger.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	// Select the speech provider
	var speechProvider providers.SpeechProvider
	switch cfg.Speech.Provider {
	case "espeak":
		speechProvider = speech.NewEspeakProvider(cfg.Speech.Command)
		if !speechProvider.Available() {
			logger.Warn().Str("command", cfg.Speech.Command).
				Msg("speech engine not found, assistant will be text-only")
		}
	case "mock":
		speechProvider = speech.NewMockSpeechProvider()
	case "disabled":
		speechProvider = nil
	default:
		logger.Fatal().Str("provider", cfg.Speech.Provider).Msg("unknown speech provider")
	}

	// Initialize services
	queryService := queryservices.NewCatalogQueryService(snapshot, cfg.Query)
	intentService := appservices.NewIntentService()
	responseService := appservices.NewResponseService()
	assistantService := appservices.NewAssistantService(
		intentService,
		queryService,
		responseService,
		speechProvider,
		cacheProvider,
		metrics,
		cfg.Assistant,
		*logger,
	)

	// Initialize handlers
	locationHandler := handlers.NewLocationHandler(queryService, cfg.Assistant)
	clinicHandler := handlers.NewClinicHandler(queryService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	speechHandler := handlers.NewSpeechHandler(assistantService)

	router := routes.NewRouter(
		locationHandler,
		clinicHandler,
		assistantHandler,
		speechHandler,
		metrics,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

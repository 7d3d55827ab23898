package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"rwa-ledger/config"
	httpHandler "rwa-ledger/internal/adapter/http/handler"
	"rwa-ledger/internal/adapter/storage/ledgerstore"
	pgStorage "rwa-ledger/internal/adapter/storage/postgres"
	redisStorage "rwa-ledger/internal/adapter/storage/redis"
	"rwa-ledger/internal/core/domain"
	"rwa-ledger/internal/core/ports"
	"rwa-ledger/internal/metrics"
	"rwa-ledger/internal/service"
	"rwa-ledger/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	journalBuffer     = 1024
	snapshotsKept     = 5
	idempotencyTTL    = 24 * time.Hour
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	cfgPath := os.Getenv("RWA_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Str("ledger_mode", cfg.Ledger.Mode).
		Bool("compliance_gated", cfg.Ledger.ComplianceGated).
		Int("port", cfg.Server.Port).
		Msg("Starting RWA ledger")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("jwt.secret is required (RWA_JWT_SECRET)")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var workers sync.WaitGroup

	m := metrics.New(prometheus.DefaultRegisterer)

	store, err := ledgerstore.New(logger.Component(log, "store"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create ledger store")
	}
	core := service.NewLedgerCore(store, service.LedgerOptions{
		Mode:            domain.IssuanceMode(cfg.Ledger.Mode),
		ComplianceGated: cfg.Ledger.ComplianceGated,
		TokenDecimals:   cfg.Ledger.TokenDecimals,
	})
	healthCheckers := []ports.HealthChecker{store}

	var (
		journal          ports.EventRepository
		idempotencyCache ports.IdempotencyCache
		idempotencyLock  ports.IdempotencyLock
		rateLimitStore   *redisStorage.RateLimitStore
	)

	// PostgreSQL: event journal, checkpoints, idempotency fallback
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate PostgreSQL schema")
		}
		log.Info().Msg("PostgreSQL connected")

		journal = pgStorage.NewEventRepo(pool)
		idempotencyCache = pgStorage.NewIdempotencyRepo(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))

		checkpoints := service.NewCheckpointService(store, pgStorage.NewSnapshotRepo(pool, snapshotsKept), journal, m, cfg.Ledger.CheckpointInterval, logger.Component(log, "checkpoint"))
		restored, err := checkpoints.Restore(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to restore ledger checkpoint")
		}
		log.Info().Bool("restored", restored).Msg("Ledger checkpoint restore finished")

		workers.Add(1)
		go func() {
			defer workers.Done()
			checkpoints.Run(ctx)
		}()
	}

	// Every committed event is counted; with PostgreSQL it is also journaled.
	publisher := service.NewEventPublisher(journal, m, logger.Component(log, "journal"), journalBuffer)
	publisher.Start(context.Background())
	defer publisher.Close()
	store.Subscribe(publisher)

	// Redis: rate limits, idempotency cache and in-flight lock
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		idempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		idempotencyLock = redisStorage.NewIdempotencyLock(rdb)
		if cfg.Server.RateLimit > 0 {
			rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	if cfg.Ledger.BootstrapFile != "" {
		plan, err := service.LoadBootstrapPlan(cfg.Ledger.BootstrapFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.Ledger.BootstrapFile).Msg("Failed to load bootstrap plan")
		}
		applied, err := service.NewBootstrapService(core, logger.Component(log, "bootstrap")).Apply(ctx, plan)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to apply bootstrap plan")
		}
		log.Info().Bool("applied", applied).Msg("Bootstrap plan processed")
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	gin.SetMode(cfg.Server.Mode)
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Access:           service.NewAccessService(core, logger.Component(log, "access")),
		Identity:         service.NewIdentityService(core, logger.Component(log, "identity")),
		Registry:         service.NewRegistryService(core, logger.Component(log, "registry")),
		Tokens:           service.NewTokenLedgerService(core, logger.Component(log, "ledger")),
		Manager:          service.NewManagerService(core, logger.Component(log, "manager")),
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		RateLimit:        int64(cfg.Server.RateLimit),
		IdempotencyCache: idempotencyCache,
		IdempotencyLock:  idempotencyLock,
		IdempotencyTTL:   idempotencyTTL,
		RequestTimeout:   cfg.Server.RequestTimeout,
		HealthCheckers:   healthCheckers,
		Metrics:          m,
		MetricsHandler:   promhttp.Handler(),
		Logger:           log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Stop background workers; the checkpoint loop saves once more on exit.
	cancel()
	workers.Wait()

	log.Info().Msg("Server exited")
}

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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	httpAdapter "github.com/iho/finledger/internal/adapter/http"
	"github.com/iho/finledger/internal/adapter/http/handler"
	"github.com/iho/finledger/internal/adapter/http/middleware"
	redisRepo "github.com/iho/finledger/internal/adapter/repository/redis"
	"github.com/iho/finledger/internal/bootstrap"
	"github.com/iho/finledger/internal/infrastructure/config"
	"github.com/iho/finledger/internal/infrastructure/idgen"
	"github.com/iho/finledger/internal/infrastructure/logger"
	"github.com/iho/finledger/internal/infrastructure/metrics"
	"github.com/iho/finledger/internal/infrastructure/redis"
	"github.com/iho/finledger/internal/usecase"
)

// limiterCleanupInterval is how often idle rate limiter entries are dropped.
const limiterCleanupInterval = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}

	log.Info().Msg("server stopped")
}

// app is the wired service.
type app struct {
	ledger      *usecase.LedgerService
	router      http.Handler
	redisClient *goredis.Client
	rateLimiter *middleware.RateLimiter
}

func (a *app) Close() {
	if a.redisClient != nil {
		a.redisClient.Close()
	}
}

// newApp builds the ledger, its optional collaborators and the router.
func newApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var (
		opts     = []usecase.Option{usecase.WithLocation(loc)}
		m        *metrics.Metrics
		gatherer prometheus.Gatherer
	)

	if cfg.MetricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.New(registry)
		gatherer = registry
		opts = append(opts, usecase.WithObserver(m))
	}

	ledger := usecase.NewLedgerService(idgen.NewULIDGenerator(), opts...)

	if cfg.SeedDemoData {
		if err := bootstrap.LoadDemoData(ledger); err != nil {
			return nil, fmt.Errorf("failed to load demo data: %w", err)
		}
		log.Info().
			Int("accounts", len(ledger.GetAllAccounts())).
			Str("total_balance", ledger.GetTotalBalance().String()).
			Msg("demo data loaded")
	}

	a := &app{ledger: ledger}

	var idempotency *middleware.IdempotencyMiddleware
	if cfg.RedisURL != "" {
		a.redisClient, err = redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		log.Info().Msg("connected to redis")

		store := redisRepo.NewIdempotencyStore(a.redisClient)
		idempotency = middleware.NewIdempotencyMiddleware(store, cfg.IdempotencyTTL, log)
		if m != nil {
			idempotency.WithMetrics(m)
		}
	}

	if cfg.RateLimitRPS > 0 {
		a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		if m != nil {
			a.rateLimiter.WithMetrics(m)
		}
	}

	a.router = httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     handler.NewAccountHandler(ledger),
		TransactionHandler: handler.NewTransactionHandler(ledger),
		TransferHandler:    handler.NewTransferHandler(ledger),
		ReportHandler:      handler.NewReportHandler(ledger, usecase.SystemClock{}, loc),
		HealthHandler:      handler.NewHealthHandler(a.redisClient),
		Logger:             log,
		Idempotency:        idempotency,
		RateLimiter:        a.rateLimiter,
		Metrics:            m,
		Gatherer:           gatherer,
	})

	return a, nil
}

// run serves HTTP until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	a, err := newApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      a.router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if a.rateLimiter != nil {
		g.Go(func() error {
			ticker := time.NewTicker(limiterCleanupInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					if n := a.rateLimiter.CleanupLimiters(limiterCleanupInterval); n > 0 {
						log.Debug().Int("removed", n).Msg("rate limiter cleanup")
					}
				}
			}
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

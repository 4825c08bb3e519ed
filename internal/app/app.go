package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/digilit/internal/config"
	"github.com/gokatarajesh/digilit/internal/content"
	"github.com/gokatarajesh/digilit/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/digilit/internal/db/sqlc"
	"github.com/gokatarajesh/digilit/internal/logging"
	"github.com/gokatarajesh/digilit/internal/server"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps logger, Postgres, the optional Redis cache and the HTTP
// server, seeding empty collections when configured to.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	var (
		redisClient *redis.Client
		cache       content.ListCache
	)
	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		cache = content.NewCache(redisClient, cfg.Content.CacheTTL)
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; serving content without a cache")
	}

	queries := sqlcgen.New(pool)
	contentRepo := repository.NewTxContentRepository(pool, queries)
	contentSvc := content.NewService(contentRepo, cache, logger)

	if cfg.Content.SeedOnStart {
		seedCtx, cancel := context.WithTimeout(ctx, cfg.Content.ReadTimeout)
		err := contentSvc.SeedIfEmpty(seedCtx)
		cancel()
		if err != nil {
			pool.Close()
			if redisClient != nil {
				_ = redisClient.Close()
			}
			return nil, fmt.Errorf("seed content: %w", err)
		}
	}

	apiServer := server.NewHTTPServer(cfg, logger, timeoutService{contentSvc, cfg.Content.ReadTimeout}, dependencies{pool, redisClient})

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.close()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}
	a.close()

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) close() {
	a.pool.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gokatarajesh/digilit/internal/content"
)

// dependencies pings Postgres and, when configured, Redis.
type dependencies struct {
	pool  *pgxpool.Pool
	redis *redis.Client
}

func (d dependencies) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	if d.redis != nil {
		if err := d.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

// timeoutService bounds every collection read.
type timeoutService struct {
	svc     *content.Service
	timeout time.Duration
}

func (t timeoutService) Statistics(ctx context.Context) ([]content.Statistic, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	return t.svc.Statistics(ctx)
}

func (t timeoutService) Glossary(ctx context.Context) ([]content.GlossaryTerm, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	return t.svc.Glossary(ctx)
}

func (t timeoutService) Quiz(ctx context.Context) ([]content.QuizQuestion, error) {
	ctx, cancel := t.bound(ctx)
	defer cancel()
	return t.svc.Quiz(ctx)
}

func (t timeoutService) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if t.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, t.timeout)
}

package content

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/digilit/internal/metrics"
)

// Store is the relational backing of the three collections.
type Store interface {
	ListStatistics(ctx context.Context) ([]Statistic, error)
	CountStatistics(ctx context.Context) (int64, error)
	InsertStatistics(ctx context.Context, stats []Statistic) error

	ListGlossaryTerms(ctx context.Context) ([]GlossaryTerm, error)
	CountGlossaryTerms(ctx context.Context) (int64, error)
	InsertGlossaryTerms(ctx context.Context, terms []GlossaryTerm) error

	ListQuizQuestions(ctx context.Context) ([]QuizQuestion, error)
	CountQuizQuestions(ctx context.Context) (int64, error)
	InsertQuizQuestions(ctx context.Context, questions []QuizQuestion) error
}

// ListCache defines cache behavior (implemented by Redis-backed Cache).
type ListCache interface {
	Get(ctx context.Context, collection string, dst any) (bool, error)
	Set(ctx context.Context, collection string, value any) error
	Invalidate(ctx context.Context, collections ...string) error
}

// Service serves the read-only collections, reading through the cache.
type Service struct {
	store  Store
	cache  ListCache
	logger zerolog.Logger
}

// NewService builds a content service. cache may be nil.
func NewService(store Store, cache ListCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "content_service").Logger(),
	}
}

func (s *Service) Statistics(ctx context.Context) ([]Statistic, error) {
	return readThrough(ctx, s, CollectionStatistics, s.store.ListStatistics)
}

func (s *Service) Glossary(ctx context.Context) ([]GlossaryTerm, error) {
	return readThrough(ctx, s, CollectionGlossary, s.store.ListGlossaryTerms)
}

func (s *Service) Quiz(ctx context.Context) ([]QuizQuestion, error) {
	return readThrough(ctx, s, CollectionQuiz, s.store.ListQuizQuestions)
}

func readThrough[T any](ctx context.Context, s *Service, collection string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		var cached []T
		hit, err := s.cache.Get(ctx, collection, &cached)
		switch {
		case err != nil:
			metrics.CacheLookups.WithLabelValues(collection, "error").Inc()
			s.logger.Warn().Err(err).Str("collection", collection).Msg("cache read failed")
		case hit:
			metrics.CacheLookups.WithLabelValues(collection, "hit").Inc()
			return cached, nil
		default:
			metrics.CacheLookups.WithLabelValues(collection, "miss").Inc()
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	if items == nil {
		items = []T{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, collection, items); err != nil {
			s.logger.Warn().Err(err).Str("collection", collection).Msg("cache write failed")
		}
	}
	return items, nil
}

// SeedIfEmpty inserts the bootstrap content into every empty collection.
// Collections that already hold rows are left untouched.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	var seeded []string

	steps := []struct {
		collection string
		count      func(context.Context) (int64, error)
		insert     func(context.Context) error
		size       int
	}{
		{CollectionStatistics, s.store.CountStatistics, func(ctx context.Context) error {
			return s.store.InsertStatistics(ctx, SeedStatistics)
		}, len(SeedStatistics)},
		{CollectionGlossary, s.store.CountGlossaryTerms, func(ctx context.Context) error {
			return s.store.InsertGlossaryTerms(ctx, SeedGlossary)
		}, len(SeedGlossary)},
		{CollectionQuiz, s.store.CountQuizQuestions, func(ctx context.Context) error {
			return s.store.InsertQuizQuestions(ctx, SeedQuiz)
		}, len(SeedQuiz)},
	}

	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return fmt.Errorf("count %s: %w", step.collection, err)
		}
		if n > 0 {
			continue
		}
		if err := step.insert(ctx); err != nil {
			return fmt.Errorf("seed %s: %w", step.collection, err)
		}
		metrics.SeededRecords.WithLabelValues(step.collection).Add(float64(step.size))
		s.logger.Info().Str("collection", step.collection).Int("records", step.size).Msg("seeded empty collection")
		seeded = append(seeded, step.collection)
	}

	if s.cache != nil && len(seeded) > 0 {
		if err := s.cache.Invalidate(ctx, seeded...); err != nil {
			s.logger.Warn().Err(err).Strs("collections", seeded).Msg("cache invalidation failed")
		}
	}
	return nil
}

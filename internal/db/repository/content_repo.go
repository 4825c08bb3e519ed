package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/gokatarajesh/digilit/internal/content"
	sqlcgen "github.com/gokatarajesh/digilit/internal/db/sqlc"
)

type contentStore interface {
	ListStatistics(ctx context.Context) ([]sqlcgen.Statistic, error)
	CountStatistics(ctx context.Context) (int64, error)
	InsertStatistic(ctx context.Context, arg sqlcgen.InsertStatisticParams) (sqlcgen.Statistic, error)

	ListGlossaryTerms(ctx context.Context) ([]sqlcgen.GlossaryTerm, error)
	CountGlossaryTerms(ctx context.Context) (int64, error)
	InsertGlossaryTerm(ctx context.Context, arg sqlcgen.InsertGlossaryTermParams) (sqlcgen.GlossaryTerm, error)

	ListQuizQuestions(ctx context.Context) ([]sqlcgen.QuizQuestion, error)
	CountQuizQuestions(ctx context.Context) (int64, error)
	InsertQuizQuestion(ctx context.Context, arg sqlcgen.InsertQuizQuestionParams) (sqlcgen.QuizQuestion, error)
}

// txBeginner is satisfied by *pgxpool.Pool.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ContentRepository exposes the three read-only collections plus the
// inserts used by the seed routine.
type ContentRepository struct {
	store contentStore

	db     txBeginner
	withTx func(pgx.Tx) contentStore
}

var _ content.Store = (*ContentRepository)(nil)

// NewContentRepository wraps sqlc Queries for content access. Batch inserts
// run directly on store.
func NewContentRepository(store contentStore) *ContentRepository {
	return &ContentRepository{store: store}
}

// NewTxContentRepository is NewContentRepository with every batch insert
// committed in a single transaction opened on db.
func NewTxContentRepository(db txBeginner, queries *sqlcgen.Queries) *ContentRepository {
	return &ContentRepository{
		store:  queries,
		db:     db,
		withTx: func(tx pgx.Tx) contentStore { return queries.WithTx(tx) },
	}
}

// inTx runs fn against a transaction-bound store, rolling back on error.
func (r *ContentRepository) inTx(ctx context.Context, fn func(contentStore) error) error {
	if r.db == nil {
		return fn(r.store)
	}
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(r.withTx(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ListStatistics returns every statistic ordered by id.
func (r *ContentRepository) ListStatistics(ctx context.Context) ([]content.Statistic, error) {
	rows, err := r.store.ListStatistics(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]content.Statistic, 0, len(rows))
	for _, row := range rows {
		out = append(out, content.Statistic{
			ID:       row.ID,
			Title:    row.Title,
			Value:    row.Value,
			Label:    row.Label,
			Category: row.Category,
			Year:     row.Year,
			Source:   fromText(row.Source),
		})
	}
	return out, nil
}

// CountStatistics reports the number of stored statistics.
func (r *ContentRepository) CountStatistics(ctx context.Context) (int64, error) {
	return r.store.CountStatistics(ctx)
}

// InsertStatistics stores the given rows in order, all or nothing.
func (r *ContentRepository) InsertStatistics(ctx context.Context, stats []content.Statistic) error {
	return r.inTx(ctx, func(store contentStore) error {
		return insertStatistics(ctx, store, stats)
	})
}

func insertStatistics(ctx context.Context, store contentStore, stats []content.Statistic) error {
	for _, s := range stats {
		if _, err := store.InsertStatistic(ctx, sqlcgen.InsertStatisticParams{
			Title:    s.Title,
			Value:    s.Value,
			Label:    s.Label,
			Category: s.Category,
			Year:     s.Year,
			Source:   toText(s.Source),
		}); err != nil {
			return fmt.Errorf("insert statistic %q: %w", s.Title, err)
		}
	}
	return nil
}

// ListGlossaryTerms returns every glossary term ordered by id.
func (r *ContentRepository) ListGlossaryTerms(ctx context.Context) ([]content.GlossaryTerm, error) {
	rows, err := r.store.ListGlossaryTerms(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]content.GlossaryTerm, 0, len(rows))
	for _, row := range rows {
		out = append(out, content.GlossaryTerm{
			ID:         row.ID,
			Term:       row.Term,
			Definition: row.Definition,
			Category:   row.Category,
		})
	}
	return out, nil
}

func (r *ContentRepository) CountGlossaryTerms(ctx context.Context) (int64, error) {
	return r.store.CountGlossaryTerms(ctx)
}

func (r *ContentRepository) InsertGlossaryTerms(ctx context.Context, terms []content.GlossaryTerm) error {
	return r.inTx(ctx, func(store contentStore) error {
		return insertGlossaryTerms(ctx, store, terms)
	})
}

func insertGlossaryTerms(ctx context.Context, store contentStore, terms []content.GlossaryTerm) error {
	for _, t := range terms {
		if _, err := store.InsertGlossaryTerm(ctx, sqlcgen.InsertGlossaryTermParams{
			Term:       t.Term,
			Definition: t.Definition,
			Category:   t.Category,
		}); err != nil {
			return fmt.Errorf("insert glossary term %q: %w", t.Term, err)
		}
	}
	return nil
}

// ListQuizQuestions returns every quiz question ordered by id. The jsonb
// options column is decoded into a string slice.
func (r *ContentRepository) ListQuizQuestions(ctx context.Context) ([]content.QuizQuestion, error) {
	rows, err := r.store.ListQuizQuestions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]content.QuizQuestion, 0, len(rows))
	for _, row := range rows {
		var options []string
		if err := json.Unmarshal(row.Options, &options); err != nil {
			return nil, fmt.Errorf("decode options of quiz question %d: %w", row.ID, err)
		}
		out = append(out, content.QuizQuestion{
			ID:            row.ID,
			Question:      row.Question,
			Options:       options,
			CorrectAnswer: int(row.CorrectAnswer),
			Explanation:   fromText(row.Explanation),
		})
	}
	return out, nil
}

func (r *ContentRepository) CountQuizQuestions(ctx context.Context) (int64, error) {
	return r.store.CountQuizQuestions(ctx)
}

func (r *ContentRepository) InsertQuizQuestions(ctx context.Context, questions []content.QuizQuestion) error {
	return r.inTx(ctx, func(store contentStore) error {
		return insertQuizQuestions(ctx, store, questions)
	})
}

func insertQuizQuestions(ctx context.Context, store contentStore, questions []content.QuizQuestion) error {
	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("encode options: %w", err)
		}
		if _, err := store.InsertQuizQuestion(ctx, sqlcgen.InsertQuizQuestionParams{
			Question:      q.Question,
			Options:       options,
			CorrectAnswer: int32(q.CorrectAnswer),
			Explanation:   toText(q.Explanation),
		}); err != nil {
			return fmt.Errorf("insert quiz question %q: %w", q.Question, err)
		}
	}
	return nil
}

func fromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func toText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

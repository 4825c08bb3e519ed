package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/digilit/internal/content"
	sqlcgen "github.com/gokatarajesh/digilit/internal/db/sqlc"
)

type mockContentStore struct {
	mock.Mock
}

func (m *mockContentStore) ListStatistics(ctx context.Context) ([]sqlcgen.Statistic, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Statistic), args.Error(1)
}

func (m *mockContentStore) CountStatistics(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContentStore) InsertStatistic(ctx context.Context, arg sqlcgen.InsertStatisticParams) (sqlcgen.Statistic, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Statistic), args.Error(1)
}

func (m *mockContentStore) ListGlossaryTerms(ctx context.Context) ([]sqlcgen.GlossaryTerm, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.GlossaryTerm), args.Error(1)
}

func (m *mockContentStore) CountGlossaryTerms(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContentStore) InsertGlossaryTerm(ctx context.Context, arg sqlcgen.InsertGlossaryTermParams) (sqlcgen.GlossaryTerm, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.GlossaryTerm), args.Error(1)
}

func (m *mockContentStore) ListQuizQuestions(ctx context.Context) ([]sqlcgen.QuizQuestion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.QuizQuestion), args.Error(1)
}

func (m *mockContentStore) CountQuizQuestions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockContentStore) InsertQuizQuestion(ctx context.Context, arg sqlcgen.InsertQuizQuestionParams) (sqlcgen.QuizQuestion, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.QuizQuestion), args.Error(1)
}

func TestContentRepository_ListStatistics(t *testing.T) {
	store := new(mockContentStore)
	repo := NewContentRepository(store)

	store.On("ListStatistics", mock.Anything).Return([]sqlcgen.Statistic{
		{ID: 1, Title: "Internet Users", Value: 820, Label: "Million Users", Category: "Access", Year: 2023, Source: pgtype.Text{String: "TRAI", Valid: true}},
		{ID: 2, Title: "Feature Phones", Value: 300, Label: "Million Users", Category: "Devices", Year: 2022},
	}, nil)

	got, err := repo.ListStatistics(context.Background())
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	if assert.NotNil(t, got[0].Source) {
		assert.Equal(t, "TRAI", *got[0].Source)
	}
	assert.Nil(t, got[1].Source)
	store.AssertExpectations(t)
}

func TestContentRepository_ListQuizQuestionsDecodesOptions(t *testing.T) {
	store := new(mockContentStore)
	repo := NewContentRepository(store)

	store.On("ListQuizQuestions", mock.Anything).Return([]sqlcgen.QuizQuestion{
		{ID: 7, Question: "Q1", Options: []byte(`["A","B"]`), CorrectAnswer: 1, Explanation: pgtype.Text{String: "Because B.", Valid: true}},
	}, nil)

	got, err := repo.ListQuizQuestions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []content.QuizQuestion{{
		ID:            7,
		Question:      "Q1",
		Options:       []string{"A", "B"},
		CorrectAnswer: 1,
		Explanation:   got[0].Explanation,
	}}, got)
	assert.Equal(t, "Because B.", got[0].ExplanationText())
	store.AssertExpectations(t)
}

func TestContentRepository_ListQuizQuestionsRejectsBadOptions(t *testing.T) {
	store := new(mockContentStore)
	repo := NewContentRepository(store)

	store.On("ListQuizQuestions", mock.Anything).Return([]sqlcgen.QuizQuestion{
		{ID: 3, Question: "Q", Options: []byte(`{"not":"an array"}`)},
	}, nil)

	_, err := repo.ListQuizQuestions(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quiz question 3")
}

func TestContentRepository_InsertQuizQuestionsEncodesOptions(t *testing.T) {
	store := new(mockContentStore)
	repo := NewContentRepository(store)

	explanation := "UPI stands for Unified Payments Interface."
	params := sqlcgen.InsertQuizQuestionParams{
		Question:      "What is the full form of UPI?",
		Options:       []byte(`["United Payment Interface","Unified Payments Interface"]`),
		CorrectAnswer: 1,
		Explanation:   pgtype.Text{String: explanation, Valid: true},
	}
	store.On("InsertQuizQuestion", mock.Anything, params).Return(sqlcgen.QuizQuestion{ID: 1}, nil)

	err := repo.InsertQuizQuestions(context.Background(), []content.QuizQuestion{{
		Question:      "What is the full form of UPI?",
		Options:       []string{"United Payment Interface", "Unified Payments Interface"},
		CorrectAnswer: 1,
		Explanation:   &explanation,
	}})
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestContentRepository_InsertGlossaryTermsStopsOnError(t *testing.T) {
	store := new(mockContentStore)
	repo := NewContentRepository(store)

	first := sqlcgen.InsertGlossaryTermParams{Term: "URL", Definition: "Address of a webpage.", Category: "Internet"}
	store.On("InsertGlossaryTerm", mock.Anything, first).Return(sqlcgen.GlossaryTerm{}, errors.New("constraint"))

	err := repo.InsertGlossaryTerms(context.Background(), []content.GlossaryTerm{
		{Term: "URL", Definition: "Address of a webpage.", Category: "Internet"},
		{Term: "OTP", Definition: "One-Time Password.", Category: "Security"},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"URL"`)
	store.AssertNumberOfCalls(t, "InsertGlossaryTerm", 1)
}

func TestContentRepository_Counts(t *testing.T) {
	store := new(mockContentStore)
	repo := NewContentRepository(store)

	store.On("CountStatistics", mock.Anything).Return(int64(5), nil)
	store.On("CountGlossaryTerms", mock.Anything).Return(int64(0), nil)
	store.On("CountQuizQuestions", mock.Anything).Return(int64(4), nil)

	n, err := repo.CountStatistics(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(5), n)

	n, err = repo.CountGlossaryTerms(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.CountQuizQuestions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	store.AssertExpectations(t)
}

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx     *fakeTx
	err    error
	begins int
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	b.begins++
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func newTxRepo(db *fakeBeginner, txStore *mockContentStore) *ContentRepository {
	return &ContentRepository{
		store:  new(mockContentStore),
		db:     db,
		withTx: func(pgx.Tx) contentStore { return txStore },
	}
}

func TestContentRepository_InsertStatisticsRollsBackOnFailure(t *testing.T) {
	txStore := new(mockContentStore)
	db := &fakeBeginner{tx: &fakeTx{}}
	repo := newTxRepo(db, txStore)

	txStore.On("InsertStatistic", mock.Anything, mock.Anything).Return(sqlcgen.Statistic{}, nil).Twice()
	txStore.On("InsertStatistic", mock.Anything, mock.Anything).Return(sqlcgen.Statistic{}, errors.New("disk full")).Once()

	err := repo.InsertStatistics(context.Background(), content.SeedStatistics)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	txStore.AssertNumberOfCalls(t, "InsertStatistic", 3)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
}

func TestContentRepository_InsertQuizQuestionsCommits(t *testing.T) {
	txStore := new(mockContentStore)
	db := &fakeBeginner{tx: &fakeTx{}}
	repo := newTxRepo(db, txStore)

	txStore.On("InsertQuizQuestion", mock.Anything, mock.Anything).Return(sqlcgen.QuizQuestion{}, nil)

	require.NoError(t, repo.InsertQuizQuestions(context.Background(), content.SeedQuiz))

	txStore.AssertNumberOfCalls(t, "InsertQuizQuestion", len(content.SeedQuiz))
	assert.Equal(t, 1, db.begins)
	assert.True(t, db.tx.committed)
	assert.False(t, db.tx.rolledBack)
}

func TestContentRepository_InsertGlossaryTermsBeginFailure(t *testing.T) {
	txStore := new(mockContentStore)
	repo := newTxRepo(&fakeBeginner{err: errors.New("pool closed")}, txStore)

	err := repo.InsertGlossaryTerms(context.Background(), content.SeedGlossary)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin tx")
	txStore.AssertNotCalled(t, "InsertGlossaryTerm", mock.Anything, mock.Anything)
}

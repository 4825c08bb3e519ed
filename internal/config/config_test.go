package config

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setPostgresEnv(t *testing.T) {
	t.Setenv("PG_HOST", "db")
	t.Setenv("PG_USER", "digilit")
	t.Setenv("PG_PASSWORD", "secret")
	t.Setenv("PG_DATABASE", "content")
}

func TestLoadDefaults(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "digilit", cfg.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 5*time.Minute, cfg.Content.CacheTTL)
	assert.True(t, cfg.Content.SeedOnStart)
	assert.Equal(t, []string{"GET", "OPTIONS"}, cfg.CORS.AllowedMethods)
	assert.Equal(t, "postgres://digilit:secret@db:5432/content?sslmode=disable", cfg.Postgres.DSN())
}

func TestLoadRequiresPostgres(t *testing.T) {
	t.Setenv("PG_HOST", "")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoadRedisEnabled(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("CONTENT_SEED_ON_START", "false")

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Content.SeedOnStart)
}

func TestLoadLearner(t *testing.T) {
	t.Setenv("LEARNER_API_URL", "http://api.internal:9000")
	t.Setenv("LEARNER_MAX_RETRIES", "5")

	cfg, err := LoadLearner()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:9000", cfg.APIURL)
	assert.Equal(t, uint64(5), cfg.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.RetryBase)
}

func TestDSNEscapesCredentials(t *testing.T) {
	p := Postgres{
		Host:     "db.internal",
		Port:     6543,
		User:     "app user",
		Password: "p@ss/w#rd?",
		Database: "content",
		SSLMode:  "require",
	}

	cfg, err := pgx.ParseConfig(p.DSN())
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, uint16(6543), cfg.Port)
	assert.Equal(t, "app user", cfg.User)
	assert.Equal(t, "p@ss/w#rd?", cfg.Password)
	assert.Equal(t, "content", cfg.Database)
}

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "digilit", "production")

	logger.Debug().Msg("hidden")
	logger.Info().Str("collection", "quiz").Msg("served")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "digilit", entry["app"])
	assert.Equal(t, "production", entry["env"])
	assert.Equal(t, "quiz", entry["collection"])
	assert.Equal(t, "served", entry["message"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "digilit", "production").With().Str("request_id", "r-1").Logger()

	ctx := IntoContext(context.Background(), logger)
	got := FromContext(ctx)
	got.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"request_id":"r-1"`)
}

func TestFromContextWithoutLoggerIsNop(t *testing.T) {
	assert.NotPanics(t, func() {
		got := FromContext(context.Background())
		got.Info().Msg("dropped")
	})
}

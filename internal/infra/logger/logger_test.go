package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelPerEnv(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, "prod")
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))

	log = New(&buf, "dev")
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestNew_WritesJSONToWriter(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, "prod").Info("store opened", "backend", "file")

	require.NotEmpty(t, buf.Bytes())
	assert.Contains(t, buf.String(), `"msg":"store opened"`)
	assert.Contains(t, buf.String(), `"backend":"file"`)
}

package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	require.NoError(t, SetupLogger(slog.LevelDebug, "json"))
	require.NoError(t, SetupLogger(slog.LevelInfo, "console"))
}

func TestLogError_IncludesErrorAndFields(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	LogError(errors.New("boom"), "operation failed", Fields{"path": "/tmp/report.csv"})

	out := buf.String()
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, `"error":"boom"`)
	assert.Contains(t, out, `"path":"/tmp/report.csv"`)
}

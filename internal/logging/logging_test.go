package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv(EnvLevel, "WARN")
	l, err := New(Options{OutputPaths: []string{filepath.Join(t.TempDir(), "log")}})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidEnvFallsBackToInfo(t *testing.T) {
	t.Setenv(EnvLevel, "chatty")
	l, err := New(Options{OutputPaths: []string{filepath.Join(t.TempDir(), "log")}})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_VerboseWins(t *testing.T) {
	t.Setenv(EnvLevel, "error")
	l, err := New(Options{Verbose: true, OutputPaths: []string{filepath.Join(t.TempDir(), "log")}})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	l, err := New(Options{JSON: true, OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Info("classified", zap.Int("rows", 3))
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))
	assert.Contains(t, line, `"msg":"classified"`)
	assert.Contains(t, line, `"rows":3`)
	assert.Contains(t, line, `"level":"info"`)
}

func TestContextRoundTrip(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	l := Nop()
	ctx := WithLogger(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, OrNop(nil))
}

func TestFromContext_Missing(t *testing.T) {
	var none context.Context
	assert.False(t, FromContext(none).Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, FromContext(context.Background()).Core().Enabled(zapcore.ErrorLevel))

	l, err := New(Options{OutputPaths: []string{filepath.Join(t.TempDir(), "log")}})
	require.NoError(t, err)
	assert.Same(t, l, FromContext(WithLogger(context.Background(), l)))
}

// Package logging builds the zap loggers used across genero.
package logging

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLevel names the environment variable that sets the default level.
const EnvLevel = "GENERO_LOG_LEVEL"

const defaultLevel = "info"

// Options configures New.
type Options struct {
	// Verbose forces debug level regardless of EnvLevel.
	Verbose bool
	// JSON switches from console to JSON encoding.
	JSON bool
	// OutputPaths defaults to stderr so stdout stays free for results.
	OutputPaths []string
}

// New constructs a logger. Level resolution: Verbose, then EnvLevel, then
// info.
func New(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if opts.Verbose {
		level.SetLevel(zapcore.DebugLevel)
	} else if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(os.Getenv(EnvLevel))))); err != nil {
		_ = level.UnmarshalText([]byte(defaultLevel))
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:    "msg",
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		EncodeTime:    zapcore.TimeEncoderOfLayout("15:04:05.000"),
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: "stacktrace",
	}
	encoding := "console"
	if opts.JSON {
		encoding = "json"
		encoderCfg.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	} else if isTerminal(os.Stderr) {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	out := opts.OutputPaths
	if len(out) == 0 {
		out = []string{"stderr"}
	}

	cfg := zap.Config{
		Level:             level,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       out,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}
	return cfg.Build()
}

// Nop returns a logger that discards everything.
func Nop() *zap.Logger {
	return zap.NewNop()
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return Nop()
	}
	return l
}

type ctxKey struct{}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Nop()
	}
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return Nop()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

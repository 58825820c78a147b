// Package logging holds the process-wide zap logger and context-scoped
// child loggers carrying task fields.
package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// Modes accepted by New
const (
	ModeProduction = "prod"
	ModeDebug      = "debug"
)

// SetLogger replaces the global logger
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// L returns the global logger
func L() *zap.Logger {
	return logger
}

// New builds a logger for mode. An empty mode is treated as debug.
// When logFile is set it is written in addition to stderr.
func New(mode, logFile string) (*zap.Logger, error) {
	var cfg zap.Config
	switch mode {
	case ModeProduction:
		cfg = zap.NewProductionConfig()
	case ModeDebug, "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log mode %q, use %q or %q", mode, ModeProduction, ModeDebug)
	}
	if logFile != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
	}
	return cfg.Build()
}

type loggingCtxKey int

const (
	logKey = loggingCtxKey(iota)
)

// FromContextS returns the sugared logger stored in ctx, or the global one
func FromContextS(ctx context.Context) *zap.SugaredLogger {
	return FromContext(ctx).Sugar()
}

// FromContext returns the logger stored in ctx, or the global one
func FromContext(ctx context.Context) *zap.Logger {
	if vlog, ok := ctx.Value(logKey).(*zap.Logger); ok {
		return vlog
	}
	return logger
}

// NewContextS derives a context whose logger carries the given key/value pairs
func NewContextS(ctx context.Context, fields ...interface{}) context.Context {
	slog := FromContextS(ctx).With(fields...)
	return context.WithValue(ctx, logKey, slog.Desugar())
}

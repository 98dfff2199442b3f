package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/selscan"
)

// Ensure LoggingLoader implements selscan.FileLoader.
var _ selscan.FileLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a FileLoader with debug logging.
type LoggingLoader struct {
	next   selscan.FileLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next selscan.FileLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// Discover delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Discover(ctx context.Context, roots []string) (paths []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("discover",
			"roots", len(roots),
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Discover(ctx, roots)
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) Load(ctx context.Context, path string) (file *selscan.SourceFile, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path}
		if file != nil {
			attrs = append(attrs, "mode", string(file.Mode), "bytes", len(file.Contents))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		l.logger.Info("load", attrs...)
	}(time.Now())
	return l.next.Load(ctx, path)
}

package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/selscan"
)

// Ensure LoggingExtractor implements selscan.Extractor.
var _ selscan.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   selscan.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next selscan.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractClassName delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractClassName(contents string) (selectors []string, err error) {
	defer e.log(selscan.SelectorClass, contents, time.Now(), &selectors, &err)
	return e.next.ExtractClassName(contents)
}

// ExtractID delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractID(contents string) (selectors []string, err error) {
	defer e.log(selscan.SelectorID, contents, time.Now(), &selectors, &err)
	return e.next.ExtractID(contents)
}

func (e *LoggingExtractor) log(kind selscan.SelectorKind, contents string, begin time.Time, selectors *[]string, err *error) {
	e.logger.Info("extract",
		"kind", kind.String(),
		"bytes", len(contents),
		"count", len(*selectors),
		"duration", time.Since(begin),
		"err", *err,
	)
}

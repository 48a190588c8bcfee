package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/trellodoc"
)

// Ensure LoggingExtractor implements trellodoc.RegionExtractor.
var _ trellodoc.RegionExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a RegionExtractor with logging.
type LoggingExtractor struct {
	next   trellodoc.RegionExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next trellodoc.RegionExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractMethods delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) ExtractMethods(page string, region string) (methods []*trellodoc.RawMethod, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract region",
			"region", region,
			"methods", len(methods),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMethods(page, region)
}

// Package slog provides logging decorators for the trellodoc interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/trellodoc"
)

// Ensure LoggingFetcher implements trellodoc.Fetcher.
var _ trellodoc.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   trellodoc.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next trellodoc.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch page",
			"url", url,
			"bytes", len(page),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

package mock

import (
	"context"

	"github.com/fwojciec/trellodoc"
)

var _ trellodoc.ConfigWriter = (*ConfigWriter)(nil)

// ConfigWriter is a mock implementation of trellodoc.ConfigWriter.
type ConfigWriter struct {
	WriteConfigFn func(ctx context.Context, cfg *trellodoc.Config) error
}

func (w *ConfigWriter) WriteConfig(ctx context.Context, cfg *trellodoc.Config) error {
	return w.WriteConfigFn(ctx, cfg)
}

package fill

import (
	"log/slog"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/items"
)

type FillerOpt func(*Filler)

// WithMaxRetries overrides the configured assumed fill retry bound.
func WithMaxRetries(n int) FillerOpt {
	return func(f *Filler) {
		f.maxRetries = n
	}
}

func WithLogger(l *slog.Logger) FillerOpt {
	return func(f *Filler) {
		f.logger = l
	}
}

// WithPools replaces the pool templates used for each world.
func WithPools(pools func(cfg *config.Config, world int) *items.PoolSet) FillerOpt {
	return func(f *Filler) {
		f.pools = pools
	}
}

package generator

import (
	"log/slog"
	"time"

	"github.com/pixil98/go-rando/internal/fill"
)

type GeneratorOpt func(*Generator)

func WithLogger(l *slog.Logger) GeneratorOpt {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithFillerOpts passes options through to every Filler the generator creates.
func WithFillerOpts(opts ...fill.FillerOpt) GeneratorOpt {
	return func(g *Generator) {
		g.fillerOpts = append(g.fillerOpts, opts...)
	}
}

// WithClock sets the time source used to pick a seed when none is configured.
func WithClock(now func() time.Time) GeneratorOpt {
	return func(g *Generator) {
		g.now = now
	}
}

// Package generator runs one generation request end to end: worlds,
// fill, playthrough, and the serializable result.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/fill"
	"github.com/pixil98/go-rando/internal/playthrough"
	"github.com/pixil98/go-rando/internal/world"
)

type Generator struct {
	logger     *slog.Logger
	fillerOpts []fill.FillerOpt
	now        func() time.Time
}

func New(opts ...GeneratorOpt) *Generator {
	g := &Generator{
		logger: slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate validates cfg and produces a completable result. The same
// config and seed always yield the same result, id included. cfg itself
// is not modified; the resolved seed is recorded on the result's copy.
func (g *Generator) Generate(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	c := *cfg
	seed := c.ResolveSeed(g.now())
	rnd := rand.New(rand.NewSource(seed))

	id, err := uuid.NewRandomFromReader(rnd)
	if err != nil {
		return nil, fmt.Errorf("deriving seed id: %w", err)
	}

	logger := g.logger.With("seed_id", id.String(), "seed", seed)
	logger.InfoContext(ctx, "generating", "players", len(c.PlayerNames()), "keysanity", c.Keysanity)

	var worlds []*world.World
	for i, name := range c.PlayerNames() {
		w := world.New(&c, i, name)
		if err := w.Validate(); err != nil {
			return nil, fmt.Errorf("building %s: %w", w, err)
		}
		w.Setup(rnd)
		worlds = append(worlds, w)
	}

	f := fill.NewFiller(append([]fill.FillerOpt{fill.WithLogger(logger)}, g.fillerOpts...)...)
	f.SetRandom(rnd)
	if err := f.Fill(ctx, worlds, &c); err != nil {
		return nil, fmt.Errorf("filling: %w", err)
	}

	spheres, err := playthrough.Generate(worlds, &c)
	if err != nil {
		return nil, fmt.Errorf("building playthrough: %w", err)
	}

	res := &Result{
		ID:     id,
		Seed:   seed,
		Config: &c,
	}
	for _, w := range worlds {
		res.Worlds = append(res.Worlds, newWorldResult(w))
	}
	for _, s := range spheres {
		res.Spheres = append(res.Spheres, newSphereResult(s))
	}

	logger.InfoContext(ctx, "generation complete", "spheres", len(res.Spheres))
	return res, nil
}

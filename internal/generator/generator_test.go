package generator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/fill"
	"github.com/pixil98/go-rando/internal/world"
	"github.com/pixil98/go-testutil"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seeded(seed int64) *config.Config {
	cfg := config.Default()
	cfg.Seed = seed
	return cfg
}

func TestGenerate_Deterministic(t *testing.T) {
	g := New(WithLogger(quietLogger()))

	a, err := g.Generate(context.Background(), seeded(99))
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := g.Generate(context.Background(), seeded(99))
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	c, err := g.Generate(context.Background(), seeded(100))
	if err != nil {
		t.Fatalf("third: %v", err)
	}

	testutil.AssertEqual(t, "id", a.ID, b.ID)
	testutil.AssertEqual(t, "worlds", a.Worlds, b.Worlds)
	testutil.AssertEqual(t, "spheres", a.Spheres, b.Spheres)
	testutil.AssertEqual(t, "other seed id differs", a.ID != c.ID, true)
}

func TestGenerate_Result(t *testing.T) {
	g := New(WithLogger(quietLogger()))
	cfg := seeded(5)

	res, err := g.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	testutil.AssertEqual(t, "seed", res.Seed, int64(5))
	testutil.AssertEqual(t, "worlds", len(res.Worlds), 1)
	testutil.AssertEqual(t, "placements", len(res.Worlds[0].Placements), 214)
	testutil.AssertEqual(t, "medallions", len(res.Worlds[0].Medallions), 2)
	testutil.AssertEqual(t, "player", res.Player(0), "Player")

	placed := 0
	for _, s := range res.Spheres {
		placed += len(s.Placements)
	}
	testutil.AssertEqual(t, "every placement in a sphere", placed, 214)

	w := world.New(config.Default(), 0, "Player")
	addresses := map[uint32]bool{}
	for _, p := range res.Worlds[0].Placements {
		loc, ok := w.Location(p.Location)
		if !ok {
			t.Fatalf("no location %q", p.Location)
		}
		testutil.AssertEqual(t, p.Location+" address", p.Address, loc.Address)
		testutil.AssertEqual(t, p.Location+" room", p.Room, loc.Room)
		addresses[p.Address] = true
	}
	testutil.AssertEqual(t, "distinct addresses", len(addresses), 214)
}

func TestGenerate_ClockSeed(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := New(WithLogger(quietLogger()), WithClock(func() time.Time { return now }))
	cfg := config.Default()

	res, err := g.Generate(context.Background(), cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	testutil.AssertEqual(t, "seed", res.Seed, now.UnixNano())
	testutil.AssertEqual(t, "recorded seed", res.Config.Seed, now.UnixNano())
	testutil.AssertEqual(t, "input untouched", cfg.Seed, int64(0))
}

func TestGenerate_Errors(t *testing.T) {
	tests := map[string]struct {
		mutate    func(cfg *config.Config)
		expErr    string
		expFailed bool
	}{
		"invalid config": {
			mutate: func(cfg *config.Config) { cfg.Keysanity = "some" },
			expErr: "validating config",
		},
		"manual placement conflict": {
			mutate:    func(cfg *config.Config) { cfg.Placements = map[string]string{"Zora's Ledge": "Flippers"} },
			expErr:    "filling",
			expFailed: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := seeded(1)
			tt.mutate(cfg)

			_, err := New(WithLogger(quietLogger())).Generate(context.Background(), cfg)
			testutil.AssertErrorContains(t, err, tt.expErr)
			testutil.AssertEqual(t, "generation failed", errors.Is(err, fill.ErrGenerationFailed), tt.expFailed)
		})
	}
}

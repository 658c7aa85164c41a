package playthrough

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/fill"
	"github.com/pixil98/go-rando/internal/items"
	"github.com/pixil98/go-rando/internal/reach"
	"github.com/pixil98/go-rando/internal/world"
	"github.com/pixil98/go-testutil"
)

func filledWorlds(t *testing.T, cfg *config.Config, seed int64) []*world.World {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))

	var worlds []*world.World
	for i, name := range cfg.PlayerNames() {
		w := world.New(cfg, i, name)
		w.Setup(rnd)
		worlds = append(worlds, w)
	}

	f := fill.NewFiller(fill.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	f.SetRandom(rnd)
	if err := f.Fill(context.Background(), worlds, cfg); err != nil {
		t.Fatalf("fill: %v", err)
	}
	return worlds
}

func TestGenerate(t *testing.T) {
	tests := map[string]struct {
		players []string
		mode    config.GameMode
	}{
		"single world": {players: []string{"Player"}, mode: config.GameModeNormal},
		"multiworld":   {players: []string{"Alice", "Bob"}, mode: config.GameModeMultiworld},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Players = tt.players
			cfg.GameMode = tt.mode
			worlds := filledWorlds(t, cfg, 42)

			spheres, err := Generate(worlds, cfg)
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			testutil.AssertEqual(t, "unreached", len(Unreached(worlds, spheres)), 0)
			testutil.AssertEqual(t, "sphere bound", len(spheres) <= maxSpheres, true)

			seen := map[*world.Location]int{}
			for i, s := range spheres {
				testutil.AssertEqual(t, "sphere is productive", len(s.Locations)+len(s.Rewards) > 0, true)
				for _, loc := range s.Locations {
					if prev, ok := seen[loc]; ok {
						t.Errorf("%s in spheres %d and %d", loc, prev, i)
					}
					seen[loc] = i
				}
			}
			testutil.AssertEqual(t, "every filled location", len(seen), len(reach.Filled(worlds)))
		})
	}
}

func TestGenerate_FirstSphere(t *testing.T) {
	cfg := config.Default()
	worlds := filledWorlds(t, cfg, 8)

	spheres, err := Generate(worlds, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	house, _ := worlds[0].Location("Link's House")
	found := false
	for _, loc := range spheres[0].Locations {
		if loc == house {
			found = true
		}
	}
	testutil.AssertEqual(t, "free location in sphere one", found, true)
}

func TestGenerate_DoesNotMutate(t *testing.T) {
	cfg := config.Default()
	worlds := filledWorlds(t, cfg, 13)

	before := map[*world.Location]*items.Item{}
	for _, loc := range worlds[0].Locations {
		before[loc] = loc.Item
	}

	if _, err := Generate(worlds, cfg); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, loc := range worlds[0].Locations {
		if before[loc] != loc.Item {
			t.Errorf("%s changed from %s to %s", loc, before[loc], loc.Item)
		}
	}
}

func TestGenerate_SphereLimit(t *testing.T) {
	cfg := config.Default()
	worlds := filledWorlds(t, cfg, 42)

	spheres, err := Generate(worlds, cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	n := len(spheres)

	tests := map[string]struct {
		limit  int
		expErr string
	}{
		"exactly at the limit": {
			limit: n,
		},
		"one over the limit": {
			limit:  n - 1,
			expErr: fmt.Sprintf("more than %d spheres", n-1),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func(prev int) { maxSpheres = prev }(maxSpheres)
			maxSpheres = tt.limit

			got, err := Generate(worlds, cfg)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				testutil.AssertEqual(t, "reason", fill.IsReason(err, fill.ReasonSphereExplosion), true)
				return
			}
			if err != nil {
				t.Fatalf("generate: %v", err)
			}
			testutil.AssertEqual(t, "spheres", len(got), n)
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := map[string]struct {
		item   *items.ItemType
		expErr string
	}{
		"nothing placed": {
			expErr: "cannot be completed",
		},
		"only junk placed": {
			item:   ptr(items.TwentyRupees),
			expErr: "locations unreachable",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			w := world.New(cfg, 0, "Player")
			w.Setup(rand.New(rand.NewSource(1)))
			if tt.item != nil {
				for _, loc := range w.Locations {
					loc.Item = &items.Item{Type: *tt.item}
				}
			}

			_, err := Generate([]*world.World{w}, cfg)
			testutil.AssertErrorContains(t, err, tt.expErr)
			testutil.AssertEqual(t, "reason", fill.IsReason(err, fill.ReasonInaccessibleItems), true)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

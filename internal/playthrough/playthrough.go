// Package playthrough derives the sphere-by-sphere proof that a filled set
// of worlds can be completed.
package playthrough

import (
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/fill"
	"github.com/pixil98/go-rando/internal/reach"
	"github.com/pixil98/go-rando/internal/world"
)

// inaccessiblePerWorld bounds the filled locations left unreached.
const inaccessiblePerWorld = 15

// maxSpheres bounds the sphere count before generation is abandoned.
var maxSpheres = 100

// Sphere is one generation of the closure: the locations that became
// reachable, and the region rewards that became claimable, once every
// earlier sphere was collected.
type Sphere struct {
	Locations []*world.Location
	Rewards   []*world.Region
}

// Generate computes the spheres of a filled set of worlds. It never
// mutates the worlds.
func Generate(worlds []*world.World, cfg *config.Config) ([]Sphere, error) {
	inv := reach.NewInventory(worlds, nil)
	pending := reach.Filled(worlds)

	var spheres []Sphere
	for {
		reached, rest, rewards := inv.Sweep(pending)
		if len(reached) == 0 && len(rewards) == 0 {
			break
		}
		if len(spheres) == maxSpheres {
			return nil, fill.Fail(fill.ReasonSphereExplosion, "more than %d spheres", maxSpheres)
		}

		inv.Take(reached, rewards)
		spheres = append(spheres, Sphere{Locations: reached, Rewards: rewards})
		pending = rest
	}

	if limit := inaccessiblePerWorld * len(worlds); len(pending) > limit {
		return nil, fill.Fail(fill.ReasonInaccessibleItems, "%d locations unreachable (limit %d)", len(pending), limit)
	}

	for _, w := range worlds {
		if !w.CanBeatGame(inv.For(w)) {
			return nil, fill.Fail(fill.ReasonInaccessibleItems, "%s cannot be completed", w)
		}
	}

	return spheres, nil
}

// Unreached returns the filled locations that no sphere reaches.
func Unreached(worlds []*world.World, spheres []Sphere) []*world.Location {
	seen := map[*world.Location]bool{}
	for _, s := range spheres {
		for _, loc := range s.Locations {
			seen[loc] = true
		}
	}

	var out []*world.Location
	for _, loc := range reach.Filled(worlds) {
		if !seen[loc] {
			out = append(out, loc)
		}
	}
	return out
}

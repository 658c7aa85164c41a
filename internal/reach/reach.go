// Package reach computes reachability closures over one or more worlds.
package reach

import (
	"github.com/pixil98/go-rando/internal/items"
	"github.com/pixil98/go-rando/internal/world"
	"github.com/zyedidia/generic/mapset"
)

// Inventory is what a player set holds at some point of a closure. Items
// are credited to the world that owns them, so a predicate evaluated for
// one world never sees another world's items.
type Inventory struct {
	worlds       []*world.World
	progressions map[int]*items.Progression
	claimed      mapset.Set[*world.Region]
}

// NewInventory creates an inventory holding owned.
func NewInventory(worlds []*world.World, owned []*items.Item) *Inventory {
	inv := &Inventory{
		worlds:       worlds,
		progressions: make(map[int]*items.Progression, len(worlds)),
		claimed:      mapset.New[*world.Region](),
	}
	for _, w := range worlds {
		inv.progressions[w.Id] = items.NewProgression(w.Config)
	}
	for _, it := range owned {
		inv.Add(it)
	}
	return inv
}

// For returns the progression of w.
func (inv *Inventory) For(w *world.World) *items.Progression {
	return inv.progressions[w.Id]
}

// Add credits it to its owning world. Items of unknown worlds are dropped.
func (inv *Inventory) Add(it *items.Item) {
	if p, ok := inv.progressions[it.World]; ok {
		p.Add(it.Type)
	}
}

// Clone deep copies the inventory.
func (inv *Inventory) Clone() *Inventory {
	c := &Inventory{
		worlds:       inv.worlds,
		progressions: make(map[int]*items.Progression, len(inv.progressions)),
		claimed:      mapset.New[*world.Region](),
	}
	for id, p := range inv.progressions {
		c.progressions[id] = p.Clone()
	}
	inv.claimed.Each(func(r *world.Region) { c.claimed.Put(r) })
	return c
}

// Available reports whether loc is reachable under its own world's progression.
func (inv *Inventory) Available(loc *world.Location) bool {
	return loc.IsAvailable(inv.For(loc.World()))
}

// Sweep splits pending into the filled locations reachable now and the rest,
// and lists the reward regions that became completable. Nothing is credited.
func (inv *Inventory) Sweep(pending []*world.Location) (reached, rest []*world.Location, rewards []*world.Region) {
	for _, loc := range pending {
		if loc.Item != nil && inv.Available(loc) {
			reached = append(reached, loc)
		} else {
			rest = append(rest, loc)
		}
	}
	for _, w := range inv.worlds {
		p := inv.For(w)
		for _, r := range w.Regions {
			if r.Reward != nil && !inv.Claimed(r) && r.CanComplete(p) {
				rewards = append(rewards, r)
			}
		}
	}
	return reached, rest, rewards
}

// Take credits the items of reached and the rewards of regions.
func (inv *Inventory) Take(reached []*world.Location, regions []*world.Region) {
	for _, loc := range reached {
		inv.Add(loc.Item)
	}
	for _, r := range regions {
		inv.claimed.Put(r)
		inv.progressions[r.World.Id].Add(r.Reward.Type)
	}
}

// Claimed reports whether the reward of r has been credited.
func (inv *Inventory) Claimed(r *world.Region) bool {
	return inv.claimed.Has(r)
}

// Collect returns the closure of owned plus everything obtainable from the
// filled locations among locations. Each productive pass strictly shrinks
// the pending set, so the loop terminates.
func Collect(worlds []*world.World, owned []*items.Item, locations []*world.Location) *Inventory {
	inv := NewInventory(worlds, owned)
	inv.Expand(locations)
	return inv
}

// Expand drives inv to its fixed point over pending and returns the
// locations that stayed out of reach.
func (inv *Inventory) Expand(pending []*world.Location) []*world.Location {
	for {
		reached, rest, rewards := inv.Sweep(pending)
		if len(reached) == 0 && len(rewards) == 0 {
			return rest
		}
		inv.Take(reached, rewards)
		pending = rest
	}
}

// Filled returns the filled locations of worlds in world and location order.
func Filled(worlds []*world.World) []*world.Location {
	var out []*world.Location
	for _, w := range worlds {
		for _, loc := range w.Locations {
			if loc.Item != nil {
				out = append(out, loc)
			}
		}
	}
	return out
}

package fill

import (
	"cmp"
	"maps"
	"slices"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/items"
	"github.com/pixil98/go-rando/internal/reach"
	"github.com/pixil98/go-rando/internal/world"
)

// placeManual commits the configured placements of every world, taking each
// item out of its world's pools. A placement whose item is needed to reach
// its own location is rejected even if every reward is assumed.
func (f *Filler) placeManual(worlds []*world.World, pools []*items.PoolSet) error {
	for i, w := range worlds {
		for _, name := range slices.Sorted(maps.Keys(w.Config.Placements)) {
			itemName := w.Config.Placements[name]

			loc, ok := w.Location(name)
			if !ok {
				return Fail(ReasonManualConflict, "%s: no location named %q", w, name)
			}
			if loc.Filled() {
				return Fail(ReasonManualConflict, "%s: location %q already holds %s", w, name, loc.Item)
			}

			t, err := items.ParseItemType(itemName)
			if err != nil {
				return Fail(ReasonManualConflict, "%s: %s: %v", w, name, err)
			}
			item, ok := pools[i].Remove(t)
			if !ok {
				return Fail(ReasonManualConflict, "%s: no %s left in the item pool for %q", w, t, name)
			}

			var others []*items.Item
			for _, ps := range pools {
				others = append(others, ps.All()...)
			}
			inv := reach.Collect(worlds, others, reach.Filled(worlds))
			s := world.NewState(inv.For(w)).AssumingRewards()
			if !loc.Accepts(item, s) {
				return Fail(ReasonManualConflict, "%s: %s may not be placed at %q", w, t, name)
			}
			if !loc.Region.CanEnter(inv.For(w), false) || !loc.CanFillIn(item, s) {
				return Fail(ReasonManualConflict, "%s: %s is required to reach %q", w, t, name)
			}

			loc.Item = item
		}
	}
	return nil
}

// placeEarly moves each configured early item out of the progression list
// and into a random location reachable with what has been placed so far,
// drawn from the lowest weight among them. With dungeon items kept local,
// dungeon locations are skipped so the dungeon pass keeps its room.
func (f *Filler) placeEarly(worlds []*world.World, cfg *config.Config, progression []*items.Item) ([]*items.Item, error) {
	for _, name := range cfg.EarlyItems {
		t, err := items.ParseItemType(name)
		if err != nil {
			return nil, Fail(ReasonManualConflict, "early item: %v", err)
		}

		for _, w := range worlds {
			idx := slices.IndexFunc(progression, func(it *items.Item) bool { return it.Is(t, w.Id) })
			if idx < 0 {
				f.logger.Warn("early item not in progression pool", "item", t, "world", w.Id)
				continue
			}
			item := progression[idx]

			inv := reach.Collect(worlds, nil, reach.Filled(worlds))
			var candidates []*world.Location
			for _, loc := range emptyLocations(worlds) {
				if loc.Region.Treasure != nil && !cfg.Z3Keysanity() {
					continue
				}
				if loc.CanFill(item, inv.For(loc.World())) {
					candidates = append(candidates, loc)
				}
			}
			if len(candidates) == 0 {
				return nil, Fail(ReasonPlacementExhausted, "no early location accepts %s", item)
			}

			candidates = earliest(candidates)
			loc := candidates[f.rnd.Intn(len(candidates))]
			loc.Item = item
			progression = slices.Delete(progression, idx, idx+1)
		}
	}
	return progression, nil
}

// earliest keeps the candidates sharing the lowest location weight.
func earliest(candidates []*world.Location) []*world.Location {
	low := slices.MinFunc(candidates, func(a, b *world.Location) int {
		return cmp.Compare(a.Weight, b.Weight)
	}).Weight
	return slices.DeleteFunc(candidates, func(loc *world.Location) bool { return loc.Weight > low })
}

// applyWeights moves every item of a weighted type to a uniform index in
// [len*(1-weight), len]. Items late in the list are placed last, against
// the smallest assumed inventory, so they tend to land early.
func (f *Filler) applyWeights(list []*items.Item, weights map[string]float64) []*items.Item {
	for _, name := range slices.Sorted(maps.Keys(weights)) {
		t, err := items.ParseItemType(name)
		if err != nil {
			f.logger.Warn("ignoring weight for unknown item", "item", name)
			continue
		}

		var moved []*items.Item
		list = slices.DeleteFunc(list, func(it *items.Item) bool {
			if it.Type == t {
				moved = append(moved, it)
				return true
			}
			return false
		})

		for _, it := range moved {
			floor := insertionFloor(len(list), weights[name])
			idx := floor + f.rnd.Intn(len(list)-floor+1)
			list = slices.Insert(list, idx, it)
		}
	}
	return list
}

func insertionFloor(n int, weight float64) int {
	floor := int(float64(n) * (1 - weight))
	return max(0, min(n, floor))
}

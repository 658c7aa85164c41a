// Package fill assigns item pools to world locations so the result is
// always completable.
package fill

import (
	"cmp"
	"context"
	"log/slog"
	"math/rand"
	"slices"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/items"
	"github.com/pixil98/go-rando/internal/reach"
	"github.com/pixil98/go-rando/internal/world"
)

// Filler places items. It is single threaded and owns no state beyond its
// random source, so one Filler serves one generation at a time.
type Filler struct {
	rnd        *rand.Rand
	logger     *slog.Logger
	maxRetries int
	pools      func(cfg *config.Config, world int) *items.PoolSet
}

func NewFiller(opts ...FillerOpt) *Filler {
	f := &Filler{
		rnd:    rand.New(rand.NewSource(0)),
		logger: slog.Default(),
		pools:  items.Pools,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// SetRandom sets the source every random choice is drawn from.
func (f *Filler) SetRandom(rnd *rand.Rand) {
	f.rnd = rnd
}

func (f *Filler) retries(cfg *config.Config) int {
	if f.maxRetries > 0 {
		return f.maxRetries
	}
	return cfg.Retries()
}

// Fill assigns every pool item of every world to a location. Location.Item
// is mutated in place; on error the partial assignment must be discarded.
func (f *Filler) Fill(ctx context.Context, worlds []*world.World, cfg *config.Config) error {
	pools := make([]*items.PoolSet, len(worlds))
	for i, w := range worlds {
		pools[i] = f.pools(w.Config, w.Id)
	}

	if err := f.placeManual(worlds, pools); err != nil {
		return err
	}

	var progression, nice, junk, dungeon []*items.Item
	for _, ps := range pools {
		progression = append(progression, ps.Progression...)
		progression = append(progression, ps.Keycards...)
		nice = append(nice, ps.Nice...)
		junk = append(junk, ps.Junk...)
		dungeon = append(dungeon, ps.Dungeon...)
	}

	if cfg.Z3Keysanity() {
		for _, it := range dungeon {
			if it.IsKey() || it.IsBigKey() {
				progression = append(progression, it)
			} else {
				nice = append(nice, it)
			}
		}
		dungeon = nil
	}

	f.shuffle(progression)
	f.shuffle(nice)
	f.shuffle(junk)
	f.shuffle(dungeon)

	progression, err := f.placeEarly(worlds, cfg, progression)
	if err != nil {
		return err
	}

	progression = f.applyWeights(progression, cfg.ItemWeights)

	if len(dungeon) > 0 {
		slices.SortStableFunc(dungeon, func(a, b *items.Item) int {
			return cmp.Compare(dungeonPriority(a), dungeonPriority(b))
		})
		f.logger.DebugContext(ctx, "placing dungeon items", "count", len(dungeon))
		if err := f.assumedFill(ctx, worlds, cfg, dungeon, progression, emptyLocations(worlds)); err != nil {
			return err
		}
	}

	f.logger.DebugContext(ctx, "placing progression items", "count", len(progression))
	if err := f.assumedFill(ctx, worlds, cfg, progression, nil, emptyLocations(worlds)); err != nil {
		return err
	}

	if left := f.fastFill(nice, f.shuffledEmpty(worlds)); len(left) > 0 {
		f.logger.WarnContext(ctx, "nice items left unplaced", "count", len(left))
	}
	if left := f.fastFill(junk, f.shuffledEmpty(worlds)); len(left) > 0 {
		f.logger.WarnContext(ctx, "junk items left unplaced", "count", len(left))
	}

	if empty := emptyLocations(worlds); len(empty) > 0 {
		f.logger.WarnContext(ctx, "locations left empty after junk ran out", "count", len(empty))
	}

	return nil
}

// dungeonPriority puts the most constrained dungeon items first.
func dungeonPriority(it *items.Item) int {
	switch {
	case it.IsBigKey():
		return 0
	case it.IsKey():
		return 1
	default:
		return 2
	}
}

// assumedFill places list one item at a time. Each item goes to a location
// that accepts it while every other item still to place, plus base, is
// assumed collected.
func (f *Filler) assumedFill(ctx context.Context, worlds []*world.World, cfg *config.Config,
	list, base []*items.Item, locations []*world.Location) error {

	retries := f.retries(cfg)
	failures := map[*items.Item]int{}
	queue := slices.Clone(list)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := queue[0]
		queue = queue[1:]

		owned := make([]*items.Item, 0, len(base)+len(queue))
		owned = append(owned, base...)
		owned = append(owned, queue...)
		inv := reach.Collect(worlds, owned, reach.Filled(worlds))

		loc := f.findLocation(item, inv, locations)
		if loc == nil {
			failures[item]++
			if failures[item] > retries {
				return Fail(ReasonPlacementExhausted, "no location accepts %s after %d attempts", item, failures[item])
			}
			queue = append(queue, item)
			continue
		}

		loc.Item = item
		locations = slices.DeleteFunc(locations, func(l *world.Location) bool { return l == loc })
	}

	return nil
}

// findLocation returns a random empty location accepting item, or nil.
func (f *Filler) findLocation(item *items.Item, inv *reach.Inventory, locations []*world.Location) *world.Location {
	for _, i := range f.rnd.Perm(len(locations)) {
		loc := locations[i]
		if loc.Item == nil && loc.CanFill(item, inv.For(loc.World())) {
			return loc
		}
	}
	return nil
}

// fastFill zips list against locations with no predicate evaluation and
// returns the items that did not fit.
func (f *Filler) fastFill(list []*items.Item, locations []*world.Location) []*items.Item {
	n := min(len(list), len(locations))
	for i := range n {
		locations[i].Item = list[i]
	}
	return list[n:]
}

func (f *Filler) shuffle(list []*items.Item) {
	f.rnd.Shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
}

func (f *Filler) shuffledEmpty(worlds []*world.World) []*world.Location {
	locs := emptyLocations(worlds)
	f.rnd.Shuffle(len(locs), func(i, j int) { locs[i], locs[j] = locs[j], locs[i] })
	return locs
}

func emptyLocations(worlds []*world.World) []*world.Location {
	var out []*world.Location
	for _, w := range worlds {
		out = append(out, w.EmptyLocations()...)
	}
	return out
}

package world

import (
	"maps"

	"github.com/pixil98/go-rando/internal/items"
)

// Access decides whether a location or region can be reached.
type Access func(s State) bool

// ItemFilter decides whether an item may be placed at a location.
type ItemFilter func(item *items.Item, s State) bool

// State is what a predicate sees: an inventory, any placements being
// simulated, and whether reward requirements are treated as already met.
// A State is a value; simulating a placement returns a new one and never
// touches the real Location.
type State struct {
	*items.Progression

	hypothetical  map[*Location]*items.Item
	assumeRewards bool
}

// NewState wraps a progression with no simulated placements.
func NewState(p *items.Progression) State {
	return State{Progression: p}
}

// With returns a copy of s in which loc holds item.
func (s State) With(loc *Location, item *items.Item) State {
	h := make(map[*Location]*items.Item, len(s.hypothetical)+1)
	maps.Copy(h, s.hypothetical)
	h[loc] = item
	s.hypothetical = h
	return s
}

// AssumingRewards returns a copy of s in which every reward requirement holds.
func (s State) AssumingRewards() State {
	s.assumeRewards = true
	return s
}

// ItemAt returns the item at loc, preferring a simulated placement.
func (s State) ItemAt(loc *Location) *items.Item {
	if item, ok := s.hypothetical[loc]; ok {
		return item
	}
	return loc.Item
}

// ItemIs reports whether loc holds an item of type t belonging to loc's own world.
func (s State) ItemIs(loc *Location, t items.ItemType) bool {
	return s.ItemAt(loc).Is(t, loc.Region.World.Id)
}

func (s State) HasReward(t items.ItemType) bool {
	return s.assumeRewards || s.Contains(t)
}

func (s State) HasCrystals(n int) bool {
	return s.assumeRewards || s.Crystals() >= n
}

func (s State) HasAllPendants() bool {
	return s.assumeRewards || s.Progression.HasAllPendants()
}

func (s State) HasBossTokens(n int) bool {
	return s.assumeRewards || s.BossTokens() >= n
}

// HasRewards reports whether at least n rewards of type t are owned.
func (s State) HasRewards(t items.ItemType, n int) bool {
	return s.assumeRewards || s.Has(t, n)
}

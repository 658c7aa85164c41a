package world

import (
	"github.com/pixil98/go-rando/internal/items"
)

// Region is a named group of locations sharing an entry predicate. What a
// region offers beyond that is described by the optional capability records:
// a nil record means the region lacks the capability.
type Region struct {
	Name      string
	Game      items.Game
	World     *World
	Locations []*Location

	Reward       *Reward
	Treasure     *Treasure
	Boss         *Boss
	Prerequisite *Prerequisite

	entry Access
}

// Reward is the prize granted when a region is completed.
type Reward struct {
	// Type is fixed at definition for unshuffled rewards and chosen by
	// World.Setup otherwise.
	Type     items.ItemType
	Shuffled bool

	complete Access
}

// Treasure lists the dungeon items that belong to a region.
type Treasure struct {
	Key     items.ItemType
	Keys    int
	BigKey  items.ItemType
	Map     items.ItemType
	Compass items.ItemType
}

// Items returns every dungeon item the region owns.
func (t *Treasure) Items() []items.ItemType {
	var out []items.ItemType
	for range t.Keys {
		out = append(out, t.Key)
	}
	for _, it := range []items.ItemType{t.BigKey, t.Map, t.Compass} {
		if it != items.Nothing {
			out = append(out, it)
		}
	}
	return out
}

// Holds reports whether t is one of the region's dungeon item types.
func (t *Treasure) Holds(it items.ItemType) bool {
	if it == items.Nothing {
		return false
	}
	return it == t.Key || it == t.BigKey || it == t.Map || it == t.Compass
}

type Boss struct {
	Name string
}

// Prerequisite is an item that must be owned to enter at all, picked from
// Choices by World.Setup.
type Prerequisite struct {
	Choices  []items.ItemType
	Required items.ItemType
}

// CanEnter evaluates the entry predicate. When requireRewards is false every
// reward clause is treated as satisfied.
func (r *Region) CanEnter(p *items.Progression, requireRewards bool) bool {
	s := NewState(p)
	if !requireRewards {
		s = s.AssumingRewards()
	}
	return r.canEnter(s)
}

func (r *Region) canEnter(s State) bool {
	if r.Prerequisite != nil && !s.Contains(r.Prerequisite.Required) {
		return false
	}
	return r.entry == nil || r.entry(s)
}

// CanComplete reports whether the region's reward can be claimed.
func (r *Region) CanComplete(p *items.Progression) bool {
	if r.Reward == nil || r.Reward.Type == items.Nothing {
		return false
	}
	s := NewState(p)
	return r.canEnter(s) && (r.Reward.complete == nil || r.Reward.complete(s))
}

// CanFill applies the region-wide placement rules. Dungeon items stay in
// their own dungeon and world unless Zelda keysanity is on.
func (r *Region) CanFill(item *items.Item) bool {
	if !item.IsDungeonItem() || r.World.Config.Z3Keysanity() {
		return true
	}
	return r.IsRegionItem(item)
}

// IsRegionItem reports whether item is one of this region's own dungeon items.
func (r *Region) IsRegionItem(item *items.Item) bool {
	return r.Treasure != nil && item.World == r.World.Id && r.Treasure.Holds(item.Type)
}

// loc appends a location to the region.
func (r *Region) loc(name string, access Access) *Location {
	w := r.World
	l := &Location{
		Id:      len(w.Locations),
		Name:    name,
		Address: addressBase[r.Game] + uint32(len(w.Locations)),
		Region:  r,
		access:  access,
	}
	r.Locations = append(r.Locations, l)
	w.Locations = append(w.Locations, l)
	return l
}

var addressBase = map[items.Game]uint32{
	items.GameZelda:   0x1E8000,
	items.GameMetroid: 0x78F000,
}

package world

import (
	"fmt"

	"github.com/pixil98/go-rando/internal/items"
)

// Location is a single item slot.
type Location struct {
	Id      int
	Name    string
	Room    string
	Address uint32

	// Weight biases distribution. Negative weights mark early locations.
	Weight int

	Region *Region
	Item   *items.Item

	access      Access
	allow       ItemFilter
	alwaysAllow ItemFilter
}

func (l *Location) String() string {
	return fmt.Sprintf("%s (%s)", l.Name, l.Region.Name)
}

// World returns the world owning the location.
func (l *Location) World() *World {
	return l.Region.World
}

// Filled reports whether an item is assigned.
func (l *Location) Filled() bool {
	return l.Item != nil
}

// IsAvailable reports whether the owning region can be entered and the
// location's own access predicate holds.
func (l *Location) IsAvailable(p *items.Progression) bool {
	return l.IsAvailableIn(NewState(p))
}

// IsAvailableIn is IsAvailable for an explicit predicate state.
func (l *Location) IsAvailableIn(s State) bool {
	return l.Region.canEnter(s) && (l.access == nil || l.access(s))
}

// CanFill reports whether item could be placed here. The placement is
// simulated through the predicate state; l.Item is never written.
func (l *Location) CanFill(item *items.Item, p *items.Progression) bool {
	return l.CanFillIn(item, NewState(p))
}

// CanFillIn is CanFill for an explicit predicate state.
func (l *Location) CanFillIn(item *items.Item, s State) bool {
	s = s.With(l, item)
	if l.alwaysAllow != nil && l.alwaysAllow(item, s) {
		return true
	}
	return l.accepts(item, s) && l.IsAvailableIn(s)
}

// Accepts applies the placement rules of the location and its region
// without asking whether the location can be reached.
func (l *Location) Accepts(item *items.Item, s State) bool {
	s = s.With(l, item)
	if l.alwaysAllow != nil && l.alwaysAllow(item, s) {
		return true
	}
	return l.accepts(item, s)
}

func (l *Location) accepts(item *items.Item, s State) bool {
	return l.Region.CanFill(item) && (l.allow == nil || l.allow(item, s))
}

// Allow restricts which items may be placed here.
func (l *Location) Allow(f ItemFilter) *Location {
	l.allow = f
	return l
}

// AlwaysAllow accepts matching items regardless of region rules and reachability.
func (l *Location) AlwaysAllow(f ItemFilter) *Location {
	l.alwaysAllow = f
	return l
}

// InRoom records the sub-room the location sits in.
func (l *Location) InRoom(room string) *Location {
	l.Room = room
	return l
}

// WithWeight sets the distribution weight.
func (l *Location) WithWeight(w int) *Location {
	l.Weight = w
	return l
}

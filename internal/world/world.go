package world

import (
	"fmt"
	"math/rand"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/items"
	"github.com/pixil98/go-rando/internal/logic"
)

// World is the full region and location graph for one player.
type World struct {
	Id     int
	Player string
	Config *config.Config
	Logic  logic.Logic

	Regions   []*Region
	Locations []*Location

	regions   map[string]*Region
	locations map[string]*Location

	defeatGanon       Access
	defeatMotherBrain Access
}

// New builds the graph for one player from the static definitions.
// Rewards and medallions stay unassigned until Setup runs.
func New(cfg *config.Config, id int, player string) *World {
	w := &World{
		Id:        id,
		Player:    player,
		Config:    cfg,
		Logic:     logic.New(cfg),
		regions:   map[string]*Region{},
		locations: map[string]*Location{},
	}

	w.buildZelda()
	w.buildMetroid()

	for _, l := range w.Locations {
		w.locations[l.Name] = l
	}
	return w
}

// Validate checks the built graph: region and location names must be
// unique and every prerequisite needs something to draw from.
func (w *World) Validate() error {
	el := errors.NewErrorList()

	regions := map[string]bool{}
	for _, r := range w.Regions {
		if regions[r.Name] {
			el.Add(fmt.Errorf("duplicate region %q", r.Name))
		}
		regions[r.Name] = true

		if r.Prerequisite != nil && len(r.Prerequisite.Choices) == 0 {
			el.Add(fmt.Errorf("region %q: prerequisite has no choices", r.Name))
		}
	}

	locations := map[string]bool{}
	for _, l := range w.Locations {
		if locations[l.Name] {
			el.Add(fmt.Errorf("duplicate location %q", l.Name))
		}
		locations[l.Name] = true
	}

	return el.Err()
}

func (w *World) String() string {
	return fmt.Sprintf("world %d (%s)", w.Id, w.Player)
}

func (w *World) region(name string, game items.Game, entry Access) *Region {
	r := &Region{
		Name:  name,
		Game:  game,
		World: w,
		entry: entry,
	}
	w.Regions = append(w.Regions, r)
	w.regions[name] = r
	return r
}

// enter evaluates another region's entry predicate under the same state.
func (w *World) enter(name string, s State) bool {
	return w.regions[name].canEnter(s)
}

// Region looks a region up by name.
func (w *World) Region(name string) (*Region, bool) {
	r, ok := w.regions[name]
	return r, ok
}

// Location looks a location up by name.
func (w *World) Location(name string) (*Location, bool) {
	l, ok := w.locations[name]
	return l, ok
}

// Items returns every placed item in location order.
func (w *World) Items() []*items.Item {
	var out []*items.Item
	for _, l := range w.Locations {
		if l.Item != nil {
			out = append(out, l.Item)
		}
	}
	return out
}

// EmptyLocations returns the unfilled locations in location order.
func (w *World) EmptyLocations() []*Location {
	var out []*Location
	for _, l := range w.Locations {
		if l.Item == nil {
			out = append(out, l)
		}
	}
	return out
}

// DungeonItems returns the dungeon items owned by every treasure region.
func (w *World) DungeonItems() []items.ItemType {
	var out []items.ItemType
	for _, r := range w.Regions {
		if r.Treasure != nil {
			out = append(out, r.Treasure.Items()...)
		}
	}
	return out
}

// Setup draws the medallion prerequisites and shuffles the Zelda rewards
// over the dungeons that carry one. It must run once, before filling.
func (w *World) Setup(rnd *rand.Rand) {
	for _, r := range w.Regions {
		if r.Prerequisite != nil {
			r.Prerequisite.Required = r.Prerequisite.Choices[rnd.Intn(len(r.Prerequisite.Choices))]
		}
	}

	rewards := items.RewardPool()
	rnd.Shuffle(len(rewards), func(i, j int) { rewards[i], rewards[j] = rewards[j], rewards[i] })

	i := 0
	for _, r := range w.Regions {
		if r.Reward != nil && r.Reward.Shuffled {
			r.Reward.Type = rewards[i]
			i++
		}
	}
}

// Medallions returns the drawn prerequisite per region name.
func (w *World) Medallions() map[string]items.ItemType {
	out := map[string]items.ItemType{}
	for _, r := range w.Regions {
		if r.Prerequisite != nil {
			out[r.Name] = r.Prerequisite.Required
		}
	}
	return out
}

// Rewards returns the assigned reward per region name.
func (w *World) Rewards() map[string]items.ItemType {
	out := map[string]items.ItemType{}
	for _, r := range w.Regions {
		if r.Reward != nil {
			out[r.Name] = r.Reward.Type
		}
	}
	return out
}

// CanBeatGame is the victory predicate: both final bosses must be beatable.
func (w *World) CanBeatGame(p *items.Progression) bool {
	s := NewState(p)
	return w.defeatGanon(s) && w.defeatMotherBrain(s)
}

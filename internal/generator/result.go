package generator

import (
	"github.com/google/uuid"
	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/playthrough"
	"github.com/pixil98/go-rando/internal/world"
)

// Result is everything a downstream consumer needs from one successful
// generation. It holds names only, no graph pointers, so it can be
// serialized and archived as is.
type Result struct {
	ID      uuid.UUID      `json:"id"`
	Seed    int64          `json:"seed"`
	Config  *config.Config `json:"config"`
	Worlds  []WorldResult  `json:"worlds"`
	Spheres []SphereResult `json:"spheres"`
}

type WorldResult struct {
	Id         int               `json:"id"`
	Player     string            `json:"player"`
	Medallions map[string]string `json:"medallions"`
	Rewards    map[string]string `json:"rewards"`
	Placements []Placement       `json:"placements"`
}

// Placement is one filled location. Owner is the world whose player
// receives the item.
type Placement struct {
	World    int    `json:"world"`
	Location string `json:"location"`
	Region   string `json:"region"`
	Room     string `json:"room,omitempty"`
	Address  uint32 `json:"address"`
	Item     string `json:"item"`
	Owner    int    `json:"owner"`
}

type RewardClaim struct {
	World  int    `json:"world"`
	Region string `json:"region"`
	Reward string `json:"reward"`
}

type SphereResult struct {
	Placements []Placement   `json:"placements"`
	Rewards    []RewardClaim `json:"rewards,omitempty"`
}

func placementOf(loc *world.Location) Placement {
	return Placement{
		World:    loc.World().Id,
		Location: loc.Name,
		Region:   loc.Region.Name,
		Room:     loc.Room,
		Address:  loc.Address,
		Item:     loc.Item.Type.String(),
		Owner:    loc.Item.World,
	}
}

func newWorldResult(w *world.World) WorldResult {
	wr := WorldResult{
		Id:         w.Id,
		Player:     w.Player,
		Medallions: map[string]string{},
		Rewards:    map[string]string{},
	}
	for region, t := range w.Medallions() {
		wr.Medallions[region] = t.String()
	}
	for region, t := range w.Rewards() {
		wr.Rewards[region] = t.String()
	}
	for _, loc := range w.Locations {
		if loc.Item != nil {
			wr.Placements = append(wr.Placements, placementOf(loc))
		}
	}
	return wr
}

func newSphereResult(s playthrough.Sphere) SphereResult {
	var sr SphereResult
	for _, loc := range s.Locations {
		sr.Placements = append(sr.Placements, placementOf(loc))
	}
	for _, r := range s.Rewards {
		sr.Rewards = append(sr.Rewards, RewardClaim{
			World:  r.World.Id,
			Region: r.Name,
			Reward: r.Reward.Type.String(),
		})
	}
	return sr
}

// Player returns the name of the player owning world id.
func (r *Result) Player(id int) string {
	for _, w := range r.Worlds {
		if w.Id == id {
			return w.Player
		}
	}
	return ""
}

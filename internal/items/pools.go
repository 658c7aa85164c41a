package items

import (
	"github.com/pixil98/go-rando/internal/config"
)

// template is an ordered list of item types with their counts. The order
// is fixed so pool construction is deterministic before shuffling.
type template []struct {
	Type  ItemType
	Count int
}

func (t template) build(world int) []*Item {
	var out []*Item
	for _, e := range t {
		for range e.Count {
			out = append(out, &Item{Type: e.Type, World: world})
		}
	}
	return out
}

func (t template) size() int {
	n := 0
	for _, e := range t {
		n += e.Count
	}
	return n
}

var progressionTemplate = template{
	{ProgressiveSword, 3},
	{ProgressiveGlove, 2},
	{Bow, 1},
	{SilverArrows, 1},
	{Hookshot, 1},
	{Firerod, 1},
	{Icerod, 1},
	{Bombos, 1},
	{Ether, 1},
	{Quake, 1},
	{Lamp, 1},
	{Hammer, 1},
	{Flute, 1},
	{Book, 1},
	{Bottle, 1},
	{Somaria, 1},
	{Cape, 1},
	{Mirror, 1},
	{Boots, 1},
	{Flippers, 1},
	{MoonPearl, 1},
	{HalfMagic, 1},
	{Shovel, 1},
	{Mushroom, 1},
	{Powder, 1},

	{Morph, 1},
	{Bombs, 1},
	{Charge, 1},
	{Ice, 1},
	{Wave, 1},
	{Plasma, 1},
	{Varia, 1},
	{Gravity, 1},
	{HiJump, 1},
	{SpaceJump, 1},
	{SpeedBooster, 1},
	{ScrewAttack, 1},
	{SpringBall, 1},
	{Grapple, 1},
	{Missile, 2},
	{Super, 2},
	{PowerBomb, 2},
	{ETank, 4},
	{ReserveTank, 2},
}

var niceTemplate = template{
	{ProgressiveShield, 3},
	{ProgressiveTunic, 2},
	{Bugnet, 1},
	{Byrna, 1},
	{Boomerang, 1},
	{RedBoomerang, 1},
	{Bottle, 3},
	{HeartContainer, 10},

	{Spazer, 1},
	{XRay, 1},
	{ETank, 10},
	{ReserveTank, 2},
}

var dungeonTemplate = template{
	{KeyHC, 1}, {MapHC, 1},
	{KeyCT, 2},
	{BigKeyEP, 1}, {MapEP, 1}, {CompassEP, 1},
	{KeyDP, 1}, {BigKeyDP, 1}, {MapDP, 1}, {CompassDP, 1},
	{KeyTH, 1}, {BigKeyTH, 1}, {MapTH, 1}, {CompassTH, 1},
	{KeyPD, 3}, {BigKeyPD, 1}, {MapPD, 1}, {CompassPD, 1},
	{KeyIP, 2}, {BigKeyIP, 1}, {MapIP, 1}, {CompassIP, 1},
	{KeyMM, 2}, {BigKeyMM, 1}, {MapMM, 1}, {CompassMM, 1},
	{KeyTR, 2}, {BigKeyTR, 1}, {MapTR, 1}, {CompassTR, 1},
	{KeyGT, 2}, {BigKeyGT, 1}, {MapGT, 1}, {CompassGT, 1},
}

var keycardTemplate = template{
	{CardCrateriaL1, 1}, {CardCrateriaL2, 1}, {CardCrateriaBoss, 1},
	{CardBrinstarL1, 1}, {CardBrinstarL2, 1}, {CardBrinstarBoss, 1},
	{CardNorfairL1, 1}, {CardNorfairL2, 1}, {CardNorfairBoss, 1},
	{CardMaridiaL1, 1}, {CardMaridiaL2, 1}, {CardMaridiaBoss, 1},
	{CardWreckedShipL1, 1}, {CardWreckedShipBoss, 1},
	{CardLowerNorfairL1, 1}, {CardLowerNorfairBoss, 1},
}

var zeldaJunkTemplate = template{
	{HeartPiece, 24},
	{ThreeBombs, 4},
	{TenArrows, 4},
	{OneRupee, 2},
	{FiveRupees, 4},
	{TwentyRupees, 6},
	{FiftyRupees, 3},
	{OneHundredRupees, 1},
	{ThreeHundredRupees, 2},
}

// The Metroid ammo junk gives up one slot per keycard when keycards are shuffled.
var (
	metroidJunkTemplate = template{
		{Missile, 20},
		{Super, 7},
		{PowerBomb, 6},
	}
	metroidKeysanityJunkTemplate = template{
		{Missile, 10},
		{Super, 4},
		{PowerBomb, 3},
	}
)

var rewardTemplate = template{
	{PendantGreen, 1},
	{PendantNonGreen, 2},
	{CrystalRed, 2},
	{CrystalBlue, 2},
}

// PoolSet is the full set of items one world contributes to a generation.
type PoolSet struct {
	Progression []*Item
	Nice        []*Item
	Junk        []*Item
	Dungeon     []*Item
	Keycards    []*Item
}

// Pools builds the item pools for one world.
func Pools(cfg *config.Config, world int) *PoolSet {
	ps := &PoolSet{
		Progression: progressionTemplate.build(world),
		Nice:        niceTemplate.build(world),
		Dungeon:     dungeonTemplate.build(world),
		Junk:        zeldaJunkTemplate.build(world),
	}
	if cfg.SMKeysanity() {
		ps.Keycards = keycardTemplate.build(world)
		ps.Junk = append(ps.Junk, metroidKeysanityJunkTemplate.build(world)...)
	} else {
		ps.Junk = append(ps.Junk, metroidJunkTemplate.build(world)...)
	}
	return ps
}

// Len returns the number of items across all pools.
func (ps *PoolSet) Len() int {
	return len(ps.Progression) + len(ps.Nice) + len(ps.Junk) + len(ps.Dungeon) + len(ps.Keycards)
}

// All returns every item in pool order.
func (ps *PoolSet) All() []*Item {
	out := make([]*Item, 0, ps.Len())
	out = append(out, ps.Progression...)
	out = append(out, ps.Nice...)
	out = append(out, ps.Dungeon...)
	out = append(out, ps.Keycards...)
	out = append(out, ps.Junk...)
	return out
}

// Remove takes the first item of type t out of whichever pool holds it.
func (ps *PoolSet) Remove(t ItemType) (*Item, bool) {
	for _, pool := range []*[]*Item{&ps.Progression, &ps.Dungeon, &ps.Keycards, &ps.Nice, &ps.Junk} {
		for i, it := range *pool {
			if it.Type == t {
				*pool = append((*pool)[:i], (*pool)[i+1:]...)
				return it, true
			}
		}
	}
	return nil, false
}

// DungeonPool lists every Zelda dungeon item type one world owns.
func DungeonPool() []ItemType {
	return Types(dungeonTemplate.build(0))
}

// RewardPool lists the Zelda rewards shuffled over the reward dungeons.
func RewardPool() []ItemType {
	return Types(rewardTemplate.build(0))
}

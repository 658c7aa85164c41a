package items

import (
	"maps"
	"slices"

	"github.com/pixil98/go-rando/internal/config"
)

// Progression is a multiset of owned item types plus the configuration it
// is evaluated under. Every capability query is a pure function of those
// two things.
//
// Capabilities are layered: leaf queries only look at counts, composite
// queries only call leaves or composites declared above them. Keep it that
// way so evaluation can never recurse.
type Progression struct {
	cfg    *config.Config
	counts map[ItemType]int
}

// NewProgression creates a progression holding the given types.
func NewProgression(cfg *config.Config, types ...ItemType) *Progression {
	p := &Progression{
		cfg:    cfg,
		counts: make(map[ItemType]int, len(types)),
	}
	p.AddRange(types)
	return p
}

// Config returns the configuration snapshot shared by clones.
func (p *Progression) Config() *config.Config {
	return p.cfg
}

func (p *Progression) Add(t ItemType) {
	p.counts[t]++
}

func (p *Progression) AddRange(types []ItemType) {
	for _, t := range types {
		p.counts[t]++
	}
}

// Clone deep copies the owned multiset. The configuration is shared.
func (p *Progression) Clone() *Progression {
	return &Progression{
		cfg:    p.cfg,
		counts: maps.Clone(p.counts),
	}
}

func (p *Progression) Contains(t ItemType) bool {
	return p.counts[t] > 0
}

// Has reports whether at least n items of type t are owned.
func (p *Progression) Has(t ItemType, n int) bool {
	return p.counts[t] >= n
}

func (p *Progression) Count(t ItemType) int {
	return p.counts[t]
}

// Len returns the total number of owned items.
func (p *Progression) Len() int {
	n := 0
	for _, c := range p.counts {
		n += c
	}
	return n
}

// Types returns the owned multiset as a sorted list.
func (p *Progression) Types() []ItemType {
	var out []ItemType
	for _, t := range slices.Sorted(maps.Keys(p.counts)) {
		for range p.counts[t] {
			out = append(out, t)
		}
	}
	return out
}

// Equal reports whether both progressions own the same multiset.
func (p *Progression) Equal(o *Progression) bool {
	return maps.EqualFunc(nonZero(p.counts), nonZero(o.counts), func(a, b int) bool { return a == b })
}

func nonZero(m map[ItemType]int) map[ItemType]int {
	out := make(map[ItemType]int, len(m))
	for k, v := range m {
		if v > 0 {
			out[k] = v
		}
	}
	return out
}

/* Zelda leaves */

func (p *Progression) Sword() int { return p.counts[ProgressiveSword] }
func (p *Progression) Glove() int { return p.counts[ProgressiveGlove] }

func (p *Progression) CanLiftLight() bool { return p.Glove() >= 1 }
func (p *Progression) CanLiftHeavy() bool { return p.Glove() >= 2 }

func (p *Progression) CanLightTorches() bool {
	return p.Contains(Firerod) || p.Contains(Lamp)
}

func (p *Progression) CanMeltFreezors() bool {
	return p.Contains(Firerod) || p.Contains(Bombos) && p.Sword() >= 1
}

// CanExtendMagic reports whether the magic meter can be stretched to the given number of bars.
func (p *Progression) CanExtendMagic(bars int) bool {
	n := 1
	if p.Contains(HalfMagic) {
		n *= 2
	}
	if p.Contains(Bottle) {
		n *= 2
	}
	return n >= bars
}

func (p *Progression) CanShootArrows() bool {
	return p.Contains(Bow)
}

func (p *Progression) Crystals() int {
	return p.counts[CrystalBlue] + p.counts[CrystalRed]
}

func (p *Progression) Pendants() int {
	return p.counts[PendantGreen] + p.counts[PendantNonGreen]
}

/* Zelda composites */

func (p *Progression) CanKillManyEnemies() bool {
	return p.Sword() >= 1 || p.Contains(Hammer) || p.CanShootArrows() || p.Contains(Firerod) ||
		p.Contains(Somaria) || p.Contains(Byrna) && p.CanExtendMagic(1)
}

// CanDefeatAgahnim covers the weapons that can reflect or damage the castle wizard.
func (p *Progression) CanDefeatAgahnim() bool {
	return p.Sword() >= 1 || p.Contains(Hammer) || p.Contains(Bugnet)
}

// HasAllPendants reports whether the green pendant and both other pendants are owned.
func (p *Progression) HasAllPendants() bool {
	return p.Contains(PendantGreen) && p.Has(PendantNonGreen, 2)
}

/* Metroid leaves */

func (p *Progression) CanOpenRedDoors() bool {
	return p.Contains(Missile) || p.Contains(Super)
}

func (p *Progression) CanOpenGreenDoors() bool {
	return p.Contains(Super)
}

func (p *Progression) CanUseMorphBombs() bool {
	return p.Contains(Morph) && p.Contains(Bombs)
}

func (p *Progression) CanUsePowerBombs() bool {
	return p.Contains(Morph) && p.Contains(PowerBomb)
}

func (p *Progression) CanSpringBallJump() bool {
	return p.Contains(Morph) && p.Contains(SpringBall)
}

// EnergyReserves counts energy and reserve tanks.
func (p *Progression) EnergyReserves() int {
	return p.counts[ETank] + p.counts[ReserveTank]
}

func (p *Progression) BossTokens() int {
	return p.counts[BossKraid] + p.counts[BossPhantoon] + p.counts[BossDraygon] + p.counts[BossRidley]
}

// HasCard reports whether a keycard door can be opened. Without Metroid
// keysanity there are no keycards and every such door is open.
func (p *Progression) HasCard(card ItemType) bool {
	if p.cfg == nil || !p.cfg.SMKeysanity() {
		return true
	}
	return p.Contains(card)
}

/* Metroid composites */

func (p *Progression) CanOpenYellowDoors() bool {
	return p.CanUsePowerBombs()
}

func (p *Progression) CanPassBombPassages() bool {
	return p.CanUseMorphBombs() || p.CanUsePowerBombs()
}

func (p *Progression) CanDestroyBombWalls() bool {
	return p.CanPassBombPassages() || p.Contains(ScrewAttack)
}

package logic

import (
	"fmt"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/items"
)

// Logic evaluates the ruleset-sensitive capabilities that location and
// region predicates consume. Graph definitions depend only on this
// interface so rulesets can be swapped without touching them.
type Logic interface {
	// Metroid side
	CanIbj(p *items.Progression) bool
	CanFly(p *items.Progression) bool
	CanHellRun(p *items.Progression) bool
	HasEnergyReserves(p *items.Progression, n int) bool
	CanEnterAndLeaveGauntlet(p *items.Progression) bool
	CanReachWreckedShip(p *items.Progression) bool
	CanNavigateMaridia(p *items.Progression) bool
	CanTraverseLowerNorfair(p *items.Progression) bool
	CanDefeatBotwoon(p *items.Progression) bool
	CanFightDraygon(p *items.Progression) bool

	// Portals reached from the Metroid side
	CanAccessDeathMountainPortal(p *items.Progression) bool
	CanAccessDarkWorldPortal(p *items.Progression) bool
	CanAccessMiseryMirePortal(p *items.Progression) bool
	CanAccessMaridiaPortal(p *items.Progression) bool

	// Zelda side
	CanAccessDeathMountain(p *items.Progression) bool
	CanClipWithBoots(p *items.Progression) bool
	CanSwim(p *items.Progression) bool

	// Portals reached from the Zelda side
	CanAccessNorfairUpperPortal(p *items.Progression) bool
	CanAccessNorfairLowerPortal(p *items.Progression) bool

	// Name describes the active rulesets, e.g. "z3:normal sm:hard".
	Name() string
}

type metroidRules interface {
	CanIbj(p *items.Progression) bool
	CanFly(p *items.Progression) bool
	CanHellRun(p *items.Progression) bool
	HasEnergyReserves(p *items.Progression, n int) bool
	CanEnterAndLeaveGauntlet(p *items.Progression) bool
	CanReachWreckedShip(p *items.Progression) bool
	CanNavigateMaridia(p *items.Progression) bool
	CanTraverseLowerNorfair(p *items.Progression) bool
	CanDefeatBotwoon(p *items.Progression) bool
	CanFightDraygon(p *items.Progression) bool
	CanAccessDeathMountainPortal(p *items.Progression) bool
	CanAccessDarkWorldPortal(p *items.Progression) bool
	CanAccessMiseryMirePortal(p *items.Progression) bool
	CanAccessMaridiaPortal(p *items.Progression) bool
}

type zeldaRules interface {
	CanAccessDeathMountain(p *items.Progression) bool
	CanClipWithBoots(p *items.Progression) bool
	CanSwim(p *items.Progression) bool
	CanAccessNorfairUpperPortal(p *items.Progression) bool
	CanAccessNorfairLowerPortal(p *items.Progression) bool
}

// Rules composes one Metroid ruleset with one Zelda ruleset.
type Rules struct {
	metroidRules
	zeldaRules

	name string
}

var _ Logic = (*Rules)(nil)

// New builds the ruleset selected by the configuration.
func New(cfg *config.Config) *Rules {
	var m metroidRules
	switch cfg.SMLogic {
	case config.SMLogicHard:
		m = hardMetroid{}
	default:
		m = normalMetroid{}
	}

	var z zeldaRules
	switch cfg.Z3Logic {
	case config.Z3LogicGlitched:
		z = glitchedZelda{}
	default:
		z = normalZelda{}
	}

	return &Rules{
		metroidRules: m,
		zeldaRules:   z,
		name:         fmt.Sprintf("z3:%s sm:%s", cfg.Z3Logic, cfg.SMLogic),
	}
}

func (r *Rules) Name() string {
	return r.name
}

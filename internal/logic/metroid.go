package logic

import (
	"github.com/pixil98/go-rando/internal/items"
)

// sharedMetroid holds the predicates whose truth tables do not differ between rulesets.
type sharedMetroid struct{}

func (sharedMetroid) CanIbj(p *items.Progression) bool {
	return p.CanUseMorphBombs()
}

func (sharedMetroid) HasEnergyReserves(p *items.Progression, n int) bool {
	return p.EnergyReserves() >= n
}

func (sharedMetroid) CanAccessDeathMountainPortal(p *items.Progression) bool {
	return (p.CanDestroyBombWalls() || p.Contains(items.SpeedBooster)) && p.Contains(items.Super) && p.Contains(items.Morph)
}

// normalMetroid expects no tricks beyond standard movement.
type normalMetroid struct {
	sharedMetroid
}

func (normalMetroid) CanFly(p *items.Progression) bool {
	return p.Contains(items.SpaceJump)
}

func (m normalMetroid) CanHellRun(p *items.Progression) bool {
	return p.Contains(items.Varia) || m.HasEnergyReserves(p, 5)
}

func (m normalMetroid) CanEnterAndLeaveGauntlet(p *items.Progression) bool {
	return p.HasCard(items.CardCrateriaL1) && p.Contains(items.Morph) &&
		(m.CanFly(p) || p.Contains(items.SpeedBooster)) &&
		(m.CanIbj(p) || p.CanUsePowerBombs() && p.Has(items.PowerBomb, 2) || p.Contains(items.ScrewAttack))
}

func (normalMetroid) CanReachWreckedShip(p *items.Progression) bool {
	return p.Contains(items.Super) && p.CanUsePowerBombs() &&
		(p.Contains(items.Grapple) || p.Contains(items.SpaceJump) || p.Contains(items.Gravity) && p.Contains(items.SpeedBooster))
}

func (normalMetroid) CanNavigateMaridia(p *items.Progression) bool {
	return p.Contains(items.Gravity)
}

func (normalMetroid) CanTraverseLowerNorfair(p *items.Progression) bool {
	return p.Contains(items.Varia) && p.Contains(items.Gravity) && (p.Contains(items.SpaceJump) || p.Contains(items.HiJump))
}

func (normalMetroid) CanDefeatBotwoon(p *items.Progression) bool {
	return p.Contains(items.Ice) || p.Contains(items.SpeedBooster) && p.Contains(items.Gravity)
}

func (normalMetroid) CanFightDraygon(p *items.Progression) bool {
	return p.Contains(items.Gravity) && (p.Contains(items.Charge) || p.Contains(items.Super))
}

func (normalMetroid) CanAccessDarkWorldPortal(p *items.Progression) bool {
	return p.HasCard(items.CardMaridiaL1) && p.HasCard(items.CardMaridiaL2) && p.CanUsePowerBombs() &&
		p.Contains(items.Super) && p.Contains(items.Gravity) && p.Contains(items.SpeedBooster)
}

func (normalMetroid) CanAccessMiseryMirePortal(p *items.Progression) bool {
	return (p.HasCard(items.CardNorfairL2) || p.Contains(items.SpeedBooster) && p.Contains(items.Wave)) &&
		p.Contains(items.Varia) && p.Contains(items.Super) && p.Contains(items.Gravity) && p.Contains(items.SpaceJump) &&
		p.CanUsePowerBombs()
}

func (normalMetroid) CanAccessMaridiaPortal(p *items.Progression) bool {
	return p.Contains(items.MoonPearl) && p.Contains(items.Flippers) && p.Contains(items.Gravity) && p.Contains(items.Morph) &&
		(p.Contains(items.Agahnim) || p.Contains(items.Hammer) && p.CanLiftLight() || p.CanLiftHeavy())
}

// hardMetroid allows infinite bomb jumps, tighter energy and suitless water movement.
type hardMetroid struct {
	sharedMetroid
}

func (m hardMetroid) CanFly(p *items.Progression) bool {
	return p.Contains(items.SpaceJump) || m.CanIbj(p)
}

func (m hardMetroid) CanHellRun(p *items.Progression) bool {
	return p.Contains(items.Varia) || m.HasEnergyReserves(p, 3)
}

func (m hardMetroid) CanEnterAndLeaveGauntlet(p *items.Progression) bool {
	return p.HasCard(items.CardCrateriaL1) && p.Contains(items.Morph) && (p.Contains(items.Bombs) || p.Has(items.PowerBomb, 2)) ||
		p.HasCard(items.CardCrateriaL1) && p.Contains(items.ScrewAttack) ||
		p.HasCard(items.CardCrateriaL1) && p.Contains(items.SpeedBooster) && p.CanUsePowerBombs() && m.HasEnergyReserves(p, 2)
}

func (m hardMetroid) CanReachWreckedShip(p *items.Progression) bool {
	return p.Contains(items.Super) && p.CanUsePowerBombs() &&
		(p.Contains(items.Grapple) || p.Contains(items.SpaceJump) || p.Contains(items.Gravity) || m.CanIbj(p) || p.Contains(items.SpeedBooster))
}

func (hardMetroid) CanNavigateMaridia(p *items.Progression) bool {
	return p.Contains(items.Gravity) || p.Contains(items.HiJump) && (p.Contains(items.Ice) || p.CanSpringBallJump())
}

func (m hardMetroid) CanTraverseLowerNorfair(p *items.Progression) bool {
	return (p.Contains(items.Varia) || m.HasEnergyReserves(p, 6)) &&
		(p.Contains(items.Gravity) || p.Contains(items.HiJump) || p.CanSpringBallJump())
}

func (hardMetroid) CanDefeatBotwoon(p *items.Progression) bool {
	return p.Contains(items.Ice) || p.Contains(items.SpeedBooster) || p.Contains(items.Charge)
}

func (hardMetroid) CanFightDraygon(p *items.Progression) bool {
	return (p.Contains(items.Gravity) || p.Contains(items.Grapple)) && (p.Contains(items.Charge) || p.Contains(items.Super))
}

func (hardMetroid) CanAccessDarkWorldPortal(p *items.Progression) bool {
	return p.HasCard(items.CardMaridiaL1) && p.HasCard(items.CardMaridiaL2) && p.CanUsePowerBombs() && p.Contains(items.Super) &&
		(p.Contains(items.Charge) || p.Contains(items.Super) && p.Contains(items.Missile)) &&
		(p.Contains(items.Gravity) || p.Contains(items.HiJump) && p.Contains(items.Ice) && p.Contains(items.Grapple)) &&
		(p.Contains(items.Ice) || p.Contains(items.Gravity) && p.Contains(items.SpeedBooster))
}

func (m hardMetroid) CanAccessMiseryMirePortal(p *items.Progression) bool {
	return (p.HasCard(items.CardNorfairL2) || p.Contains(items.SpeedBooster) && p.Contains(items.Wave)) &&
		p.Contains(items.Varia) && p.Contains(items.Super) &&
		(m.CanFly(p) || p.Contains(items.HiJump) || p.Contains(items.SpeedBooster) || p.CanSpringBallJump() || p.Contains(items.Ice)) &&
		(p.Contains(items.Gravity) || p.Contains(items.HiJump)) &&
		p.CanUsePowerBombs()
}

func (hardMetroid) CanAccessMaridiaPortal(p *items.Progression) bool {
	return p.Contains(items.MoonPearl) && p.Contains(items.Flippers) &&
		(p.CanSpringBallJump() || p.Contains(items.HiJump) || p.Contains(items.Gravity)) && p.Contains(items.Morph) &&
		(p.Contains(items.Agahnim) || p.Contains(items.Hammer) && p.CanLiftLight() || p.CanLiftHeavy())
}

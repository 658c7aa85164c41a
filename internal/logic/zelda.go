package logic

import (
	"github.com/pixil98/go-rando/internal/items"
)

type normalZelda struct{}

func (normalZelda) CanAccessDeathMountain(p *items.Progression) bool {
	return p.Contains(items.Flute) || p.CanLiftLight() && p.Contains(items.Lamp)
}

func (normalZelda) CanClipWithBoots(*items.Progression) bool {
	return false
}

func (normalZelda) CanSwim(p *items.Progression) bool {
	return p.Contains(items.Flippers)
}

func (normalZelda) CanAccessNorfairUpperPortal(p *items.Progression) bool {
	return p.Contains(items.Flute) || p.CanLiftLight() && p.Contains(items.Lamp)
}

func (normalZelda) CanAccessNorfairLowerPortal(p *items.Progression) bool {
	return p.Contains(items.Flute) && p.CanLiftHeavy()
}

// glitchedZelda allows boots clips and fake flippers on top of the normal rules.
type glitchedZelda struct{}

func (glitchedZelda) CanAccessDeathMountain(p *items.Progression) bool {
	return p.Contains(items.Flute) || p.CanLiftLight() && p.Contains(items.Lamp) || p.Contains(items.Boots)
}

func (glitchedZelda) CanClipWithBoots(p *items.Progression) bool {
	return p.Contains(items.Boots)
}

func (glitchedZelda) CanSwim(p *items.Progression) bool {
	return p.Contains(items.Flippers) || p.Contains(items.Boots)
}

func (glitchedZelda) CanAccessNorfairUpperPortal(p *items.Progression) bool {
	return p.Contains(items.Flute) || p.CanLiftLight() && p.Contains(items.Lamp) || p.Contains(items.Boots)
}

func (glitchedZelda) CanAccessNorfairLowerPortal(p *items.Progression) bool {
	return p.Contains(items.Flute) && p.CanLiftHeavy() || p.Contains(items.Boots) && p.Contains(items.MoonPearl) && p.Contains(items.Mirror)
}

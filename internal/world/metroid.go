package world

import (
	"github.com/pixil98/go-rando/internal/items"
)

func (w *World) buildMetroid() {
	l := w.Logic

	crateria := w.region("Crateria", items.GameMetroid, nil)
	crateria.loc("Power Bomb (Crateria surface)", func(s State) bool {
		return s.HasCard(items.CardCrateriaL1) && s.CanUsePowerBombs() &&
			(s.Contains(items.SpeedBooster) || l.CanFly(s.Progression))
	})
	crateria.loc("Missile (outside Wrecked Ship bottom)", func(s State) bool {
		return s.CanOpenRedDoors() && s.CanPassBombPassages()
	})
	crateria.loc("Energy Tank, Terminator", nil).WithWeight(-1)
	crateria.loc("Energy Tank, Gauntlet", func(s State) bool {
		return l.CanEnterAndLeaveGauntlet(s.Progression)
	})
	crateria.loc("Missile (Crateria gauntlet right)", func(s State) bool {
		return l.CanEnterAndLeaveGauntlet(s.Progression) && s.CanPassBombPassages()
	})
	crateria.loc("Missile (Crateria gauntlet left)", func(s State) bool {
		return l.CanEnterAndLeaveGauntlet(s.Progression) && s.CanPassBombPassages()
	})
	crateria.loc("Bombs", func(s State) bool {
		return s.HasCard(items.CardCrateriaBoss) && s.CanOpenRedDoors() && s.CanPassBombPassages()
	})
	crateria.loc("Super Missile (Crateria)", func(s State) bool {
		return s.HasCard(items.CardCrateriaL2) && s.CanUsePowerBombs() && s.Contains(items.SpeedBooster)
	})
	crateria.loc("Missile (Crateria bottom)", func(s State) bool { return s.CanDestroyBombWalls() })

	blue := w.region("Blue Brinstar", items.GameMetroid, nil)
	blue.loc("Morphing Ball", nil).WithWeight(-1)
	blue.loc("Power Bomb (blue Brinstar)", func(s State) bool { return s.CanUsePowerBombs() })
	blue.loc("Missile (blue Brinstar middle)", func(s State) bool {
		return s.HasCard(items.CardBrinstarL1) && s.CanOpenRedDoors() && s.Contains(items.Morph)
	})
	blue.loc("Energy Tank, Brinstar Ceiling", func(s State) bool {
		return s.HasCard(items.CardBrinstarL1) && s.CanOpenRedDoors() &&
			(l.CanFly(s.Progression) || s.Contains(items.HiJump) || s.Contains(items.SpeedBooster) || s.Contains(items.Ice))
	})
	blue.loc("Missile (blue Brinstar bottom)", func(s State) bool { return s.Contains(items.Morph) })
	blue.loc("Missile (blue Brinstar top)", func(s State) bool {
		return s.HasCard(items.CardBrinstarL1) && s.CanUsePowerBombs()
	})
	blue.loc("Missile (blue Brinstar behind missile)", func(s State) bool {
		return s.HasCard(items.CardBrinstarL1) && s.CanUsePowerBombs()
	})

	green := w.region("Green Brinstar", items.GameMetroid, func(s State) bool {
		return s.CanOpenRedDoors() && s.CanDestroyBombWalls() || s.CanUsePowerBombs()
	})
	green.loc("Power Bomb (green Brinstar bottom)", func(s State) bool {
		return s.HasCard(items.CardBrinstarL2) && s.CanUsePowerBombs()
	})
	green.loc("Missile (pink Brinstar top)", nil)
	green.loc("Missile (pink Brinstar bottom)", nil)
	green.loc("Charge Beam", func(s State) bool { return s.CanPassBombPassages() })
	green.loc("Power Bomb (pink Brinstar)", func(s State) bool {
		return s.CanUsePowerBombs() && s.Contains(items.Super)
	})
	green.loc("Missile (green Brinstar below super missile)", func(s State) bool {
		return s.CanPassBombPassages() && s.CanOpenRedDoors()
	})
	green.loc("Super Missile (green Brinstar top)", func(s State) bool {
		return s.CanOpenRedDoors() && (s.Contains(items.Morph) || s.Contains(items.SpeedBooster))
	})
	green.loc("Reserve Tank, Brinstar", func(s State) bool {
		return s.CanOpenRedDoors() && (s.Contains(items.Morph) || s.Contains(items.SpeedBooster))
	})
	green.loc("Energy Tank, Etecoons", func(s State) bool { return s.CanUsePowerBombs() })
	green.loc("Energy Tank, Waterway", func(s State) bool {
		return s.CanUsePowerBombs() && s.CanOpenRedDoors() && s.Contains(items.SpeedBooster) &&
			(l.HasEnergyReserves(s.Progression, 1) || s.Contains(items.Gravity))
	})
	green.loc("Super Missile (green Brinstar bottom)", func(s State) bool {
		return s.CanUsePowerBombs() && s.Contains(items.Super)
	})

	kraid := w.region("Kraid's Lair", items.GameMetroid, func(s State) bool {
		return s.CanPassBombPassages() && s.Contains(items.Super) && s.HasCard(items.CardBrinstarL1)
	})
	kraid.Boss = &Boss{Name: "Kraid"}
	kraid.Reward = &Reward{Type: items.BossKraid, complete: func(s State) bool {
		return s.HasCard(items.CardBrinstarBoss)
	}}
	kraid.loc("Energy Tank, Kraid", func(s State) bool { return s.HasCard(items.CardBrinstarBoss) })
	kraid.loc("Varia Suit", func(s State) bool { return s.HasCard(items.CardBrinstarBoss) })
	kraid.loc("Missile (Kraid)", func(s State) bool { return s.CanUsePowerBombs() })

	red := w.region("Red Brinstar", items.GameMetroid, func(s State) bool {
		return s.Contains(items.Super) && (s.CanUsePowerBombs() ||
			s.CanDestroyBombWalls() && s.HasCard(items.CardBrinstarL2))
	})
	red.loc("X-Ray Scope", func(s State) bool {
		return s.CanUsePowerBombs() && s.CanOpenRedDoors() && (s.Contains(items.Grapple) || s.Contains(items.SpaceJump))
	})
	red.loc("Power Bomb (red Brinstar sidehopper room)", func(s State) bool {
		return s.CanUsePowerBombs() && s.Contains(items.Super)
	})
	red.loc("Power Bomb (red Brinstar spike room)", func(s State) bool { return s.Contains(items.Super) })
	red.loc("Missile (red Brinstar spike room)", func(s State) bool {
		return s.CanUsePowerBombs() && s.Contains(items.Super)
	})
	red.loc("Spazer", func(s State) bool { return s.CanPassBombPassages() && s.Contains(items.Super) })

	w.buildNorfair()
	w.buildWreckedShip()
	w.buildMaridia()

	tourian := w.region("Tourian", items.GameMetroid, func(s State) bool {
		return s.HasBossTokens(w.Config.TourianBosses) && s.HasCard(items.CardCrateriaBoss) &&
			s.CanUsePowerBombs() && s.Contains(items.Super) && s.Contains(items.Varia)
	})
	tourian.Boss = &Boss{Name: "Mother Brain"}

	w.defeatMotherBrain = func(s State) bool {
		return w.enter("Tourian", s) && (s.Contains(items.Charge) || s.Contains(items.Plasma)) &&
			l.HasEnergyReserves(s.Progression, 3)
	}
}

func (w *World) buildNorfair() {
	l := w.Logic

	upper := w.region("Upper Norfair", items.GameMetroid, func(s State) bool {
		return s.CanDestroyBombWalls() && s.Contains(items.Super) && s.Contains(items.Morph) && s.HasCard(items.CardNorfairL1) ||
			l.CanAccessNorfairUpperPortal(s.Progression)
	})
	heated := func(s State) bool {
		return s.Contains(items.Varia) || l.HasEnergyReserves(s.Progression, 3)
	}
	upper.loc("Missile (lava room)", func(s State) bool {
		return l.CanHellRun(s.Progression) && s.Contains(items.Super) && (s.Contains(items.HiJump) || s.Contains(items.Gravity))
	})
	upper.loc("Ice Beam", func(s State) bool {
		return s.Contains(items.Super) && s.Contains(items.Morph) && heated(s)
	})
	upper.loc("Missile (below Ice Beam)", func(s State) bool {
		return s.Contains(items.Super) && s.CanUsePowerBombs() && heated(s)
	})
	upper.loc("Hi-Jump Boots", func(s State) bool {
		return s.CanOpenRedDoors() && s.CanPassBombPassages() && s.HasCard(items.CardNorfairL1)
	})
	upper.loc("Missile (Hi-Jump Boots)", func(s State) bool {
		return s.CanOpenRedDoors() && s.CanPassBombPassages() && s.HasCard(items.CardNorfairL1)
	})
	upper.loc("Energy Tank (Hi-Jump Boots)", func(s State) bool {
		return s.CanOpenRedDoors() && s.HasCard(items.CardNorfairL1)
	})
	upper.loc("Missile (bubble Norfair)", func(s State) bool { return l.CanHellRun(s.Progression) })
	upper.loc("Missile (Speed Booster)", func(s State) bool {
		return l.CanHellRun(s.Progression) && s.HasCard(items.CardNorfairL2)
	})
	upper.loc("Speed Booster", func(s State) bool {
		return l.CanHellRun(s.Progression) && s.HasCard(items.CardNorfairL2)
	})
	upper.loc("Wave Beam", func(s State) bool {
		return l.CanHellRun(s.Progression) && s.CanOpenRedDoors() && s.HasCard(items.CardNorfairL2) &&
			(s.Contains(items.Morph) || s.Contains(items.Grapple) || s.Contains(items.SpaceJump))
	})
	upper.loc("Energy Tank, Crocomire", func(s State) bool {
		return l.CanHellRun(s.Progression) && s.HasCard(items.CardNorfairBoss) && s.Contains(items.Super)
	})

	lower := w.region("Lower Norfair", items.GameMetroid, func(s State) bool {
		return s.Contains(items.Varia) && (w.enter("Upper Norfair", s) && s.CanUsePowerBombs() &&
			l.CanTraverseLowerNorfair(s.Progression) && s.HasCard(items.CardLowerNorfairL1) ||
			l.CanAccessNorfairLowerPortal(s.Progression) && s.CanDestroyBombWalls())
	})
	defeatRidley := func(s State) bool {
		return s.HasCard(items.CardLowerNorfairBoss) && s.CanUsePowerBombs() && s.Contains(items.Super) &&
			(s.Contains(items.Charge) || s.Contains(items.Plasma)) && l.HasEnergyReserves(s.Progression, 3)
	}
	lower.Boss = &Boss{Name: "Ridley"}
	lower.Reward = &Reward{Type: items.BossRidley, complete: defeatRidley}
	lower.loc("Missile (Gold Torizo)", func(s State) bool {
		return s.CanUsePowerBombs() && s.Contains(items.SpaceJump) && s.Contains(items.Super)
	})
	lower.loc("Super Missile (Gold Torizo)", func(s State) bool { return s.CanDestroyBombWalls() })
	lower.loc("Screw Attack", func(s State) bool {
		return s.CanDestroyBombWalls() && (l.CanFly(s.Progression) || s.Contains(items.SpeedBooster))
	})
	lower.loc("Missile (Mickey Mouse room)", func(s State) bool {
		return s.Contains(items.Morph) && s.CanDestroyBombWalls()
	})
	lower.loc("Energy Tank, Firefleas", func(s State) bool { return s.CanUsePowerBombs() })
	lower.loc("Energy Tank, Ridley", defeatRidley)
}

func (w *World) buildWreckedShip() {
	l := w.Logic

	ws := w.region("Wrecked Ship", items.GameMetroid, func(s State) bool {
		return l.CanReachWreckedShip(s.Progression)
	})
	defeatPhantoon := func(s State) bool {
		return s.HasCard(items.CardWreckedShipBoss) && s.CanPassBombPassages() &&
			(s.Contains(items.Charge) || s.Contains(items.Super))
	}
	ws.Boss = &Boss{Name: "Phantoon"}
	ws.Reward = &Reward{Type: items.BossPhantoon, complete: defeatPhantoon}

	ws.loc("Missile (Wrecked Ship middle)", func(s State) bool { return s.CanPassBombPassages() })
	ws.loc("Reserve Tank, Wrecked Ship", func(s State) bool {
		return defeatPhantoon(s) && s.Contains(items.SpeedBooster) &&
			(s.Contains(items.Varia) || l.HasEnergyReserves(s.Progression, 2))
	})
	ws.loc("Missile (Gravity Suit)", defeatPhantoon)
	ws.loc("Missile (Wrecked Ship top)", defeatPhantoon)
	ws.loc("Energy Tank, Wrecked Ship", func(s State) bool {
		return defeatPhantoon(s) && (s.Contains(items.HiJump) || s.Contains(items.SpaceJump) ||
			s.Contains(items.SpeedBooster) || s.Contains(items.Gravity))
	})
	ws.loc("Super Missile (Wrecked Ship left)", defeatPhantoon)
	ws.loc("Right Super, Wrecked Ship", defeatPhantoon)
	ws.loc("Gravity Suit", func(s State) bool {
		return defeatPhantoon(s) && (s.Contains(items.Varia) || l.HasEnergyReserves(s.Progression, 1))
	})
}

func (w *World) buildMaridia() {
	l := w.Logic

	maridia := w.region("Maridia", items.GameMetroid, func(s State) bool {
		return l.CanNavigateMaridia(s.Progression) && s.Contains(items.Super) && s.CanUsePowerBombs() ||
			l.CanAccessMaridiaPortal(s.Progression)
	})
	defeatDraygon := func(s State) bool {
		return s.HasCard(items.CardMaridiaBoss) && l.CanDefeatBotwoon(s.Progression) && l.CanFightDraygon(s.Progression)
	}
	maridia.Boss = &Boss{Name: "Draygon"}
	maridia.Reward = &Reward{Type: items.BossDraygon, complete: defeatDraygon}

	maridia.loc("Missile (green Maridia shinespark)", func(s State) bool {
		return s.Contains(items.SpeedBooster) && s.Contains(items.Gravity)
	})
	maridia.loc("Super Missile (green Maridia)", nil)
	maridia.loc("Energy Tank, Mama turtle", func(s State) bool {
		return s.CanOpenRedDoors() && (l.CanFly(s.Progression) || s.Contains(items.SpeedBooster) || s.Contains(items.Grapple))
	})
	maridia.loc("Missile (green Maridia tatori)", func(s State) bool { return s.CanOpenRedDoors() })
	yellow := func(s State) bool {
		return s.CanPassBombPassages() && s.HasCard(items.CardMaridiaL1)
	}
	maridia.loc("Super Missile (yellow Maridia)", yellow)
	maridia.loc("Missile (yellow Maridia super missile)", yellow)
	maridia.loc("Missile (yellow Maridia false wall)", yellow)
	maridia.loc("Plasma Beam", func(s State) bool {
		return defeatDraygon(s) && (s.Contains(items.ScrewAttack) || s.Contains(items.Charge)) &&
			(s.Contains(items.HiJump) || l.CanFly(s.Progression) || s.Contains(items.SpeedBooster))
	})
	maridia.loc("Missile (left Maridia sand pit room)", func(s State) bool { return s.CanOpenRedDoors() })
	maridia.loc("Reserve Tank, Maridia", func(s State) bool { return s.CanOpenRedDoors() })
	maridia.loc("Spring Ball", func(s State) bool {
		return s.Contains(items.Super) && s.Contains(items.Grapple) && s.CanUsePowerBombs() &&
			(s.Contains(items.SpaceJump) || s.Contains(items.HiJump))
	})
	maridia.loc("Space Jump", defeatDraygon)
}

package world

import (
	"github.com/pixil98/go-rando/internal/items"
)

func (w *World) buildZelda() {
	w.buildLightWorld()
	w.buildHyruleCastle()
	w.buildDeathMountain()
	w.buildDarkWorld()
	w.buildZeldaDungeons()

	w.defeatGanon = func(s State) bool {
		return w.enter("Ganon's Tower", s) && w.enter("Dark World North East", s) &&
			s.Contains(items.BigKeyGT) && s.Has(items.KeyGT, 2) && s.Contains(items.Hookshot) &&
			s.Sword() >= 2 && s.CanShootArrows() && s.Contains(items.SilverArrows) && s.CanLightTorches() &&
			s.HasCrystals(w.Config.GanonCrystals)
	}
}

func (w *World) buildLightWorld() {
	l := w.Logic

	nw := w.region("Light World North West", items.GameZelda, nil)
	nw.loc("Master Sword Pedestal", func(s State) bool { return s.HasAllPendants() })
	nw.loc("Mushroom", nil)
	nw.loc("Lost Woods Hideout", nil)
	nw.loc("Lumberjack Tree", func(s State) bool { return s.HasReward(items.Agahnim) && s.Contains(items.Boots) })
	nw.loc("Pegasus Rocks", func(s State) bool { return s.Contains(items.Boots) })
	nw.loc("Graveyard Ledge", func(s State) bool {
		return s.Contains(items.Mirror) && s.Contains(items.MoonPearl) && w.enter("Dark World North West", s)
	})
	nw.loc("King's Tomb", func(s State) bool {
		return s.Contains(items.Boots) && (s.CanLiftHeavy() ||
			s.Contains(items.Mirror) && s.Contains(items.MoonPearl) && w.enter("Dark World North West", s))
	})
	nw.loc("Kakariko Well - Top", nil)
	nw.loc("Kakariko Well - Left", nil)
	nw.loc("Kakariko Well - Middle", nil)
	nw.loc("Kakariko Well - Right", nil)
	nw.loc("Kakariko Well - Bottom", nil)
	nw.loc("Blind's Hideout - Top", nil)
	nw.loc("Blind's Hideout - Left", nil)
	nw.loc("Blind's Hideout - Right", nil)

	ne := w.region("Light World North East", items.GameZelda, nil)
	ne.loc("King Zora", func(s State) bool { return s.CanLiftLight() || l.CanSwim(s.Progression) })
	ne.loc("Zora's Ledge", func(s State) bool { return s.Contains(items.Flippers) })
	ne.loc("Waterfall Fairy - Left", func(s State) bool { return l.CanSwim(s.Progression) })
	ne.loc("Waterfall Fairy - Right", func(s State) bool { return l.CanSwim(s.Progression) })
	ne.loc("Potion Shop", func(s State) bool { return s.Contains(items.Mushroom) })
	ne.loc("Sahasrahla's Hut - Left", nil)
	ne.loc("Sahasrahla's Hut - Middle", nil)
	ne.loc("Sahasrahla's Hut - Right", nil)
	ne.loc("Sahasrahla", func(s State) bool { return s.HasReward(items.PendantGreen) })

	south := w.region("Light World South", items.GameZelda, nil)
	south.loc("Maze Race", nil).WithWeight(-1)
	south.loc("Library", func(s State) bool { return s.Contains(items.Boots) })
	south.loc("Flute Spot", func(s State) bool { return s.Contains(items.Shovel) })
	south.loc("South of Grove", func(s State) bool {
		return s.Contains(items.Mirror) && w.enter("Dark World South", s)
	})
	south.loc("Link's House", nil).WithWeight(-1)
	south.loc("Aginah's Cave", nil)
	south.loc("Mini Moldorm Cave - Far Left", nil)
	south.loc("Mini Moldorm Cave - Left", nil)
	south.loc("Mini Moldorm Cave - NPC", nil)
	south.loc("Mini Moldorm Cave - Right", nil)
	south.loc("Mini Moldorm Cave - Far Right", nil)
	south.loc("Ice Rod Cave", nil)
	south.loc("Hobo", func(s State) bool { return l.CanSwim(s.Progression) })
	south.loc("Bombos Tablet", func(s State) bool {
		return s.Contains(items.Book) && s.Contains(items.Mirror) && s.Sword() >= 2 && w.enter("Dark World South", s)
	})
	south.loc("Cave 45", func(s State) bool {
		return s.Contains(items.Mirror) && w.enter("Dark World South", s)
	})
	south.loc("Checkerboard Cave", func(s State) bool {
		return s.Contains(items.Mirror) && s.Contains(items.Flute) && s.CanLiftHeavy()
	})
	south.loc("Sick Kid", func(s State) bool { return s.Contains(items.Bottle) })
	south.loc("Magic Bat", func(s State) bool {
		return s.Contains(items.Powder) && (s.Contains(items.Hammer) ||
			s.Contains(items.MoonPearl) && s.Contains(items.Mirror) && s.CanLiftHeavy())
	})
}

func (w *World) buildHyruleCastle() {
	hc := w.region("Hyrule Castle", items.GameZelda, nil)
	hc.Treasure = &Treasure{Key: items.KeyHC, Keys: 1, Map: items.MapHC}

	hc.loc("Sanctuary", nil)
	hc.loc("Hyrule Castle - Map Chest", nil)
	hc.loc("Hyrule Castle - Boomerang Chest", func(s State) bool { return s.Contains(items.KeyHC) })
	hc.loc("Hyrule Castle - Zelda's Cell", func(s State) bool { return s.Contains(items.KeyHC) })
	hc.loc("Link's Uncle", nil).WithWeight(-1)
	hc.loc("Secret Passage", nil)
	hc.loc("Sewers - Dark Cross", func(s State) bool { return s.Contains(items.Lamp) })
	secret := func(s State) bool {
		return s.CanLiftLight() || s.Contains(items.Lamp) && s.Contains(items.KeyHC)
	}
	hc.loc("Sewers - Secret Room - Left", secret)
	hc.loc("Sewers - Secret Room - Middle", secret)
	hc.loc("Sewers - Secret Room - Right", secret)

	ct := w.region("Castle Tower", items.GameZelda, func(s State) bool {
		return s.CanKillManyEnemies() && (s.Contains(items.Cape) || s.Sword() >= 2)
	})
	ct.Treasure = &Treasure{Key: items.KeyCT, Keys: 2}
	ct.Boss = &Boss{Name: "Agahnim"}
	ct.Reward = &Reward{Type: items.Agahnim, complete: func(s State) bool {
		return s.Contains(items.Lamp) && s.Has(items.KeyCT, 2) && s.CanDefeatAgahnim()
	}}

	ct.loc("Castle Tower - Foyer", nil)
	ct.loc("Castle Tower - Dark Maze", func(s State) bool { return s.Contains(items.Lamp) && s.Has(items.KeyCT, 1) })
}

func (w *World) buildDeathMountain() {
	l := w.Logic

	west := w.region("Death Mountain West", items.GameZelda, func(s State) bool {
		return l.CanAccessDeathMountain(s.Progression)
	})
	west.loc("Ether Tablet", func(s State) bool {
		return s.Contains(items.Book) && s.Contains(items.Mirror) && s.Sword() >= 2
	})
	west.loc("Spectacle Rock", func(s State) bool { return s.Contains(items.Mirror) })
	west.loc("Spectacle Rock Cave", nil)
	west.loc("Old Man", func(s State) bool { return s.Contains(items.Lamp) })

	east := w.region("Death Mountain East", items.GameZelda, func(s State) bool {
		return w.enter("Death Mountain West", s) &&
			(s.Contains(items.Hookshot) || s.Contains(items.Mirror) && s.Contains(items.Hammer))
	})
	east.loc("Spiral Cave", nil)
	east.loc("Mimic Cave", func(s State) bool {
		return s.Contains(items.Mirror) && s.Has(items.KeyTR, 2) && w.enter("Turtle Rock", s)
	})
	east.loc("Paradox Cave Upper - Left", nil)
	east.loc("Paradox Cave Upper - Right", nil)
	east.loc("Paradox Cave Lower - Far Left", nil)
	east.loc("Paradox Cave Lower - Left", nil)
	east.loc("Paradox Cave Lower - Middle", nil)
	east.loc("Paradox Cave Lower - Right", nil)
	east.loc("Paradox Cave Lower - Far Right", nil)
	east.loc("Floating Island", func(s State) bool {
		return s.Contains(items.Mirror) && s.Contains(items.MoonPearl) && s.CanLiftHeavy()
	})
}

func (w *World) buildDarkWorld() {
	l := w.Logic

	ne := w.region("Dark World North East", items.GameZelda, func(s State) bool {
		return s.HasReward(items.Agahnim) ||
			s.Contains(items.MoonPearl) && (s.Contains(items.Hammer) && s.CanLiftLight() || s.CanLiftHeavy()) ||
			l.CanAccessDarkWorldPortal(s.Progression) && s.Contains(items.Flippers)
	})
	ne.loc("Catfish", func(s State) bool { return s.Contains(items.MoonPearl) && s.CanLiftLight() })
	ne.loc("Pyramid", nil)
	fairy := func(s State) bool {
		return s.Contains(items.MoonPearl) && s.Sword() >= 2 && s.HasRewards(items.CrystalRed, 2)
	}
	ne.loc("Pyramid Fairy - Left", fairy)
	ne.loc("Pyramid Fairy - Right", fairy)

	nw := w.region("Dark World North West", items.GameZelda, func(s State) bool {
		return s.Contains(items.MoonPearl) && (s.HasReward(items.Agahnim) && s.Contains(items.Hookshot) &&
			(s.Contains(items.Flippers) || s.CanLiftLight() || s.Contains(items.Hammer)) ||
			s.Contains(items.Hammer) && s.CanLiftLight() || s.CanLiftHeavy())
	})
	nw.loc("Brewery", nil)
	nw.loc("C-Shaped House", nil)
	nw.loc("Chest Game", nil)
	nw.loc("Hammer Pegs", func(s State) bool { return s.CanLiftHeavy() && s.Contains(items.Hammer) })
	nw.loc("Bumper Cave", func(s State) bool { return s.CanLiftLight() && s.Contains(items.Cape) })
	nw.loc("Blacksmith", func(s State) bool { return s.CanLiftHeavy() })
	nw.loc("Purple Chest", func(s State) bool { return s.CanLiftHeavy() })

	south := w.region("Dark World South", items.GameZelda, func(s State) bool {
		return s.Contains(items.MoonPearl) && (s.HasReward(items.Agahnim) && s.Contains(items.Hammer) ||
			s.Contains(items.Hammer) && s.CanLiftLight() || s.CanLiftHeavy() ||
			l.CanAccessDarkWorldPortal(s.Progression))
	})
	south.loc("Digging Game", nil)
	south.loc("Stumpy", nil)
	south.loc("Hype Cave - Top", nil)
	south.loc("Hype Cave - Middle Right", nil)
	south.loc("Hype Cave - Middle Left", nil)
	south.loc("Hype Cave - Bottom", nil)
	south.loc("Hype Cave - NPC", nil)
}

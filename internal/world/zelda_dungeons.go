package world

import (
	"github.com/pixil98/go-rando/internal/items"
)

var medallions = []items.ItemType{items.Bombos, items.Ether, items.Quake}

// dungeon declares a reward dungeon whose boss location and completion
// share the same predicate.
func (w *World) dungeon(name, boss string, entry Access, treasure *Treasure) *Region {
	r := w.region(name, items.GameZelda, entry)
	r.Treasure = treasure
	r.Boss = &Boss{Name: boss}
	r.Reward = &Reward{Shuffled: true}
	return r
}

// bossLoc adds the boss drop and makes the same predicate complete the region.
func (r *Region) bossLoc(name string, defeat Access) *Location {
	r.Reward.complete = defeat
	return r.loc(name, defeat)
}

func notOwnBigKey(r *Region) ItemFilter {
	return func(item *items.Item, s State) bool {
		return !item.Is(r.Treasure.BigKey, r.World.Id)
	}
}

func (w *World) buildZeldaDungeons() {
	l := w.Logic

	ep := w.dungeon("Eastern Palace", "Armos Knights", nil,
		&Treasure{BigKey: items.BigKeyEP, Map: items.MapEP, Compass: items.CompassEP})
	ep.loc("Eastern Palace - Cannonball Chest", nil)
	ep.loc("Eastern Palace - Map Chest", nil)
	ep.loc("Eastern Palace - Compass Chest", nil)
	ep.loc("Eastern Palace - Big Chest", func(s State) bool { return s.Contains(items.BigKeyEP) }).
		Allow(notOwnBigKey(ep))
	ep.loc("Eastern Palace - Big Key Chest", func(s State) bool { return s.Contains(items.Lamp) })
	ep.bossLoc("Eastern Palace - Armos Knights", func(s State) bool {
		return s.Contains(items.BigKeyEP) && s.CanShootArrows() && s.Contains(items.Lamp)
	})

	dp := w.dungeon("Desert Palace", "Lanmolas", func(s State) bool {
		return s.Contains(items.Book) || s.Contains(items.Mirror) && s.CanLiftHeavy() && s.Contains(items.Flute)
	}, &Treasure{Key: items.KeyDP, Keys: 1, BigKey: items.BigKeyDP, Map: items.MapDP, Compass: items.CompassDP})
	dp.loc("Desert Palace - Map Chest", nil)
	dp.loc("Desert Palace - Torch", func(s State) bool { return s.Contains(items.Boots) })
	dp.loc("Desert Palace - Compass Chest", func(s State) bool { return s.Contains(items.KeyDP) })
	dp.loc("Desert Palace - Big Key Chest", func(s State) bool { return s.Contains(items.KeyDP) })
	dp.loc("Desert Palace - Big Chest", func(s State) bool { return s.Contains(items.BigKeyDP) }).
		Allow(notOwnBigKey(dp))
	dp.bossLoc("Desert Palace - Lanmolas", func(s State) bool {
		return s.Contains(items.KeyDP) && s.Contains(items.BigKeyDP) && s.CanLiftLight() && s.CanLightTorches() &&
			(s.Sword() >= 1 || s.Contains(items.Hammer) || s.CanShootArrows() || s.Contains(items.Firerod) ||
				s.Contains(items.Icerod) || s.Contains(items.Somaria))
	})

	th := w.dungeon("Tower of Hera", "Moldorm", func(s State) bool {
		return l.CanAccessDeathMountain(s.Progression) &&
			(s.Contains(items.Mirror) || s.Contains(items.Hookshot) && s.Contains(items.Hammer))
	}, &Treasure{Key: items.KeyTH, Keys: 1, BigKey: items.BigKeyTH, Map: items.MapTH, Compass: items.CompassTH})
	th.loc("Tower of Hera - Basement Cage", nil)
	th.loc("Tower of Hera - Map Chest", nil)
	th.loc("Tower of Hera - Big Key Chest", func(s State) bool {
		return s.Contains(items.KeyTH) && s.CanLightTorches()
	})
	th.loc("Tower of Hera - Compass Chest", func(s State) bool { return s.Contains(items.BigKeyTH) })
	th.loc("Tower of Hera - Big Chest", func(s State) bool { return s.Contains(items.BigKeyTH) }).
		Allow(notOwnBigKey(th))
	th.bossLoc("Tower of Hera - Moldorm", func(s State) bool {
		return s.Contains(items.BigKeyTH) && (s.Sword() >= 1 || s.Contains(items.Hammer))
	})

	pd := w.dungeon("Palace of Darkness", "Helmasaur King", func(s State) bool {
		return s.Contains(items.MoonPearl) && w.enter("Dark World North East", s)
	}, &Treasure{Key: items.KeyPD, Keys: 3, BigKey: items.BigKeyPD, Map: items.MapPD, Compass: items.CompassPD})
	shooter := pd.loc("Palace of Darkness - Shooter Room", nil)
	shooter.AlwaysAllow(func(item *items.Item, s State) bool { return item.Is(items.KeyPD, w.Id) })
	pd.loc("Palace of Darkness - Bonk Pit", func(s State) bool { return s.Has(items.KeyPD, 1) })
	pd.loc("Palace of Darkness - Stalfos Basement", func(s State) bool { return s.Has(items.KeyPD, 1) })
	pd.loc("Palace of Darkness - Map Chest", func(s State) bool { return s.CanShootArrows() })
	var pdBigKeyChest *Location
	pdBigKeyChest = pd.loc("Palace of Darkness - Big Key Chest", func(s State) bool {
		if s.ItemIs(pdBigKeyChest, items.KeyPD) {
			return s.Has(items.KeyPD, 1)
		}
		return s.Has(items.KeyPD, 2)
	})
	pd.loc("Palace of Darkness - Dark Maze", func(s State) bool {
		return s.Contains(items.Lamp) && s.Has(items.KeyPD, 2)
	}).InRoom("Dark Maze")
	pd.loc("Palace of Darkness - Big Chest", func(s State) bool {
		return s.Contains(items.Lamp) && s.Has(items.KeyPD, 2) && s.Contains(items.BigKeyPD)
	}).Allow(notOwnBigKey(pd)).InRoom("Dark Maze")
	pd.bossLoc("Palace of Darkness - Helmasaur King", func(s State) bool {
		return s.Contains(items.Lamp) && s.Contains(items.Hammer) && s.CanShootArrows() &&
			s.Contains(items.BigKeyPD) && s.Has(items.KeyPD, 3)
	})

	ip := w.dungeon("Ice Palace", "Kholdstare", func(s State) bool {
		return s.Contains(items.MoonPearl) && s.Contains(items.Flippers) && s.CanLiftHeavy() && s.CanMeltFreezors()
	}, &Treasure{Key: items.KeyIP, Keys: 2, BigKey: items.BigKeyIP, Map: items.MapIP, Compass: items.CompassIP})
	ip.loc("Ice Palace - Compass Chest", nil)
	ip.loc("Ice Palace - Spike Room", func(s State) bool { return s.Has(items.KeyIP, 1) })
	ip.loc("Ice Palace - Map Chest", func(s State) bool {
		return s.Contains(items.Hammer) && s.CanLiftLight() && s.Has(items.KeyIP, 1)
	})
	ip.loc("Ice Palace - Big Key Chest", func(s State) bool {
		return s.Contains(items.Hammer) && s.CanLiftLight() && s.Has(items.KeyIP, 1)
	})
	ip.loc("Ice Palace - Big Chest", func(s State) bool { return s.Contains(items.BigKeyIP) }).
		Allow(notOwnBigKey(ip))
	ip.bossLoc("Ice Palace - Kholdstare", func(s State) bool {
		return s.Contains(items.BigKeyIP) && s.Contains(items.Hammer) && s.CanLiftLight() && s.Has(items.KeyIP, 2)
	})

	mm := w.dungeon("Misery Mire", "Vitreous", func(s State) bool {
		return s.Contains(items.MoonPearl) && (s.Contains(items.Boots) || s.Contains(items.Hookshot)) && s.Sword() >= 1 &&
			(s.Contains(items.Flute) && s.CanLiftHeavy() || l.CanAccessMiseryMirePortal(s.Progression))
	}, &Treasure{Key: items.KeyMM, Keys: 2, BigKey: items.BigKeyMM, Map: items.MapMM, Compass: items.CompassMM})
	mm.Prerequisite = &Prerequisite{Choices: medallions}
	mm.loc("Misery Mire - Bridge Chest", nil)
	mm.loc("Misery Mire - Spike Chest", nil)
	mm.loc("Misery Mire - Main Lobby", func(s State) bool { return s.Has(items.KeyMM, 1) })
	mm.loc("Misery Mire - Map Chest", func(s State) bool { return s.Has(items.KeyMM, 1) })
	mm.loc("Misery Mire - Compass Chest", func(s State) bool {
		return s.CanLightTorches() && s.Has(items.KeyMM, 2)
	})
	mm.loc("Misery Mire - Big Key Chest", func(s State) bool {
		return s.CanLightTorches() && s.Has(items.KeyMM, 2)
	})
	mm.loc("Misery Mire - Big Chest", func(s State) bool { return s.Contains(items.BigKeyMM) }).
		Allow(notOwnBigKey(mm))
	mm.bossLoc("Misery Mire - Vitreous", func(s State) bool {
		return s.Contains(items.BigKeyMM) && s.Contains(items.Somaria) && s.Contains(items.Lamp)
	})

	tr := w.dungeon("Turtle Rock", "Trinexx", func(s State) bool {
		return l.CanAccessDeathMountain(s.Progression) && s.CanLiftHeavy() && s.Contains(items.Hammer) &&
			s.Contains(items.MoonPearl) && (s.Contains(items.Hookshot) || s.Contains(items.Mirror)) &&
			s.Contains(items.Somaria) && s.Sword() >= 1
	}, &Treasure{Key: items.KeyTR, Keys: 2, BigKey: items.BigKeyTR, Map: items.MapTR, Compass: items.CompassTR})
	tr.Prerequisite = &Prerequisite{Choices: medallions}
	tr.loc("Turtle Rock - Compass Chest", nil)
	tr.loc("Turtle Rock - Roller Room - Left", func(s State) bool { return s.Contains(items.Firerod) })
	tr.loc("Turtle Rock - Roller Room - Right", func(s State) bool { return s.Contains(items.Firerod) })
	tr.loc("Turtle Rock - Chain Chomps", func(s State) bool { return s.Has(items.KeyTR, 1) })
	var trBigKeyChest *Location
	trBigKeyChest = tr.loc("Turtle Rock - Big Key Chest", func(s State) bool {
		if s.ItemIs(trBigKeyChest, items.KeyTR) {
			return s.Has(items.KeyTR, 1)
		}
		return s.Has(items.KeyTR, 2)
	})
	tr.loc("Turtle Rock - Big Chest", func(s State) bool {
		return s.Contains(items.BigKeyTR) && s.Has(items.KeyTR, 2)
	}).Allow(notOwnBigKey(tr))
	tr.loc("Turtle Rock - Crystaroller Room", func(s State) bool {
		return s.Contains(items.BigKeyTR) && s.Has(items.KeyTR, 2)
	})
	tr.bossLoc("Turtle Rock - Trinexx", func(s State) bool {
		return s.Contains(items.BigKeyTR) && s.Has(items.KeyTR, 2) && s.Contains(items.Lamp) &&
			s.Contains(items.Firerod) && s.Contains(items.Icerod)
	})

	gt := w.region("Ganon's Tower", items.GameZelda, func(s State) bool {
		return s.Contains(items.MoonPearl) && l.CanAccessDeathMountain(s.Progression) &&
			(s.Contains(items.Hookshot) && s.Contains(items.Hammer) || s.Contains(items.Mirror)) &&
			s.HasCrystals(w.Config.TowerCrystals)
	})
	gt.Treasure = &Treasure{Key: items.KeyGT, Keys: 2, BigKey: items.BigKeyGT, Map: items.MapGT, Compass: items.CompassGT}
	gt.Boss = &Boss{Name: "Ganon"}
	gt.loc("Ganon's Tower - Bob's Torch", func(s State) bool { return s.Contains(items.Boots) })
	gt.loc("Ganon's Tower - DMs Room - Top Left", func(s State) bool {
		return s.Contains(items.Hammer) && s.Contains(items.Hookshot)
	})
	gt.loc("Ganon's Tower - DMs Room - Top Right", func(s State) bool {
		return s.Contains(items.Hammer) && s.Contains(items.Hookshot)
	})
	gt.loc("Ganon's Tower - Map Chest", func(s State) bool {
		return s.Contains(items.Hammer) && (s.Contains(items.Hookshot) || s.Contains(items.Boots)) && s.Has(items.KeyGT, 1)
	})
	gt.loc("Ganon's Tower - Firesnake Room", func(s State) bool {
		return s.Contains(items.Hammer) && s.Contains(items.Hookshot) && s.Has(items.KeyGT, 1)
	})
	var gtBigKeyChest *Location
	gtBigKeyChest = gt.loc("Ganon's Tower - Big Key Chest", func(s State) bool {
		if s.ItemIs(gtBigKeyChest, items.KeyGT) {
			return s.Has(items.KeyGT, 1)
		}
		return s.Has(items.KeyGT, 2)
	})
	gt.loc("Ganon's Tower - Big Chest", func(s State) bool {
		return s.Contains(items.BigKeyGT) && s.Has(items.KeyGT, 2)
	}).Allow(notOwnBigKey(gt))
	gt.loc("Ganon's Tower - Moldorm Chest", func(s State) bool {
		return s.Contains(items.BigKeyGT) && s.Has(items.KeyGT, 2) && s.Contains(items.Hookshot) && s.Sword() >= 1 &&
			s.CanShootArrows() && s.CanLightTorches()
	})
}

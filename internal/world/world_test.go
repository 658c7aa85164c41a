package world

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-rando/internal/items"
	"github.com/pixil98/go-testutil"
)

func newWorld(t *testing.T, cfg *config.Config) *World {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	return New(cfg, 0, "Player")
}

func TestNew_Locations(t *testing.T) {
	w := newWorld(t, nil)

	testutil.AssertEqual(t, "location count", len(w.Locations), items.Pools(w.Config, 0).Len())

	names := map[string]bool{}
	for i, loc := range w.Locations {
		testutil.AssertEqual(t, "id", loc.Id, i)
		if names[loc.Name] {
			t.Errorf("duplicate location name %q", loc.Name)
		}
		names[loc.Name] = true

		found, ok := w.Location(loc.Name)
		testutil.AssertEqual(t, "lookup "+loc.Name, ok && found == loc, true)
	}
}

func TestNew_DungeonItemsMatchPool(t *testing.T) {
	w := newWorld(t, nil)
	testutil.AssertEqual(t, "dungeon items", w.DungeonItems(), items.DungeonPool())
}

func TestSetup(t *testing.T) {
	w := newWorld(t, nil)
	w.Setup(rand.New(rand.NewSource(7)))

	var shuffled []items.ItemType
	for _, r := range w.Regions {
		if r.Reward == nil {
			continue
		}
		if r.Reward.Type == items.Nothing {
			t.Errorf("region %s has no reward after setup", r.Name)
		}
		if r.Reward.Shuffled {
			shuffled = append(shuffled, r.Reward.Type)
		}
	}
	slices.Sort(shuffled)
	exp := items.RewardPool()
	slices.Sort(exp)
	testutil.AssertEqual(t, "shuffled rewards", shuffled, exp)

	for name, m := range w.Medallions() {
		if !slices.Contains(medallions, m) {
			t.Errorf("%s requires %s, not a medallion", name, m)
		}
	}
	testutil.AssertEqual(t, "medallion regions", len(w.Medallions()), 2)
}

func TestSetup_Deterministic(t *testing.T) {
	a := newWorld(t, nil)
	b := newWorld(t, nil)
	a.Setup(rand.New(rand.NewSource(99)))
	b.Setup(rand.New(rand.NewSource(99)))

	testutil.AssertEqual(t, "rewards", a.Rewards(), b.Rewards())
	testutil.AssertEqual(t, "medallions", a.Medallions(), b.Medallions())
}

func TestLocation_IsAvailable(t *testing.T) {
	tests := map[string]struct {
		location string
		owned    []items.ItemType
		exp      bool
	}{
		"free location": {
			location: "Link's House",
			exp:      true,
		},
		"ledge without flippers": {
			location: "Zora's Ledge",
			exp:      false,
		},
		"ledge with flippers": {
			location: "Zora's Ledge",
			owned:    []items.ItemType{items.Flippers},
			exp:      true,
		},
		"region entry gates location": {
			location: "Spectacle Rock Cave",
			owned:    []items.ItemType{items.Lamp},
			exp:      false,
		},
		"region entry satisfied": {
			location: "Spectacle Rock Cave",
			owned:    []items.ItemType{items.Flute},
			exp:      true,
		},
		"reward requirement": {
			location: "Sahasrahla",
			exp:      false,
		},
		"reward owned": {
			location: "Sahasrahla",
			owned:    []items.ItemType{items.PendantGreen},
			exp:      true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newWorld(t, nil)
			loc, ok := w.Location(tt.location)
			if !ok {
				t.Fatalf("no location %q", tt.location)
			}
			p := items.NewProgression(w.Config, tt.owned...)

			testutil.AssertEqual(t, "available", loc.IsAvailable(p), tt.exp)
			testutil.AssertEqual(t, "available again", loc.IsAvailable(p), tt.exp)
		})
	}
}

func TestLocation_CanFill(t *testing.T) {
	everything := append(items.Types(items.Pools(config.Default(), 0).Progression), items.RewardPool()...)
	everything = append(everything, items.Agahnim)

	tests := map[string]struct {
		keysanity config.Keysanity
		location  string
		item      *items.Item
		exp       bool
	}{
		"big chest refuses its own big key": {
			location: "Eastern Palace - Big Chest",
			item:     &items.Item{Type: items.BigKeyEP},
			exp:      false,
		},
		"big chest needs its big key": {
			location: "Eastern Palace - Big Chest",
			item:     &items.Item{Type: items.Hookshot},
			exp:      false,
		},
		"dungeon item stays home": {
			location: "Link's House",
			item:     &items.Item{Type: items.MapPD},
			exp:      false,
		},
		"dungeon item in its dungeon": {
			location: "Palace of Darkness - Map Chest",
			item:     &items.Item{Type: items.MapPD},
			exp:      true,
		},
		"dungeon item in another dungeon": {
			location: "Ice Palace - Compass Chest",
			item:     &items.Item{Type: items.MapPD},
			exp:      false,
		},
		"dungeon item of another world": {
			location: "Palace of Darkness - Stalfos Basement",
			item:     &items.Item{Type: items.MapPD, World: 1},
			exp:      false,
		},
		"keysanity frees dungeon items": {
			keysanity: config.KeysanityZ3,
			location:  "Link's House",
			item:      &items.Item{Type: items.MapPD},
			exp:       true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			if tt.keysanity != "" {
				cfg.Keysanity = tt.keysanity
			}
			w := newWorld(t, cfg)
			loc, ok := w.Location(tt.location)
			if !ok {
				t.Fatalf("no location %q", tt.location)
			}

			// Everything except the dungeon items themselves.
			p := items.NewProgression(cfg, everything...)

			testutil.AssertEqual(t, "can fill", loc.CanFill(tt.item, p), tt.exp)
			testutil.AssertEqual(t, "location untouched", loc.Item == nil, true)
		})
	}
}

func TestLocation_AlwaysAllow(t *testing.T) {
	tests := map[string]struct {
		item       *items.Item
		expFill    bool
		expAccepts bool
	}{
		"own key with nothing owned": {
			item:       &items.Item{Type: items.KeyPD},
			expFill:    true,
			expAccepts: true,
		},
		"other item with nothing owned": {
			item:       &items.Item{Type: items.Lamp},
			expFill:    false,
			expAccepts: true,
		},
		"key of another world": {
			item:       &items.Item{Type: items.KeyPD, World: 1},
			expFill:    false,
			expAccepts: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newWorld(t, nil)
			loc, _ := w.Location("Palace of Darkness - Shooter Room")
			p := items.NewProgression(w.Config)

			testutil.AssertEqual(t, "unreachable", loc.IsAvailable(p), false)
			testutil.AssertEqual(t, "can fill", loc.CanFill(tt.item, p), tt.expFill)
			testutil.AssertEqual(t, "accepts", loc.Accepts(tt.item, NewState(p)), tt.expAccepts)
		})
	}
}

func TestWorld_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(w *World)
		expErr string
	}{
		"as built": {},
		"duplicate location": {
			mutate: func(w *World) {
				r, _ := w.Region("Light World South")
				r.loc("Link's House", nil)
			},
			expErr: `duplicate location "Link's House"`,
		},
		"duplicate region": {
			mutate: func(w *World) {
				w.region("Eastern Palace", items.GameZelda, nil)
			},
			expErr: `duplicate region "Eastern Palace"`,
		},
		"prerequisite without choices": {
			mutate: func(w *World) {
				mm, _ := w.Region("Misery Mire")
				mm.Prerequisite.Choices = nil
			},
			expErr: `region "Misery Mire": prerequisite has no choices`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := newWorld(t, nil)
			if tt.mutate != nil {
				tt.mutate(w)
			}

			err := w.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Errorf("validate: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestLocation_CanFillKeyNeutral(t *testing.T) {
	w := newWorld(t, nil)
	tr, _ := w.Region("Turtle Rock")
	tr.Prerequisite.Required = items.Quake

	loc, _ := w.Location("Turtle Rock - Big Key Chest")
	p := items.NewProgression(w.Config,
		items.Flute, items.ProgressiveGlove, items.ProgressiveGlove, items.Hammer, items.MoonPearl,
		items.Hookshot, items.Somaria, items.ProgressiveSword, items.Quake, items.KeyTR)

	testutil.AssertEqual(t, "one key opens nothing", loc.IsAvailable(p), false)
	testutil.AssertEqual(t, "key goes behind itself", loc.CanFill(&items.Item{Type: items.KeyTR}, p), true)
	testutil.AssertEqual(t, "other items need both keys", loc.CanFill(&items.Item{Type: items.Lamp}, p), false)
	testutil.AssertEqual(t, "location untouched", loc.Item == nil, true)

	p.Add(items.KeyTR)
	testutil.AssertEqual(t, "two keys", loc.IsAvailable(p), true)
}

func TestRegion_CanEnterRequireRewards(t *testing.T) {
	w := newWorld(t, nil)
	gt, _ := w.Region("Ganon's Tower")
	p := items.NewProgression(w.Config, items.MoonPearl, items.Flute, items.Mirror)

	testutil.AssertEqual(t, "crystals required", gt.CanEnter(p, true), false)
	testutil.AssertEqual(t, "crystals assumed", gt.CanEnter(p, false), true)

	p.AddRange([]items.ItemType{items.CrystalRed, items.CrystalRed, items.CrystalBlue, items.CrystalBlue})
	testutil.AssertEqual(t, "crystals owned", gt.CanEnter(p, true), true)
}

func TestRegion_Prerequisite(t *testing.T) {
	w := newWorld(t, nil)
	mm, _ := w.Region("Misery Mire")
	mm.Prerequisite.Required = items.Ether

	p := items.NewProgression(w.Config, items.MoonPearl, items.Boots, items.ProgressiveSword,
		items.Flute, items.ProgressiveGlove, items.ProgressiveGlove)

	testutil.AssertEqual(t, "without medallion", mm.CanEnter(p, true), false)
	p.Add(items.Ether)
	testutil.AssertEqual(t, "with medallion", mm.CanEnter(p, true), true)
}

func TestRegion_CanComplete(t *testing.T) {
	w := newWorld(t, nil)
	ct, _ := w.Region("Castle Tower")
	p := items.NewProgression(w.Config, items.Cape, items.ProgressiveSword, items.Lamp, items.KeyCT)

	testutil.AssertEqual(t, "one key", ct.CanComplete(p), false)
	p.Add(items.KeyCT)
	testutil.AssertEqual(t, "two keys", ct.CanComplete(p), true)

	ep, _ := w.Region("Eastern Palace")
	testutil.AssertEqual(t, "unassigned reward", ep.CanComplete(p), false)
}

func TestWorld_CanBeatGame(t *testing.T) {
	w := newWorld(t, nil)
	ps := items.Pools(w.Config, 0)

	all := items.Types(ps.All())
	all = append(all, items.RewardPool()...)
	all = append(all, items.Agahnim, items.BossKraid, items.BossPhantoon, items.BossDraygon, items.BossRidley)

	testutil.AssertEqual(t, "everything", w.CanBeatGame(items.NewProgression(w.Config, all...)), true)

	withoutSilvers := slices.DeleteFunc(slices.Clone(all), func(it items.ItemType) bool { return it == items.SilverArrows })
	testutil.AssertEqual(t, "no silver arrows", w.CanBeatGame(items.NewProgression(w.Config, withoutSilvers...)), false)

	withoutBosses := slices.DeleteFunc(slices.Clone(all), func(it items.ItemType) bool { return it == items.BossRidley })
	testutil.AssertEqual(t, "ridley alive", w.CanBeatGame(items.NewProgression(w.Config, withoutBosses...)), false)
}

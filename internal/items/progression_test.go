package items

import (
	"testing"

	"github.com/pixil98/go-rando/internal/config"
	"github.com/pixil98/go-testutil"
)

func TestProgression_Counts(t *testing.T) {
	p := NewProgression(config.Default(), ProgressiveSword, ProgressiveSword, Lamp)

	testutil.AssertEqual(t, "sword", p.Sword(), 2)
	testutil.AssertEqual(t, "has two swords", p.Has(ProgressiveSword, 2), true)
	testutil.AssertEqual(t, "has three swords", p.Has(ProgressiveSword, 3), false)
	testutil.AssertEqual(t, "contains lamp", p.Contains(Lamp), true)
	testutil.AssertEqual(t, "contains hammer", p.Contains(Hammer), false)
	testutil.AssertEqual(t, "len", p.Len(), 3)
	testutil.AssertEqual(t, "types", p.Types(), []ItemType{ProgressiveSword, ProgressiveSword, Lamp})
}

func TestProgression_Clone(t *testing.T) {
	cfg := config.Default()
	p := NewProgression(cfg, Hookshot)
	c := p.Clone()
	c.Add(Hammer)

	testutil.AssertEqual(t, "original untouched", p.Contains(Hammer), false)
	testutil.AssertEqual(t, "clone has hammer", c.Contains(Hammer), true)
	testutil.AssertEqual(t, "config shared", c.Config() == cfg, true)
	testutil.AssertEqual(t, "equal after add", p.Equal(c), false)

	p.Add(Hammer)
	testutil.AssertEqual(t, "equal again", p.Equal(c), true)
}

func TestProgression_Capabilities(t *testing.T) {
	tests := map[string]struct {
		items []ItemType
		check func(p *Progression) bool
		exp   bool
	}{
		"light gloves lift light":       {items: []ItemType{ProgressiveGlove}, check: (*Progression).CanLiftLight, exp: true},
		"light gloves can't lift heavy": {items: []ItemType{ProgressiveGlove}, check: (*Progression).CanLiftHeavy, exp: false},
		"two gloves lift heavy":         {items: []ItemType{ProgressiveGlove, ProgressiveGlove}, check: (*Progression).CanLiftHeavy, exp: true},
		"lamp lights torches":           {items: []ItemType{Lamp}, check: (*Progression).CanLightTorches, exp: true},
		"bombos needs a sword":          {items: []ItemType{Bombos}, check: (*Progression).CanMeltFreezors, exp: false},
		"bombos with sword melts":       {items: []ItemType{Bombos, ProgressiveSword}, check: (*Progression).CanMeltFreezors, exp: true},
		"morph alone can't bomb":        {items: []ItemType{Morph}, check: (*Progression).CanUseMorphBombs, exp: false},
		"power bombs pass passages":     {items: []ItemType{Morph, PowerBomb}, check: (*Progression).CanPassBombPassages, exp: true},
		"screw attack breaks walls":     {items: []ItemType{ScrewAttack}, check: (*Progression).CanDestroyBombWalls, exp: true},
		"missiles open red doors":       {items: []ItemType{Missile}, check: (*Progression).CanOpenRedDoors, exp: true},
		"missiles don't open green":     {items: []ItemType{Missile}, check: (*Progression).CanOpenGreenDoors, exp: false},
		"all pendants":                  {items: []ItemType{PendantGreen, PendantNonGreen, PendantNonGreen}, check: (*Progression).HasAllPendants, exp: true},
		"green pendant missing":         {items: []ItemType{PendantNonGreen, PendantNonGreen}, check: (*Progression).HasAllPendants, exp: false},
		"bugnet beats agahnim":          {items: []ItemType{Bugnet}, check: (*Progression).CanDefeatAgahnim, exp: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewProgression(config.Default(), tt.items...)
			testutil.AssertEqual(t, "result", tt.check(p), tt.exp)
		})
	}
}

func TestProgression_CanExtendMagic(t *testing.T) {
	tests := map[string]struct {
		items []ItemType
		bars  int
		exp   bool
	}{
		"base meter":            {bars: 1, exp: true},
		"base meter too short":  {bars: 2, exp: false},
		"half magic":            {items: []ItemType{HalfMagic}, bars: 2, exp: true},
		"half magic and bottle": {items: []ItemType{HalfMagic, Bottle}, bars: 4, exp: true},
		"bottle alone":          {items: []ItemType{Bottle}, bars: 3, exp: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewProgression(config.Default(), tt.items...)
			testutil.AssertEqual(t, "extend", p.CanExtendMagic(tt.bars), tt.exp)
		})
	}
}

func TestProgression_HasCard(t *testing.T) {
	tests := map[string]struct {
		keysanity config.Keysanity
		items     []ItemType
		exp       bool
	}{
		"no keysanity opens every door": {keysanity: config.KeysanityNone, exp: true},
		"zelda keysanity opens doors":   {keysanity: config.KeysanityZ3, exp: true},
		"metroid keysanity needs card":  {keysanity: config.KeysanitySM, exp: false},
		"metroid keysanity with card":   {keysanity: config.KeysanityBoth, items: []ItemType{CardNorfairL1}, exp: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Keysanity = tt.keysanity
			p := NewProgression(cfg, tt.items...)
			testutil.AssertEqual(t, "card", p.HasCard(CardNorfairL1), tt.exp)
		})
	}
}

func TestProgression_RewardCounts(t *testing.T) {
	p := NewProgression(config.Default(), CrystalRed, CrystalBlue, CrystalBlue, BossKraid, BossRidley, Agahnim)

	testutil.AssertEqual(t, "crystals", p.Crystals(), 3)
	testutil.AssertEqual(t, "pendants", p.Pendants(), 0)
	testutil.AssertEqual(t, "boss tokens", p.BossTokens(), 2)
}

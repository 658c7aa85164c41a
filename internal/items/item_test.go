package items

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestParseItemType(t *testing.T) {
	tests := map[string]struct {
		name   string
		exp    ItemType
		expErr string
	}{
		"exact name":          {name: "MoonPearl", exp: MoonPearl},
		"ignores case":        {name: "moonpearl", exp: MoonPearl},
		"trims space":         {name: "  Hookshot ", exp: Hookshot},
		"keycard":             {name: "CardMaridiaBoss", exp: CardMaridiaBoss},
		"unknown":             {name: "Triforce", expErr: "unknown item"},
		"nothing has no name": {name: "", expErr: "unknown item"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseItemType(tt.name)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "type", got, tt.exp)
		})
	}
}

func TestItemType_Flags(t *testing.T) {
	tests := map[string]struct {
		t           ItemType
		game        Game
		dungeon     bool
		key         bool
		bigKey      bool
		keycard     bool
		reward      bool
		progressive bool
	}{
		"small key":    {t: KeyPD, game: GameZelda, dungeon: true, key: true, progressive: true},
		"big key":      {t: BigKeyGT, game: GameZelda, dungeon: true, bigKey: true, progressive: true},
		"map":          {t: MapTR, game: GameZelda, dungeon: true},
		"compass":      {t: CompassEP, game: GameZelda, dungeon: true},
		"keycard":      {t: CardNorfairL2, game: GameMetroid, keycard: true, progressive: true},
		"reward":       {t: CrystalRed, game: GameZelda, reward: true, progressive: true},
		"boss token":   {t: BossRidley, game: GameMetroid, reward: true, progressive: true},
		"equipment":    {t: SpaceJump, game: GameMetroid, progressive: true},
		"junk":         {t: ThreeHundredRupees, game: GameZelda},
		"nice to have": {t: Spazer, game: GameMetroid},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "game", tt.t.Game(), tt.game)
			testutil.AssertEqual(t, "dungeon", tt.t.IsDungeonItem(), tt.dungeon)
			testutil.AssertEqual(t, "key", tt.t.IsKey(), tt.key)
			testutil.AssertEqual(t, "big key", tt.t.IsBigKey(), tt.bigKey)
			testutil.AssertEqual(t, "keycard", tt.t.IsKeycard(), tt.keycard)
			testutil.AssertEqual(t, "reward", tt.t.IsReward(), tt.reward)
			testutil.AssertEqual(t, "progression", tt.t.IsProgression(), tt.progressive)
		})
	}
}

func TestItemType_Names(t *testing.T) {
	for it := Nothing + 1; it < itemTypeCount; it++ {
		if _, ok := itemInfos[it]; !ok {
			t.Errorf("item type %d has no info", int(it))
			continue
		}
		parsed, err := ParseItemType(it.String())
		if err != nil {
			t.Errorf("parse %s: %v", it, err)
			continue
		}
		testutil.AssertEqual(t, it.String(), parsed, it)
	}
}

func TestItem_Is(t *testing.T) {
	it := &Item{Type: KeyPD, World: 1}

	testutil.AssertEqual(t, "same world", it.Is(KeyPD, 1), true)
	testutil.AssertEqual(t, "other world", it.Is(KeyPD, 0), false)
	testutil.AssertEqual(t, "other type", it.Is(KeyTR, 1), false)

	var none *Item
	testutil.AssertEqual(t, "nil item", none.Is(KeyPD, 1), false)
}

package config

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type GameMode string

const (
	GameModeNormal     GameMode = "normal"
	GameModeMultiworld GameMode = "multiworld"
)

type Z3Logic string

const (
	Z3LogicNormal   Z3Logic = "normal"
	Z3LogicGlitched Z3Logic = "glitched"
)

type SMLogic string

const (
	SMLogicNormal SMLogic = "normal"
	SMLogicHard   SMLogic = "hard"
)

type Keysanity string

const (
	KeysanityNone Keysanity = "none"
	KeysanityZ3   Keysanity = "z3"
	KeysanitySM   Keysanity = "sm"
	KeysanityBoth Keysanity = "both"
)

const (
	DefaultMaxRetries = 500

	maxCrystals = 4
	maxBosses   = 4
)

// Config holds everything that shapes a single generation run. It is
// passed explicitly into world and logic construction; nothing reads it
// from package state.
type Config struct {
	// Seed drives the single random source of a run. Zero means "pick one".
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	GameMode GameMode `json:"game_mode" yaml:"game_mode" jsonschema:"enum=normal,enum=multiworld"`
	Players  []string `json:"players,omitempty" yaml:"players,omitempty"`

	Z3Logic   Z3Logic   `json:"z3_logic" yaml:"z3_logic" jsonschema:"enum=normal,enum=glitched"`
	SMLogic   SMLogic   `json:"sm_logic" yaml:"sm_logic" jsonschema:"enum=normal,enum=hard"`
	Keysanity Keysanity `json:"keysanity" yaml:"keysanity" jsonschema:"enum=none,enum=z3,enum=sm,enum=both"`

	// GanonCrystals is the number of crystals needed to defeat Ganon,
	// TowerCrystals the number needed to open Ganon's Tower.
	GanonCrystals int `json:"ganon_crystals" yaml:"ganon_crystals"`
	TowerCrystals int `json:"tower_crystals" yaml:"tower_crystals"`

	// TourianBosses is the number of defeated Metroid bosses needed to enter Tourian.
	TourianBosses int `json:"tourian_bosses" yaml:"tourian_bosses"`

	// Placements maps a location name to the item name forced there.
	Placements map[string]string `json:"placements,omitempty" yaml:"placements,omitempty"`

	// EarlyItems are item names placed into sphere-one locations before the main fill.
	EarlyItems []string `json:"early_items,omitempty" yaml:"early_items,omitempty"`

	// ItemWeights pulls item types toward the tail of the progression pool.
	// A weight of 1 lets the item land anywhere, 0 leaves it where the shuffle put it.
	ItemWeights map[string]float64 `json:"item_weights,omitempty" yaml:"item_weights,omitempty"`

	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
}

// Default returns a single player configuration using normal logic everywhere.
func Default() *Config {
	return &Config{
		GameMode:      GameModeNormal,
		Players:       []string{"Player"},
		Z3Logic:       Z3LogicNormal,
		SMLogic:       SMLogicNormal,
		Keysanity:     KeysanityNone,
		GanonCrystals: maxCrystals,
		TowerCrystals: maxCrystals,
		TourianBosses: maxBosses,
		MaxRetries:    DefaultMaxRetries,
	}
}

// Validate satisfies storage.ValidatingSpec.
func (c *Config) Validate() error {
	el := errors.NewErrorList()

	switch c.GameMode {
	case GameModeNormal:
		if len(c.Players) > 1 {
			el.Add(fmt.Errorf("game_mode %s supports a single player, got %d", c.GameMode, len(c.Players)))
		}
	case GameModeMultiworld:
		if len(c.Players) < 2 {
			el.Add(fmt.Errorf("game_mode %s requires at least 2 players", c.GameMode))
		}
	default:
		el.Add(fmt.Errorf("invalid game_mode %q (must be %s or %s)", c.GameMode, GameModeNormal, GameModeMultiworld))
	}

	seen := map[string]bool{}
	for i, p := range c.Players {
		if p == "" {
			el.Add(fmt.Errorf("player %d: name is required", i))
			continue
		}
		if seen[p] {
			el.Add(fmt.Errorf("player %d: duplicate name %q", i, p))
		}
		seen[p] = true
	}

	switch c.Z3Logic {
	case Z3LogicNormal, Z3LogicGlitched:
	default:
		el.Add(fmt.Errorf("invalid z3_logic %q (must be %s or %s)", c.Z3Logic, Z3LogicNormal, Z3LogicGlitched))
	}

	switch c.SMLogic {
	case SMLogicNormal, SMLogicHard:
	default:
		el.Add(fmt.Errorf("invalid sm_logic %q (must be %s or %s)", c.SMLogic, SMLogicNormal, SMLogicHard))
	}

	switch c.Keysanity {
	case KeysanityNone, KeysanityZ3, KeysanitySM, KeysanityBoth:
	default:
		el.Add(fmt.Errorf("invalid keysanity %q (must be %s, %s, %s or %s)",
			c.Keysanity, KeysanityNone, KeysanityZ3, KeysanitySM, KeysanityBoth))
	}

	el.Add(checkRange("ganon_crystals", c.GanonCrystals, 0, maxCrystals))
	el.Add(checkRange("tower_crystals", c.TowerCrystals, 0, maxCrystals))
	el.Add(checkRange("tourian_bosses", c.TourianBosses, 0, maxBosses))

	for loc, item := range c.Placements {
		if loc == "" || item == "" {
			el.Add(fmt.Errorf("placements: location and item names are required (%q -> %q)", loc, item))
		}
	}

	for name, w := range c.ItemWeights {
		if w < 0 || w > 1 {
			el.Add(fmt.Errorf("item_weights: weight for %s must be between 0 and 1, got %v", name, w))
		}
	}

	if c.MaxRetries < 0 {
		el.Add(fmt.Errorf("max_retries must not be negative"))
	}

	return el.Err()
}

func checkRange(name string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d, got %d", name, lo, hi, v)
	}
	return nil
}

// Z3Keysanity reports whether Zelda dungeon items leave their dungeons.
func (c *Config) Z3Keysanity() bool {
	return c.Keysanity == KeysanityZ3 || c.Keysanity == KeysanityBoth
}

// SMKeysanity reports whether Metroid keycards exist and gate doors.
func (c *Config) SMKeysanity() bool {
	return c.Keysanity == KeysanitySM || c.Keysanity == KeysanityBoth
}

func (c *Config) Multiworld() bool {
	return c.GameMode == GameModeMultiworld
}

// Retries returns the assumed fill retry bound, falling back to the default.
func (c *Config) Retries() int {
	if c.MaxRetries == 0 {
		return DefaultMaxRetries
	}
	return c.MaxRetries
}

// ResolveSeed fills in a clock-derived seed when none was configured and returns it.
func (c *Config) ResolveSeed(now time.Time) int64 {
	if c.Seed == 0 {
		c.Seed = now.UnixNano()
	}
	return c.Seed
}

// PlayerNames returns the configured players, defaulting to a single anonymous one.
func (c *Config) PlayerNames() []string {
	if len(c.Players) == 0 {
		return []string{"Player"}
	}
	return c.Players
}

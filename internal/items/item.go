package items

import (
	"fmt"
	"strings"
)

// Game identifies which half of the combined adventure an item or region belongs to.
type Game int

const (
	GameZelda Game = iota
	GameMetroid
)

func (g Game) String() string {
	switch g {
	case GameZelda:
		return "Zelda"
	case GameMetroid:
		return "Metroid"
	default:
		return fmt.Sprintf("Game(%d)", int(g))
	}
}

// ItemType identifies a kind of collectible.
type ItemType int

const (
	Nothing ItemType = iota

	// Zelda equipment
	ProgressiveSword
	ProgressiveGlove
	ProgressiveShield
	ProgressiveTunic
	Bow
	SilverArrows
	Hookshot
	Firerod
	Icerod
	Bombos
	Ether
	Quake
	Lamp
	Hammer
	Flute
	Bugnet
	Book
	Bottle
	Somaria
	Byrna
	Cape
	Mirror
	Boots
	Flippers
	MoonPearl
	HalfMagic
	Shovel
	Mushroom
	Powder
	Boomerang
	RedBoomerang
	HeartContainer

	// Zelda consumables
	HeartPiece
	ThreeBombs
	TenArrows
	OneRupee
	FiveRupees
	TwentyRupees
	FiftyRupees
	OneHundredRupees
	ThreeHundredRupees

	// Zelda dungeon items
	KeyHC
	MapHC
	KeyCT
	BigKeyEP
	MapEP
	CompassEP
	KeyDP
	BigKeyDP
	MapDP
	CompassDP
	KeyTH
	BigKeyTH
	MapTH
	CompassTH
	KeyPD
	BigKeyPD
	MapPD
	CompassPD
	KeyIP
	BigKeyIP
	MapIP
	CompassIP
	KeyMM
	BigKeyMM
	MapMM
	CompassMM
	KeyTR
	BigKeyTR
	MapTR
	CompassTR
	KeyGT
	BigKeyGT
	MapGT
	CompassGT

	// Metroid equipment
	Morph
	Bombs
	Charge
	Ice
	Wave
	Spazer
	Plasma
	Varia
	Gravity
	HiJump
	SpaceJump
	SpeedBooster
	ScrewAttack
	SpringBall
	Grapple
	XRay
	Missile
	Super
	PowerBomb
	ETank
	ReserveTank

	// Metroid keycards
	CardCrateriaL1
	CardCrateriaL2
	CardCrateriaBoss
	CardBrinstarL1
	CardBrinstarL2
	CardBrinstarBoss
	CardNorfairL1
	CardNorfairL2
	CardNorfairBoss
	CardMaridiaL1
	CardMaridiaL2
	CardMaridiaBoss
	CardWreckedShipL1
	CardWreckedShipBoss
	CardLowerNorfairL1
	CardLowerNorfairBoss

	// Region rewards. These are never placed in locations; they are
	// collected when the region holding them can be completed.
	Agahnim
	PendantGreen
	PendantNonGreen
	CrystalBlue
	CrystalRed
	BossKraid
	BossPhantoon
	BossDraygon
	BossRidley

	itemTypeCount
)

type class int

const (
	classEquipment class = iota
	classJunk
	classKey
	classBigKey
	classMap
	classCompass
	classKeycard
	classReward
)

type itemInfo struct {
	name        string
	game        Game
	class       class
	progression bool
}

var itemInfos = map[ItemType]itemInfo{
	ProgressiveSword:   {"ProgressiveSword", GameZelda, classEquipment, true},
	ProgressiveGlove:   {"ProgressiveGlove", GameZelda, classEquipment, true},
	ProgressiveShield:  {"ProgressiveShield", GameZelda, classEquipment, false},
	ProgressiveTunic:   {"ProgressiveTunic", GameZelda, classEquipment, false},
	Bow:                {"Bow", GameZelda, classEquipment, true},
	SilverArrows:       {"SilverArrows", GameZelda, classEquipment, true},
	Hookshot:           {"Hookshot", GameZelda, classEquipment, true},
	Firerod:            {"Firerod", GameZelda, classEquipment, true},
	Icerod:             {"Icerod", GameZelda, classEquipment, true},
	Bombos:             {"Bombos", GameZelda, classEquipment, true},
	Ether:              {"Ether", GameZelda, classEquipment, true},
	Quake:              {"Quake", GameZelda, classEquipment, true},
	Lamp:               {"Lamp", GameZelda, classEquipment, true},
	Hammer:             {"Hammer", GameZelda, classEquipment, true},
	Flute:              {"Flute", GameZelda, classEquipment, true},
	Bugnet:             {"Bugnet", GameZelda, classEquipment, false},
	Book:               {"Book", GameZelda, classEquipment, true},
	Bottle:             {"Bottle", GameZelda, classEquipment, true},
	Somaria:            {"Somaria", GameZelda, classEquipment, true},
	Byrna:              {"Byrna", GameZelda, classEquipment, false},
	Cape:               {"Cape", GameZelda, classEquipment, true},
	Mirror:             {"Mirror", GameZelda, classEquipment, true},
	Boots:              {"Boots", GameZelda, classEquipment, true},
	Flippers:           {"Flippers", GameZelda, classEquipment, true},
	MoonPearl:          {"MoonPearl", GameZelda, classEquipment, true},
	HalfMagic:          {"HalfMagic", GameZelda, classEquipment, true},
	Shovel:             {"Shovel", GameZelda, classEquipment, true},
	Mushroom:           {"Mushroom", GameZelda, classEquipment, true},
	Powder:             {"Powder", GameZelda, classEquipment, true},
	Boomerang:          {"Boomerang", GameZelda, classEquipment, false},
	RedBoomerang:       {"RedBoomerang", GameZelda, classEquipment, false},
	HeartContainer:     {"HeartContainer", GameZelda, classEquipment, false},
	HeartPiece:         {"HeartPiece", GameZelda, classJunk, false},
	ThreeBombs:         {"ThreeBombs", GameZelda, classJunk, false},
	TenArrows:          {"TenArrows", GameZelda, classJunk, false},
	OneRupee:           {"OneRupee", GameZelda, classJunk, false},
	FiveRupees:         {"FiveRupees", GameZelda, classJunk, false},
	TwentyRupees:       {"TwentyRupees", GameZelda, classJunk, false},
	FiftyRupees:        {"FiftyRupees", GameZelda, classJunk, false},
	OneHundredRupees:   {"OneHundredRupees", GameZelda, classJunk, false},
	ThreeHundredRupees: {"ThreeHundredRupees", GameZelda, classJunk, false},

	KeyHC:     {"KeyHC", GameZelda, classKey, true},
	MapHC:     {"MapHC", GameZelda, classMap, false},
	KeyCT:     {"KeyCT", GameZelda, classKey, true},
	BigKeyEP:  {"BigKeyEP", GameZelda, classBigKey, true},
	MapEP:     {"MapEP", GameZelda, classMap, false},
	CompassEP: {"CompassEP", GameZelda, classCompass, false},
	KeyDP:     {"KeyDP", GameZelda, classKey, true},
	BigKeyDP:  {"BigKeyDP", GameZelda, classBigKey, true},
	MapDP:     {"MapDP", GameZelda, classMap, false},
	CompassDP: {"CompassDP", GameZelda, classCompass, false},
	KeyTH:     {"KeyTH", GameZelda, classKey, true},
	BigKeyTH:  {"BigKeyTH", GameZelda, classBigKey, true},
	MapTH:     {"MapTH", GameZelda, classMap, false},
	CompassTH: {"CompassTH", GameZelda, classCompass, false},
	KeyPD:     {"KeyPD", GameZelda, classKey, true},
	BigKeyPD:  {"BigKeyPD", GameZelda, classBigKey, true},
	MapPD:     {"MapPD", GameZelda, classMap, false},
	CompassPD: {"CompassPD", GameZelda, classCompass, false},
	KeyIP:     {"KeyIP", GameZelda, classKey, true},
	BigKeyIP:  {"BigKeyIP", GameZelda, classBigKey, true},
	MapIP:     {"MapIP", GameZelda, classMap, false},
	CompassIP: {"CompassIP", GameZelda, classCompass, false},
	KeyMM:     {"KeyMM", GameZelda, classKey, true},
	BigKeyMM:  {"BigKeyMM", GameZelda, classBigKey, true},
	MapMM:     {"MapMM", GameZelda, classMap, false},
	CompassMM: {"CompassMM", GameZelda, classCompass, false},
	KeyTR:     {"KeyTR", GameZelda, classKey, true},
	BigKeyTR:  {"BigKeyTR", GameZelda, classBigKey, true},
	MapTR:     {"MapTR", GameZelda, classMap, false},
	CompassTR: {"CompassTR", GameZelda, classCompass, false},
	KeyGT:     {"KeyGT", GameZelda, classKey, true},
	BigKeyGT:  {"BigKeyGT", GameZelda, classBigKey, true},
	MapGT:     {"MapGT", GameZelda, classMap, false},
	CompassGT: {"CompassGT", GameZelda, classCompass, false},

	Morph:        {"Morph", GameMetroid, classEquipment, true},
	Bombs:        {"Bombs", GameMetroid, classEquipment, true},
	Charge:       {"Charge", GameMetroid, classEquipment, true},
	Ice:          {"Ice", GameMetroid, classEquipment, true},
	Wave:         {"Wave", GameMetroid, classEquipment, true},
	Spazer:       {"Spazer", GameMetroid, classEquipment, false},
	Plasma:       {"Plasma", GameMetroid, classEquipment, true},
	Varia:        {"Varia", GameMetroid, classEquipment, true},
	Gravity:      {"Gravity", GameMetroid, classEquipment, true},
	HiJump:       {"HiJump", GameMetroid, classEquipment, true},
	SpaceJump:    {"SpaceJump", GameMetroid, classEquipment, true},
	SpeedBooster: {"SpeedBooster", GameMetroid, classEquipment, true},
	ScrewAttack:  {"ScrewAttack", GameMetroid, classEquipment, true},
	SpringBall:   {"SpringBall", GameMetroid, classEquipment, true},
	Grapple:      {"Grapple", GameMetroid, classEquipment, true},
	XRay:         {"XRay", GameMetroid, classEquipment, false},
	Missile:      {"Missile", GameMetroid, classEquipment, true},
	Super:        {"Super", GameMetroid, classEquipment, true},
	PowerBomb:    {"PowerBomb", GameMetroid, classEquipment, true},
	ETank:        {"ETank", GameMetroid, classEquipment, true},
	ReserveTank:  {"ReserveTank", GameMetroid, classEquipment, true},

	CardCrateriaL1:       {"CardCrateriaL1", GameMetroid, classKeycard, true},
	CardCrateriaL2:       {"CardCrateriaL2", GameMetroid, classKeycard, true},
	CardCrateriaBoss:     {"CardCrateriaBoss", GameMetroid, classKeycard, true},
	CardBrinstarL1:       {"CardBrinstarL1", GameMetroid, classKeycard, true},
	CardBrinstarL2:       {"CardBrinstarL2", GameMetroid, classKeycard, true},
	CardBrinstarBoss:     {"CardBrinstarBoss", GameMetroid, classKeycard, true},
	CardNorfairL1:        {"CardNorfairL1", GameMetroid, classKeycard, true},
	CardNorfairL2:        {"CardNorfairL2", GameMetroid, classKeycard, true},
	CardNorfairBoss:      {"CardNorfairBoss", GameMetroid, classKeycard, true},
	CardMaridiaL1:        {"CardMaridiaL1", GameMetroid, classKeycard, true},
	CardMaridiaL2:        {"CardMaridiaL2", GameMetroid, classKeycard, true},
	CardMaridiaBoss:      {"CardMaridiaBoss", GameMetroid, classKeycard, true},
	CardWreckedShipL1:    {"CardWreckedShipL1", GameMetroid, classKeycard, true},
	CardWreckedShipBoss:  {"CardWreckedShipBoss", GameMetroid, classKeycard, true},
	CardLowerNorfairL1:   {"CardLowerNorfairL1", GameMetroid, classKeycard, true},
	CardLowerNorfairBoss: {"CardLowerNorfairBoss", GameMetroid, classKeycard, true},

	Agahnim:         {"Agahnim", GameZelda, classReward, true},
	PendantGreen:    {"PendantGreen", GameZelda, classReward, true},
	PendantNonGreen: {"PendantNonGreen", GameZelda, classReward, true},
	CrystalBlue:     {"CrystalBlue", GameZelda, classReward, true},
	CrystalRed:      {"CrystalRed", GameZelda, classReward, true},
	BossKraid:       {"BossKraid", GameMetroid, classReward, true},
	BossPhantoon:    {"BossPhantoon", GameMetroid, classReward, true},
	BossDraygon:     {"BossDraygon", GameMetroid, classReward, true},
	BossRidley:      {"BossRidley", GameMetroid, classReward, true},
}

var itemsByName = func() map[string]ItemType {
	m := make(map[string]ItemType, len(itemInfos))
	for t, info := range itemInfos {
		m[strings.ToLower(info.name)] = t
	}
	return m
}()

func (t ItemType) String() string {
	if info, ok := itemInfos[t]; ok {
		return info.name
	}
	if t == Nothing {
		return "Nothing"
	}
	return fmt.Sprintf("ItemType(%d)", int(t))
}

// ParseItemType looks up an item type by its name, ignoring case.
func ParseItemType(name string) (ItemType, error) {
	t, ok := itemsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Nothing, fmt.Errorf("unknown item %q", name)
	}
	return t, nil
}

func (t ItemType) Game() Game         { return itemInfos[t].game }
func (t ItemType) IsProgression() bool { return itemInfos[t].progression }
func (t ItemType) IsKey() bool         { return itemInfos[t].class == classKey }
func (t ItemType) IsBigKey() bool      { return itemInfos[t].class == classBigKey }
func (t ItemType) IsMap() bool         { return itemInfos[t].class == classMap }
func (t ItemType) IsCompass() bool     { return itemInfos[t].class == classCompass }
func (t ItemType) IsKeycard() bool     { return itemInfos[t].class == classKeycard }
func (t ItemType) IsReward() bool      { return itemInfos[t].class == classReward }

// IsDungeonItem reports whether the type is a Zelda key, big key, map or compass.
func (t ItemType) IsDungeonItem() bool {
	switch itemInfos[t].class {
	case classKey, classBigKey, classMap, classCompass:
		return true
	default:
		return false
	}
}

// Item is a single collectible owned by one world. Items are created per
// generation from pool templates and never change afterwards.
type Item struct {
	Type  ItemType
	World int
}

func (i *Item) String() string {
	return fmt.Sprintf("%s (world %d)", i.Type, i.World)
}

// Is reports whether the item has the given type and belongs to the given world.
func (i *Item) Is(t ItemType, world int) bool {
	return i != nil && i.Type == t && i.World == world
}

func (i *Item) IsProgression() bool { return i.Type.IsProgression() }
func (i *Item) IsDungeonItem() bool { return i.Type.IsDungeonItem() }
func (i *Item) IsKey() bool         { return i.Type.IsKey() }
func (i *Item) IsBigKey() bool      { return i.Type.IsBigKey() }
func (i *Item) IsMap() bool         { return i.Type.IsMap() }
func (i *Item) IsCompass() bool     { return i.Type.IsCompass() }
func (i *Item) IsKeycard() bool     { return i.Type.IsKeycard() }

// Types returns the types of the given items in order.
func Types(list []*Item) []ItemType {
	out := make([]ItemType, len(list))
	for i, it := range list {
		out[i] = it.Type
	}
	return out
}

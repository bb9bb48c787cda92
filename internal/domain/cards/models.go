package cards

import (
	"iter"
	"reflect"
	"strconv"
)

// SetCode is the three byte ASCII identifier of a set.
type SetCode [3]byte

// NewSetCode returns the code for s if s is exactly three ASCII bytes.
func NewSetCode(s string) (SetCode, bool) {
	var code SetCode
	if len(s) != len(code) {
		return code, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return code, false
		}
		code[i] = s[i]
	}
	return code, true
}

// MustSetCode is NewSetCode for codes known at compile time.
func MustSetCode(s string) SetCode {
	code, ok := NewSetCode(s)
	if !ok {
		panic("cards: invalid set code " + strconv.Quote(s))
	}
	return code
}

func (c SetCode) String() string {
	return string(c[:])
}

type Rarity uint8

const (
	RaritySide Rarity = iota
	RarityCommon
	RarityUncommon
	RarityRare
	RarityUnique
)

var rarityNames = [...]string{"Side", "Common", "Uncommon", "Rare", "Unique"}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return "Rarity(" + strconv.Itoa(int(r)) + ")"
}

// Temple is the set of temples a card belongs to.
type Temple uint16

const (
	TempleBeast Temple = 1 << iota
	TempleUndead
	TempleTech
	TempleMagick
	TempleFool
	TempleArtistry
)

var templeLabels = []flagLabel[Temple]{
	{TempleBeast, "Beast"},
	{TempleUndead, "Undead"},
	{TempleTech, "Tech"},
	{TempleMagick, "Magick"},
	{TempleFool, "Fool"},
	{TempleArtistry, "Artistry"},
}

func (t Temple) Contains(other Temple) bool { return hasBits(t, other) }
func (t Temple) Union(other Temple) Temple { return t | other }
func (t Temple) SetIf(other Temple, cond bool) Temple { return setIf(t, other, cond) }
func (t Temple) IsEmpty() bool { return t == 0 }
func (t Temple) Flags() iter.Seq[Temple] { return bits(t) }
func (t Temple) String() string { return label(t, templeLabels) }

// Mox is the set of mox colors a card costs.
type Mox uint16

const (
	MoxOrange Mox = 1 << iota
	MoxGreen
	MoxBlue
	MoxGray
)

var moxLabels = []flagLabel[Mox]{
	{MoxOrange, "Orange"},
	{MoxGreen, "Green"},
	{MoxBlue, "Blue"},
	{MoxGray, "Gray"},
}

func (m Mox) Contains(other Mox) bool { return hasBits(m, other) }
func (m Mox) Union(other Mox) Mox { return m | other }
func (m Mox) SetIf(other Mox, cond bool) Mox { return setIf(m, other, cond) }
func (m Mox) IsEmpty() bool { return m == 0 }
func (m Mox) Flags() iter.Seq[Mox] { return bits(m) }
func (m Mox) String() string { return label(m, moxLabels) }

// TraitsFlag holds the boolean traits a card may carry.
type TraitsFlag uint16

const (
	TraitConductive TraitsFlag = 1 << iota
	TraitBan
	// TraitTerrain marks cards that cannot be sacrificed.
	TraitTerrain
	// TraitHard marks cards that cannot be hammered.
	TraitHard
)

var traitLabels = []flagLabel[TraitsFlag]{
	{TraitConductive, "Conductive"},
	{TraitBan, "Banned"},
	{TraitTerrain, "Terrain"},
	{TraitHard, "Unhammerable"},
}

func (f TraitsFlag) Contains(other TraitsFlag) bool { return hasBits(f, other) }
func (f TraitsFlag) Union(other TraitsFlag) TraitsFlag { return f | other }
func (f TraitsFlag) SetIf(other TraitsFlag, cond bool) TraitsFlag { return setIf(f, other, cond) }
func (f TraitsFlag) IsEmpty() bool { return f == 0 }
func (f TraitsFlag) Flags() iter.Seq[TraitsFlag] { return bits(f) }
func (f TraitsFlag) String() string { return label(f, traitLabels) }

// SpAtk is a special, non numeric attack.
type SpAtk uint8

const (
	SpAtkMox SpAtk = iota
	SpAtkGreenMox
	SpAtkMirror
	SpAtkAnt
	SpAtkBone
	SpAtkBell
	SpAtkCard
)

var spAtkNames = [...]string{"Mox", "Green Mox", "Mirror", "Ant", "Bone", "Bell", "Card"}

func (s SpAtk) String() string {
	if int(s) < len(spAtkNames) {
		return spAtkNames[s]
	}
	return "SpAtk(" + strconv.Itoa(int(s)) + ")"
}

type AttackKind uint8

const (
	AttackNum AttackKind = iota
	AttackSpecial
	AttackText
)

// Attack is either a number, a special attack or free text.
type Attack struct {
	Kind    AttackKind
	Num     int
	Special SpAtk
	Text    string
}

func NumAttack(n int) Attack { return Attack{Kind: AttackNum, Num: n} }
func SpecialAttack(s SpAtk) Attack { return Attack{Kind: AttackSpecial, Special: s} }
func TextAttack(text string) Attack { return Attack{Kind: AttackText, Text: text} }

func (a Attack) String() string {
	switch a.Kind {
	case AttackSpecial:
		return a.Special.String()
	case AttackText:
		return a.Text
	default:
		return strconv.Itoa(a.Num)
	}
}

// MoxCount overrides how many of each mox color a card costs.
type MoxCount struct {
	Orange int
	Green  int
	Blue   int
	Gray   int
}

// Add increases the count of every color in m by n.
func (c *MoxCount) Add(m Mox, n int) {
	for flag := range m.Flags() {
		if count := c.color(flag); count != nil {
			*count += n
		}
	}
}

// Set replaces the count of every color in m with n.
func (c *MoxCount) Set(m Mox, n int) {
	for flag := range m.Flags() {
		if count := c.color(flag); count != nil {
			*count = n
		}
	}
}

func (c *MoxCount) color(m Mox) *int {
	switch m {
	case MoxOrange:
		return &c.Orange
	case MoxGreen:
		return &c.Green
	case MoxBlue:
		return &c.Blue
	case MoxGray:
		return &c.Gray
	}
	return nil
}

// Multiple reports whether some color costs more than one.
func (c MoxCount) Multiple() bool {
	return c.Orange > 1 || c.Green > 1 || c.Blue > 1 || c.Gray > 1
}

// Costs of a card. C carries variant specific extra costs.
type Costs[C any] struct {
	Blood  int
	Bone   int
	Energy int
	Mox    Mox
	// MoxCount is only present when some color costs more than one.
	MoxCount *MoxCount
	Extra    C
}

func (c Costs[C]) Equal(other Costs[C]) bool {
	return c.Blood == other.Blood &&
		c.Bone == other.Bone &&
		c.Energy == other.Energy &&
		c.Mox == other.Mox &&
		reflect.DeepEqual(c.MoxCount, other.MoxCount) &&
		reflect.DeepEqual(c.Extra, other.Extra)
}

type Traits struct {
	Strings []string
	Flags   TraitsFlag
}

func (t Traits) WithFlags(flags TraitsFlag) Traits {
	t.Flags |= flags
	return t
}

func (t Traits) WithStrings(strs ...string) Traits {
	t.Strings = append(append([]string(nil), t.Strings...), strs...)
	return t
}

func (t Traits) Equal(other Traits) bool {
	if t.Flags != other.Flags || len(t.Strings) != len(other.Strings) {
		return false
	}
	for i := range t.Strings {
		if t.Strings[i] != other.Strings[i] {
			return false
		}
	}
	return true
}

// Card is a single card. E is the variant specific extra data and C the
// extra cost data.
type Card[E, C any] struct {
	Set         SetCode
	Name        string
	Description string
	Portrait    string
	Rarity      Rarity
	Temple      Temple
	// Tribes is empty when the card has no tribe.
	Tribes  string
	Attack  Attack
	Health  int
	Sigils  []string
	Costs   *Costs[C]
	Traits  *Traits
	Related []string
	Extra   E
}

// UndefinedSigil replaces sigil names that are missing from a set's sigil
// table.
const UndefinedSigil = "UNDEFINED SIGIL"

const UndefinedSigilDescription = "THIS SIGIL IS NOT DEFINED BY THE SET"

type Set[E, C any] struct {
	Code              SetCode
	Name              string
	Cards             []Card[E, C]
	SigilsDescription map[string]string
}

func (s *Set[E, C]) SigilDescription(name string) string {
	if desc, ok := s.SigilsDescription[name]; ok {
		return desc
	}
	return UndefinedSigilDescription
}

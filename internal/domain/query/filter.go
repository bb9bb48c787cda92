package query

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
)

// Predicate reports whether a card matches.
type Predicate[E, C any] func(*cards.Card[E, C]) bool

// Compiler is anything that can be turned into a Predicate.
type Compiler[E, C any] interface {
	Compile() Predicate[E, C]
}

// Extension is a caller supplied filter, plugged in with Extra.
type Extension[E, C any] interface {
	Compiler[E, C]
	fmt.Stringer
}

type Kind uint8

const (
	KindName Kind = iota
	KindDescription
	KindRarity
	KindTemple
	KindTribe
	KindAttack
	KindHealth
	KindSigil
	KindSpAtk
	KindStrAtk
	KindCosts
	KindTraits
	KindOr
	KindNot
	KindExtra
)

// Filter describes a single condition on a card. Kind selects which of the
// payload fields are meaningful.
type Filter[E, C any] struct {
	Kind Kind

	// Text is used by Name, Description, Sigil and StrAtk.
	Text   string
	Rarity cards.Rarity
	Temple cards.Temple
	// Tribe is nil when the card must have no tribe.
	Tribe *string
	Cmp   Ordering
	Value int
	SpAtk cards.SpAtk
	// Costs is nil when the card must be free.
	Costs *cards.Costs[C]
	// Traits is nil when the card must have no traits.
	Traits *cards.Traits

	// Left and Right are the operands of Or, Left alone is the operand of Not.
	Left  *Filter[E, C]
	Right *Filter[E, C]
	Extra Extension[E, C]
}

func Name[E, C any](text string) Filter[E, C] {
	return Filter[E, C]{Kind: KindName, Text: text}
}

func Description[E, C any](text string) Filter[E, C] {
	return Filter[E, C]{Kind: KindDescription, Text: text}
}

func Rarity[E, C any](r cards.Rarity) Filter[E, C] {
	return Filter[E, C]{Kind: KindRarity, Rarity: r}
}

func Temple[E, C any](t cards.Temple) Filter[E, C] {
	return Filter[E, C]{Kind: KindTemple, Temple: t}
}

func Tribe[E, C any](tribe *string) Filter[E, C] {
	return Filter[E, C]{Kind: KindTribe, Tribe: tribe}
}

func Attack[E, C any](cmp Ordering, value int) Filter[E, C] {
	return Filter[E, C]{Kind: KindAttack, Cmp: cmp, Value: value}
}

func Health[E, C any](cmp Ordering, value int) Filter[E, C] {
	return Filter[E, C]{Kind: KindHealth, Cmp: cmp, Value: value}
}

func Sigil[E, C any](name string) Filter[E, C] {
	return Filter[E, C]{Kind: KindSigil, Text: name}
}

func SpAtk[E, C any](s cards.SpAtk) Filter[E, C] {
	return Filter[E, C]{Kind: KindSpAtk, SpAtk: s}
}

func StrAtk[E, C any](text string) Filter[E, C] {
	return Filter[E, C]{Kind: KindStrAtk, Text: text}
}

func Costs[E, C any](costs *cards.Costs[C]) Filter[E, C] {
	return Filter[E, C]{Kind: KindCosts, Costs: costs}
}

func Traits[E, C any](traits *cards.Traits) Filter[E, C] {
	return Filter[E, C]{Kind: KindTraits, Traits: traits}
}

func Or[E, C any](left, right Filter[E, C]) Filter[E, C] {
	return Filter[E, C]{Kind: KindOr, Left: &left, Right: &right}
}

func Not[E, C any](inner Filter[E, C]) Filter[E, C] {
	return Filter[E, C]{Kind: KindNot, Left: &inner}
}

func Extra[E, C any](ext Extension[E, C]) Filter[E, C] {
	return Filter[E, C]{Kind: KindExtra, Extra: ext}
}

// Compile turns the filter into a predicate. The predicate does not share
// any mutable state with the filter.
func (f Filter[E, C]) Compile() Predicate[E, C] {
	switch f.Kind {
	case KindName:
		text := strings.ToLower(f.Text)
		return func(c *cards.Card[E, C]) bool {
			return strings.Contains(strings.ToLower(c.Name), text)
		}
	case KindDescription:
		text := strings.ToLower(f.Text)
		return func(c *cards.Card[E, C]) bool {
			return strings.Contains(strings.ToLower(c.Description), text)
		}
	case KindRarity:
		rarity := f.Rarity
		return func(c *cards.Card[E, C]) bool { return c.Rarity == rarity }
	case KindTemple:
		temple := f.Temple
		return func(c *cards.Card[E, C]) bool { return c.Temple == temple }
	case KindTribe:
		if f.Tribe == nil {
			return func(c *cards.Card[E, C]) bool { return c.Tribes == "" }
		}
		tribe := strings.ToLower(*f.Tribe)
		return func(c *cards.Card[E, C]) bool {
			return c.Tribes != "" && strings.Contains(strings.ToLower(c.Tribes), tribe)
		}
	case KindAttack:
		cmp, value := f.Cmp, f.Value
		return func(c *cards.Card[E, C]) bool {
			return c.Attack.Kind == cards.AttackNum && cmp.Compare(c.Attack.Num, value)
		}
	case KindHealth:
		cmp, value := f.Cmp, f.Value
		return func(c *cards.Card[E, C]) bool { return cmp.Compare(c.Health, value) }
	case KindSigil:
		name := f.Text
		return func(c *cards.Card[E, C]) bool {
			return slices.ContainsFunc(c.Sigils, func(s string) bool {
				return strings.EqualFold(s, name)
			})
		}
	case KindSpAtk:
		sp := f.SpAtk
		return func(c *cards.Card[E, C]) bool {
			return c.Attack.Kind == cards.AttackSpecial && c.Attack.Special == sp
		}
	case KindStrAtk:
		text := f.Text
		return func(c *cards.Card[E, C]) bool {
			return c.Attack.Kind == cards.AttackText && c.Attack.Text == text
		}
	case KindCosts:
		if f.Costs == nil {
			return func(c *cards.Card[E, C]) bool { return c.Costs == nil }
		}
		costs := *f.Costs
		return func(c *cards.Card[E, C]) bool {
			return c.Costs != nil && c.Costs.Equal(costs)
		}
	case KindTraits:
		if f.Traits == nil {
			return func(c *cards.Card[E, C]) bool { return c.Traits == nil }
		}
		traits := *f.Traits
		return func(c *cards.Card[E, C]) bool {
			return c.Traits != nil && c.Traits.Equal(traits)
		}
	case KindOr:
		left, right := f.Left.Compile(), f.Right.Compile()
		return func(c *cards.Card[E, C]) bool { return left(c) || right(c) }
	case KindNot:
		inner := f.Left.Compile()
		return func(c *cards.Card[E, C]) bool { return !inner(c) }
	case KindExtra:
		if f.Extra != nil {
			return f.Extra.Compile()
		}
	}
	return func(*cards.Card[E, C]) bool { return false }
}

func (f Filter[E, C]) String() string {
	switch f.Kind {
	case KindName:
		return "name contains " + strconv.Quote(f.Text)
	case KindDescription:
		return "description contains " + strconv.Quote(f.Text)
	case KindRarity:
		return "rarity is " + f.Rarity.String()
	case KindTemple:
		return "temple is " + f.Temple.String()
	case KindTribe:
		if f.Tribe == nil {
			return "has no tribe"
		}
		return "tribe contains " + strconv.Quote(*f.Tribe)
	case KindAttack:
		return fmt.Sprintf("attack %s %d", f.Cmp, f.Value)
	case KindHealth:
		return fmt.Sprintf("health %s %d", f.Cmp, f.Value)
	case KindSigil:
		return "has sigil " + strconv.Quote(f.Text)
	case KindSpAtk:
		return "special attack is " + f.SpAtk.String()
	case KindStrAtk:
		return "attack is " + strconv.Quote(f.Text)
	case KindCosts:
		if f.Costs == nil {
			return "is free"
		}
		return fmt.Sprintf("costs %s", describeCosts(*f.Costs))
	case KindTraits:
		if f.Traits == nil {
			return "has no traits"
		}
		return "traits are " + describeTraits(*f.Traits)
	case KindOr:
		return fmt.Sprintf("(%s or %s)", f.Left, f.Right)
	case KindNot:
		return fmt.Sprintf("not %s", f.Left)
	case KindExtra:
		if f.Extra != nil {
			return f.Extra.String()
		}
	}
	return "unknown filter"
}

func describeCosts[C any](c cards.Costs[C]) string {
	var parts []string
	if c.Blood != 0 {
		parts = append(parts, fmt.Sprintf("%d blood", c.Blood))
	}
	if c.Bone != 0 {
		parts = append(parts, fmt.Sprintf("%d bone", c.Bone))
	}
	if c.Energy != 0 {
		parts = append(parts, fmt.Sprintf("%d energy", c.Energy))
	}
	if !c.Mox.IsEmpty() {
		parts = append(parts, "mox "+c.Mox.String())
	}
	if c.MoxCount != nil {
		parts = append(parts, fmt.Sprintf("mox count %+v", *c.MoxCount))
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}

func describeTraits(t cards.Traits) string {
	parts := slices.Clone(t.Strings)
	if !t.Flags.IsEmpty() {
		parts = append(parts, t.Flags.String())
	}
	return strings.Join(parts, ", ")
}

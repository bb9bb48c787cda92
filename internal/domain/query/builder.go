package query

import "github.com/magpietutor/magpie/internal/domain/cards"

// Result of a query. Cards point into the queried sets.
type Result[E, C any] struct {
	Cards   []*cards.Card[E, C]
	Filters []Filter[E, C]
}

// Builder accumulates sets and filters, all filters must match for a card to
// be selected.
type Builder[E, C any] struct {
	sets       []*cards.Set[E, C]
	filters    []Filter[E, C]
	predicates []Predicate[E, C]
}

func NewBuilder[E, C any](sets ...*cards.Set[E, C]) *Builder[E, C] {
	return &Builder[E, C]{sets: sets}
}

func (b *Builder[E, C]) AddSets(sets ...*cards.Set[E, C]) *Builder[E, C] {
	b.sets = append(b.sets, sets...)
	return b
}

// AddFilter compiles f right away and keeps f to report alongside the result.
func (b *Builder[E, C]) AddFilter(f Filter[E, C]) *Builder[E, C] {
	b.filters = append(b.filters, f)
	b.predicates = append(b.predicates, f.Compile())
	return b
}

func (b *Builder[E, C]) AddFilters(filters ...Filter[E, C]) *Builder[E, C] {
	for _, f := range filters {
		b.AddFilter(f)
	}
	return b
}

// Query scans every card of every set in order.
func (b *Builder[E, C]) Query() Result[E, C] {
	var matched []*cards.Card[E, C]
	for _, set := range b.sets {
		for i := range set.Cards {
			card := &set.Cards[i]
			if b.matches(card) {
				matched = append(matched, card)
			}
		}
	}
	return Result[E, C]{Cards: matched, Filters: b.filters}
}

func (b *Builder[E, C]) matches(card *cards.Card[E, C]) bool {
	for _, p := range b.predicates {
		if !p(card) {
			return false
		}
	}
	return true
}

// Evaluate returns the cards of sets matching every filter.
func Evaluate[E, C any](sets []*cards.Set[E, C], filters []Filter[E, C]) Result[E, C] {
	return NewBuilder(sets...).AddFilters(filters...).Query()
}

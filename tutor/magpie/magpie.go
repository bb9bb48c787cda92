// Package magpie holds the card variant the tutor works with. Every source
// format is upgraded into it after loading.
package magpie

import (
	"iter"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/domain/query"
)

// Ext is the extra card data the magpie variant carries.
type Ext struct {
	Artist string
}

// Costs is the extra cost data the magpie variant carries.
type Costs struct {
	ShatteredCount *cards.MoxCount
	Max            int
	Link           int
	Gold           int
}

type (
	Card    = cards.Card[Ext, Costs]
	Set     = cards.Set[Ext, Costs]
	Filter  = query.Filter[Ext, Costs]
	Builder = query.Builder[Ext, Costs]
	Result  = query.Result[Ext, Costs]
)

// Upgrade converts a set decoded from a plain source format.
func Upgrade(set *cards.Set[struct{}, struct{}]) *Set {
	return cards.UpgradeSet(set, func(c cards.Card[struct{}, struct{}]) Card {
		return cards.UpgradeCard(c,
			func(struct{}) Ext { return Ext{} },
			func(struct{}) Costs { return Costs{} },
		)
	})
}

// CostType is the set of cost kinds a card must have.
type CostType uint8

const (
	CostBlood CostType = 1 << iota
	CostBone
	CostEnergy
	CostMox
)

var costTypeLabels = []struct {
	flag  CostType
	label string
}{
	{CostBlood, "blood"},
	{CostBone, "bone"},
	{CostEnergy, "energy"},
	{CostMox, "mox"},
}

func (t CostType) Contains(other CostType) bool {
	return t&other == other
}

func (t CostType) Flags() iter.Seq[CostType] {
	return func(yield func(CostType) bool) {
		for _, entry := range costTypeLabels {
			if t.Contains(entry.flag) && !yield(entry.flag) {
				return
			}
		}
	}
}

func (t CostType) String() string {
	var names []string
	for _, entry := range costTypeLabels {
		if t.Contains(entry.flag) {
			names = append(names, entry.label)
		}
	}
	return strings.Join(names, " and ")
}

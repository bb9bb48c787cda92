package magpie

import (
	"strconv"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/domain/query"
	"github.com/magpietutor/magpie/tutor/fuzzy"
)

type FilterExtKind uint8

const (
	ExtFuzzy FilterExtKind = iota
	ExtCostType
)

// FilterExt are the filters the tutor adds on top of the built in ones.
type FilterExt struct {
	Kind     FilterExtKind
	Text     string
	CostType CostType
}

// Fuzzy matches cards whose name is close to text or contains it.
func Fuzzy(text string) Filter {
	return query.Extra[Ext, Costs](FilterExt{Kind: ExtFuzzy, Text: text})
}

// HasCostType matches cards that pay every kind of cost in t.
func HasCostType(t CostType) Filter {
	return query.Extra[Ext, Costs](FilterExt{Kind: ExtCostType, CostType: t})
}

func (f FilterExt) Compile() query.Predicate[Ext, Costs] {
	switch f.Kind {
	case ExtFuzzy:
		text := strings.ToLower(f.Text)
		return func(c *Card) bool {
			return fuzzy.Score(c.Name, text, fuzzy.DefaultThreshold) != 0 ||
				strings.Contains(strings.ToLower(c.Name), text)
		}
	case ExtCostType:
		want := f.CostType
		return func(c *Card) bool {
			if c.Costs == nil {
				return false
			}
			for kind := range want.Flags() {
				if !paysCost(c.Costs, kind) {
					return false
				}
			}
			return true
		}
	}
	return func(*Card) bool { return false }
}

func paysCost(costs *cards.Costs[Costs], kind CostType) bool {
	switch kind {
	case CostBlood:
		return costs.Blood != 0
	case CostBone:
		return costs.Bone != 0
	case CostEnergy:
		return costs.Energy != 0
	case CostMox:
		return !costs.Mox.IsEmpty()
	}
	return false
}

func (f FilterExt) String() string {
	switch f.Kind {
	case ExtFuzzy:
		return "name is like " + strconv.Quote(f.Text)
	case ExtCostType:
		return "costs " + f.CostType.String()
	}
	return "unknown filter"
}

package query

import (
	"reflect"
	"testing"

	"github.com/magpietutor/magpie/internal/domain/cards"
)

type (
	none   = struct{}
	card   = cards.Card[none, none]
	filter = Filter[none, none]
)

func strPtr(s string) *string { return &s }

var testSet = &cards.Set[none, none]{
	Code: cards.MustSetCode("tst"),
	Name: "Test",
	Cards: []card{
		{
			Name:        "Stoat",
			Description: "A cheerful little beast.",
			Rarity:      cards.RarityCommon,
			Temple:      cards.TempleBeast,
			Attack:      cards.NumAttack(1),
			Health:      3,
			Costs:       &cards.Costs[none]{Blood: 1},
		},
		{
			Name:    "Wolf",
			Rarity:  cards.RarityCommon,
			Temple:  cards.TempleBeast,
			Tribes:  "Canine",
			Attack:  cards.NumAttack(3),
			Health:  2,
			Sigils:  []string{"Fledgling"},
			Costs:   &cards.Costs[none]{Blood: 2},
			Related: []string{"Wolf Cub"},
		},
		{
			Name:   "Emerald Mox",
			Rarity: cards.RaritySide,
			Temple: cards.TempleMagick,
			Attack: cards.NumAttack(0),
			Health: 1,
			Sigils: []string{"Green Mox"},
			Traits: &cards.Traits{Flags: cards.TraitHard},
		},
		{
			Name:   "Mirror Tentacle",
			Rarity: cards.RarityRare,
			Temple: cards.TempleBeast,
			Attack: cards.SpecialAttack(cards.SpAtkMirror),
			Health: 3,
			Costs:  &cards.Costs[none]{Bone: 4},
		},
		{
			Name:   "Ruby Golem",
			Rarity: cards.RarityUncommon,
			Temple: cards.TempleMagick,
			Attack: cards.NumAttack(1),
			Health: 3,
			Costs:  &cards.Costs[none]{Mox: cards.MoxOrange | cards.MoxGreen, MoxCount: &cards.MoxCount{Orange: 3, Green: 2}},
		},
		{
			Name:   "Jester",
			Rarity: cards.RarityUnique,
			Temple: cards.TempleFool,
			Attack: cards.TextAttack("X"),
			Health: 1,
			Traits: &cards.Traits{Strings: []string{"Jester"}},
		},
	},
}

func names(result Result[none, none]) []string {
	out := make([]string, 0, len(result.Cards))
	for _, c := range result.Cards {
		out = append(out, c.Name)
	}
	return out
}

func TestFilterCompile(t *testing.T) {
	tests := []struct {
		name   string
		filter filter
		want   []string
	}{
		{name: "Name is case insensitive", filter: Name[none, none]("STOAT"), want: []string{"Stoat"}},
		{name: "Name substring", filter: Name[none, none]("mox"), want: []string{"Emerald Mox"}},
		{name: "Description", filter: Description[none, none]("little"), want: []string{"Stoat"}},
		{name: "Rarity", filter: Rarity[none, none](cards.RarityCommon), want: []string{"Stoat", "Wolf"}},
		{name: "Temple", filter: Temple[none, none](cards.TempleMagick), want: []string{"Emerald Mox", "Ruby Golem"}},
		{name: "Tribe", filter: Tribe[none, none](strPtr("canine")), want: []string{"Wolf"}},
		{name: "Tribeless", filter: Tribe[none, none](nil), want: []string{"Stoat", "Emerald Mox", "Mirror Tentacle", "Ruby Golem", "Jester"}},
		{name: "Attack greater", filter: Attack[none, none](Greater, 2), want: []string{"Wolf"}},
		{name: "Attack less equal skips special", filter: Attack[none, none](LessEqual, 1), want: []string{"Stoat", "Emerald Mox", "Ruby Golem"}},
		{name: "Health equal", filter: Health[none, none](Equal, 3), want: []string{"Stoat", "Mirror Tentacle", "Ruby Golem"}},
		{name: "Health less", filter: Health[none, none](Less, 2), want: []string{"Emerald Mox", "Jester"}},
		{name: "Sigil", filter: Sigil[none, none]("green mox"), want: []string{"Emerald Mox"}},
		{name: "Sigil is not substring", filter: Sigil[none, none]("green"), want: nil},
		{name: "Special attack", filter: SpAtk[none, none](cards.SpAtkMirror), want: []string{"Mirror Tentacle"}},
		{name: "Text attack", filter: StrAtk[none, none]("X"), want: []string{"Jester"}},
		{name: "Costs exact", filter: Costs[none, none](&cards.Costs[none]{Blood: 1}), want: []string{"Stoat"}},
		{
			name:   "Costs with mox count",
			filter: Costs[none, none](&cards.Costs[none]{Mox: cards.MoxOrange | cards.MoxGreen, MoxCount: &cards.MoxCount{Orange: 3, Green: 2}}),
			want:   []string{"Ruby Golem"},
		},
		{name: "Free", filter: Costs[none, none](nil), want: []string{"Emerald Mox", "Jester"}},
		{name: "Traits flags", filter: Traits[none, none](&cards.Traits{Flags: cards.TraitHard}), want: []string{"Emerald Mox"}},
		{name: "Traitless", filter: Traits[none, none](nil), want: []string{"Stoat", "Wolf", "Mirror Tentacle", "Ruby Golem"}},
		{
			name:   "Or",
			filter: Or(Name[none, none]("stoat"), Name[none, none]("wolf")),
			want:   []string{"Stoat", "Wolf"},
		},
		{
			name:   "Not",
			filter: Not(Temple[none, none](cards.TempleBeast)),
			want:   []string{"Emerald Mox", "Ruby Golem", "Jester"},
		},
		{
			name:   "Not traits on traitless card",
			filter: Not(Traits[none, none](&cards.Traits{Flags: cards.TraitHard})),
			want:   []string{"Stoat", "Wolf", "Mirror Tentacle", "Ruby Golem", "Jester"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(NewBuilder(testSet).AddFilter(tt.filter).Query())
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Query(%s) got = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestFilterLaws(t *testing.T) {
	filters := []filter{
		Name[none, none]("o"),
		Health[none, none](GreaterEqual, 3),
		Costs[none, none](nil),
		Sigil[none, none]("fledgling"),
	}

	for _, f := range filters {
		p, notP := f.Compile(), Not(f).Compile()
		for i := range testSet.Cards {
			c := &testSet.Cards[i]
			if p(c) == notP(c) {
				t.Errorf("Not(%s) agrees with %s on %s", f, f, c.Name)
			}
			if p(c) != f.Compile()(c) {
				t.Errorf("%s is not deterministic on %s", f, c.Name)
			}
		}
	}

	for _, a := range filters {
		for _, b := range filters {
			or := Or(a, b).Compile()
			pa, pb := a.Compile(), b.Compile()
			for i := range testSet.Cards {
				c := &testSet.Cards[i]
				if or(c) != (pa(c) || pb(c)) {
					t.Errorf("Or(%s, %s) disagrees with disjunction on %s", a, b, c.Name)
				}
			}
		}
	}
}

type nameLength int

func (n nameLength) Compile() Predicate[none, none] {
	return func(c *card) bool { return len(c.Name) == int(n) }
}

func (n nameLength) String() string { return "name length" }

func TestExtraFilter(t *testing.T) {
	got := names(NewBuilder(testSet).AddFilter(Extra[none, none](nameLength(4))).Query())
	want := []string{"Wolf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Query(Extra) got = %v, want %v", got, want)
	}
}

func TestExtraFilterWithoutExtension(t *testing.T) {
	f := Filter[none, none]{Kind: KindExtra}
	if got := names(NewBuilder(testSet).AddFilter(f).Query()); len(got) != 0 {
		t.Errorf("Query(empty Extra) got = %v, want nothing", got)
	}
	if got := f.String(); got != "unknown filter" {
		t.Errorf("String() = %q, want %q", got, "unknown filter")
	}
}

func TestFilterString(t *testing.T) {
	tests := []struct {
		filter filter
		want   string
	}{
		{Name[none, none]("stoat"), `name contains "stoat"`},
		{Attack[none, none](GreaterEqual, 2), "attack >= 2"},
		{Not(Tribe[none, none](nil)), "not has no tribe"},
		{Or(Rarity[none, none](cards.RarityRare), Temple[none, none](cards.TempleFool)), "(rarity is Rare or temple is Fool)"},
		{Costs[none, none](&cards.Costs[none]{Blood: 2, Mox: cards.MoxBlue}), "costs 2 blood, mox Blue"},
	}

	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.want {
			t.Errorf("Filter.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestOrderingCompare(t *testing.T) {
	tests := []struct {
		cmp  Ordering
		lhs  int
		rhs  int
		want bool
	}{
		{Greater, 3, 2, true},
		{Greater, 2, 2, false},
		{GreaterEqual, 2, 2, true},
		{Equal, 2, 2, true},
		{Equal, 1, 2, false},
		{LessEqual, 2, 2, true},
		{Less, 2, 2, false},
		{Less, 1, 2, true},
	}

	for _, tt := range tests {
		if got := tt.cmp.Compare(tt.lhs, tt.rhs); got != tt.want {
			t.Errorf("%d %s %d = %v, want %v", tt.lhs, tt.cmp, tt.rhs, got, tt.want)
		}
	}
}

package query

import (
	"reflect"
	"testing"

	"github.com/magpietutor/magpie/internal/domain/cards"
)

func TestBuilderQuery(t *testing.T) {
	other := &cards.Set[none, none]{
		Code:  cards.MustSetCode("oth"),
		Cards: []card{{Name: "Stoat King", Health: 5}},
	}

	tests := []struct {
		name    string
		sets    []*cards.Set[none, none]
		filters []filter
		want    []string
	}{
		{
			name: "No filters selects everything",
			sets: []*cards.Set[none, none]{testSet},
			want: []string{"Stoat", "Wolf", "Emerald Mox", "Mirror Tentacle", "Ruby Golem", "Jester"},
		},
		{
			name:    "Filters are conjunctive",
			sets:    []*cards.Set[none, none]{testSet},
			filters: []filter{Temple[none, none](cards.TempleBeast), Health[none, none](Equal, 3)},
			want:    []string{"Stoat", "Mirror Tentacle"},
		},
		{
			name:    "Sets are scanned in order",
			sets:    []*cards.Set[none, none]{other, testSet},
			filters: []filter{Name[none, none]("stoat")},
			want:    []string{"Stoat King", "Stoat"},
		},
		{
			name:    "No sets",
			filters: []filter{Name[none, none]("stoat")},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.sets, tt.filters)
			if got := names(result); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() got = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(result.Filters, tt.filters) {
				t.Errorf("Evaluate() filters = %v, want %v", result.Filters, tt.filters)
			}
		})
	}
}

func TestBuilderReturnsSetCards(t *testing.T) {
	result := NewBuilder(testSet).AddFilter(Name[none, none]("wolf")).Query()
	if len(result.Cards) != 1 {
		t.Fatalf("Query() returned %d cards", len(result.Cards))
	}
	if result.Cards[0] != &testSet.Cards[1] {
		t.Errorf("Query() copied the card instead of pointing into the set")
	}
}

func TestBuilderAddSets(t *testing.T) {
	b := NewBuilder[none, none]().AddSets(testSet).AddFilters(SpAtk[none, none](cards.SpAtkMirror))
	if got := names(b.Query()); !reflect.DeepEqual(got, []string{"Mirror Tentacle"}) {
		t.Errorf("Query() got = %v", got)
	}
}

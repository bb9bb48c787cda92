package dsl

import (
	"errors"
	"reflect"
	"testing"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/domain/query"
	"github.com/magpietutor/magpie/tutor/magpie"
)

func strPtr(s string) *string { return &s }

func TestCompile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []magpie.Filter
	}{
		{
			name:  "Name",
			input: "name:stoat",
			want:  []magpie.Filter{query.Name[ext, costExt]("stoat")},
		},
		{
			name:  "Description and sigil",
			input: `d:"draw a card" s:airborne`,
			want: []magpie.Filter{
				query.Description[ext, costExt]("draw a card"),
				query.Sigil[ext, costExt]("airborne"),
			},
		},
		{
			name:  "Rarity shorthand",
			input: "rarity:r r:side r:N",
			want: []magpie.Filter{
				query.Rarity[ext, costExt](cards.RarityRare),
				query.Rarity[ext, costExt](cards.RaritySide),
				query.Rarity[ext, costExt](cards.RarityUnique),
			},
		},
		{
			name:  "Temple",
			input: "tp:tech temple:Magick tp:a",
			want: []magpie.Filter{
				query.Temple[ext, costExt](cards.TempleTech),
				query.Temple[ext, costExt](cards.TempleMagick),
				query.Temple[ext, costExt](cards.TempleArtistry),
			},
		},
		{
			name:  "Tribe",
			input: "tribe:canine",
			want:  []magpie.Filter{query.Tribe[ext, costExt](strPtr("canine"))},
		},
		{
			name:  "Comparisons",
			input: "attack>1 health<=3",
			want: []magpie.Filter{
				query.Attack[ext, costExt](query.Greater, 1),
				query.Health[ext, costExt](query.LessEqual, 3),
			},
		},
		{
			name:  "Special attack",
			input: "sp:mirror",
			want:  []magpie.Filter{query.SpAtk[ext, costExt](cards.SpAtkMirror)},
		},
		{
			name:  "Blood cost",
			input: "c:2b",
			want:  []magpie.Filter{query.Costs[ext, costExt](&cards.Costs[magpie.Costs]{Blood: 2})},
		},
		{
			name:  "Default count",
			input: "c:b3o",
			want:  []magpie.Filter{query.Costs[ext, costExt](&cards.Costs[magpie.Costs]{Blood: 1, Bone: 3})},
		},
		{
			name:  "Mox with counts",
			input: "cost:3r2g",
			want: []magpie.Filter{query.Costs[ext, costExt](&cards.Costs[magpie.Costs]{
				Mox:      cards.MoxOrange | cards.MoxGreen,
				MoxCount: &cards.MoxCount{Orange: 3, Green: 2},
			})},
		},
		{
			name:  "Single mox",
			input: "c:ru",
			want: []magpie.Filter{query.Costs[ext, costExt](&cards.Costs[magpie.Costs]{
				Mox: cards.MoxOrange | cards.MoxBlue,
			})},
		},
		{
			name:  "Negative cost",
			input: "c:-1b",
			want:  []magpie.Filter{query.Costs[ext, costExt](&cards.Costs[magpie.Costs]{Blood: -1})},
		},
		{
			name:  "Repeated cost letter keeps the last count",
			input: "c:2b3b3r1r",
			want: []magpie.Filter{query.Costs[ext, costExt](&cards.Costs[magpie.Costs]{
				Blood: 3,
				Mox:   cards.MoxOrange,
			})},
		},
		{
			name:  "Free",
			input: "c:free",
			want:  []magpie.Filter{query.Costs[ext, costExt](nil)},
		},
		{
			name:  "Cost type",
			input: "ct:bm",
			want:  []magpie.Filter{magpie.HasCostType(magpie.CostBlood | magpie.CostMox)},
		},
		{
			name:  "Trait flag",
			input: "trait:hard",
			want:  []magpie.Filter{query.Traits[ext, costExt](&cards.Traits{Flags: cards.TraitHard})},
		},
		{
			name:  "Trait strings",
			input: `tr:"Scrap, Fused"`,
			want:  []magpie.Filter{query.Traits[ext, costExt](&cards.Traits{Strings: []string{"Scrap", "Fused"}})},
		},
		{
			name:  "Or and not",
			input: "!tp:beast or h:1",
			want: []magpie.Filter{query.Or(
				query.Not(query.Temple[ext, costExt](cards.TempleBeast)),
				query.Health[ext, costExt](query.Equal, 1),
			)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.input)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compile(%q) got = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  ErrorKind
		wantField string
		wantText  string
	}{
		{name: "Unknown rarity", input: "rarity:legendary", wantKind: Semantic, wantField: "rarity", wantText: "legendary"},
		{name: "Unknown temple", input: "tp:ocean", wantKind: Semantic, wantField: "temple", wantText: "ocean"},
		{name: "Unknown special attack", input: "sp:sword", wantKind: Semantic, wantField: "spatk", wantText: "sword"},
		{name: "Unknown cost letter", input: "c:2x", wantKind: Semantic, wantField: "cost", wantText: "2x"},
		{name: "Malformed cost", input: "c:2b3", wantKind: Semantic, wantField: "cost", wantText: "2b3"},
		{name: "Sign without count", input: "c:-b", wantKind: Semantic, wantField: "cost", wantText: "-b"},
		{name: "Unknown cost type", input: "ct:bq", wantKind: Semantic, wantField: "costtype", wantText: "bq"},
		{name: "Error inside or", input: "n:stoat or r:mythic", wantKind: Semantic, wantField: "rarity", wantText: "mythic"},
		{name: "Syntax", input: "n:stoat)", wantKind: Syntactic},
		{name: "Lexical", input: "n:stoat $", wantKind: Lexical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.input)
			if got != nil {
				t.Errorf("Compile(%q) returned partial filters %v", tt.input, got)
			}
			var qerr *Error
			if !errors.As(err, &qerr) {
				t.Fatalf("Compile(%q) error = %v, want *Error", tt.input, err)
			}
			if qerr.Kind != tt.wantKind {
				t.Errorf("Compile(%q) kind = %v, want %v", tt.input, qerr.Kind, tt.wantKind)
			}
			if tt.wantKind == Semantic && (qerr.Field != tt.wantField || qerr.Text != tt.wantText) {
				t.Errorf("Compile(%q) error = %q/%q, want %q/%q", tt.input, qerr.Field, qerr.Text, tt.wantField, tt.wantText)
			}
		})
	}
}

func TestCompileSuggestions(t *testing.T) {
	_, err := Compile("rarity:rar")
	var qerr *Error
	if !errors.As(err, &qerr) {
		t.Fatalf("Compile() error = %v, want *Error", err)
	}
	if !reflect.DeepEqual(qerr.Suggestions, []string{"rare"}) {
		t.Errorf("Compile() suggestions = %v, want [rare]", qerr.Suggestions)
	}
	if want := `invalid rarity "rar" (did you mean rare?)`; qerr.Error() != want {
		t.Errorf("Error() = %q, want %q", qerr.Error(), want)
	}
}

func TestCompileEvaluate(t *testing.T) {
	set := &magpie.Set{
		Code: cards.MustSetCode("com"),
		Cards: []magpie.Card{
			{Name: "Stoat", Temple: cards.TempleBeast, Attack: cards.NumAttack(1), Health: 3, Costs: &cards.Costs[magpie.Costs]{Blood: 1}},
			{Name: "Bat", Temple: cards.TempleUndead, Attack: cards.NumAttack(2), Health: 1, Sigils: []string{"Airborne"}, Costs: &cards.Costs[magpie.Costs]{Bone: 4}},
			{Name: "Emerald Mox", Temple: cards.TempleMagick, Health: 1, Traits: &cards.Traits{Flags: cards.TraitHard}},
			{Name: "Ruby Golem", Temple: cards.TempleMagick, Attack: cards.NumAttack(1), Health: 3, Costs: &cards.Costs[magpie.Costs]{
				Mox: cards.MoxOrange | cards.MoxGreen, MoxCount: &cards.MoxCount{Orange: 3, Green: 2},
			}},
		},
	}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Airborne", input: "s:airborne", want: []string{"Bat"}},
		{name: "Not hard", input: "!trait:hard", want: []string{"Stoat", "Bat", "Ruby Golem"}},
		{name: "Mox counts", input: "c:3r2g", want: []string{"Ruby Golem"}},
		{name: "Conjunction", input: "h:3 a:1 tp:beast", want: []string{"Stoat"}},
		{name: "Disjunction", input: "ct:o or ct:m", want: []string{"Bat", "Ruby Golem"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := Compile(tt.input)
			if err != nil {
				t.Fatalf("Compile(%q) error = %v", tt.input, err)
			}
			var got []string
			for _, c := range query.Evaluate([]*magpie.Set{set}, filters).Cards {
				got = append(got, c.Name)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%q) got = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

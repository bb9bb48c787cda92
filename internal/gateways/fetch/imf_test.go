package fetch

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/gateways/fetch/mock"
	"go.uber.org/mock/gomock"
)

var com = cards.MustSetCode("com")

func TestDecodeIMF(t *testing.T) {
	set, err := DecodeIMF(strings.NewReader(mock.IMFSet), com)
	if err != nil {
		t.Fatalf("DecodeIMF() error = %v", err)
	}
	if set.Name != "Competitive" || set.Code != com || len(set.Cards) != 4 {
		t.Fatalf("DecodeIMF() set = %s %s with %d cards", set.Code, set.Name, len(set.Cards))
	}

	tests := []struct {
		name string
		got  Card
		want Card
	}{
		{
			name: "Blood card",
			got:  set.Cards[0],
			want: Card{
				Set:         com,
				Name:        "Stoat",
				Description: "Fuzzy.",
				Portrait:    "https://github.com/107zxz/inscr-onln/raw/main/gfx/pixport/Stoat.png",
				Rarity:      cards.RarityCommon,
				Temple:      cards.TempleBeast,
				Attack:      cards.NumAttack(1),
				Health:      3,
				Costs:       &cards.Costs[struct{}]{Blood: 1},
			},
		},
		{
			name: "Rare bone card",
			got:  set.Cards[1],
			want: Card{
				Set:      com,
				Name:     "Bat",
				Portrait: "https://github.com/107zxz/inscr-onln/raw/main/gfx/pixport/Bat.png",
				Rarity:   cards.RarityRare,
				Temple:   cards.TempleUndead,
				Attack:   cards.NumAttack(2),
				Health:   1,
				Sigils:   []string{"Airborne"},
				Costs:    &cards.Costs[struct{}]{Bone: 4},
			},
		},
		{
			name: "Free card with traits and unknown sigil",
			got:  set.Cards[2],
			want: Card{
				Set:      com,
				Name:     "Emerald Mox",
				Portrait: "https://github.com/107zxz/inscr-onln/raw/main/gfx/pixport/Emerald%20Mox.png",
				Rarity:   cards.RarityCommon,
				Attack:   cards.NumAttack(0),
				Health:   1,
				Sigils:   []string{"Green Mox", cards.UndefinedSigil},
				Traits:   &cards.Traits{Flags: cards.TraitTerrain | cards.TraitHard},
			},
		},
		{
			name: "Mox card with special attack",
			got:  set.Cards[3],
			want: Card{
				Set:      com,
				Name:     "Ruby Golem",
				Portrait: "https://example.test/golem.png",
				Rarity:   cards.RarityCommon,
				Temple:   cards.TempleMagick,
				Attack:   cards.SpecialAttack(cards.SpAtkMirror),
				Health:   3,
				Costs:    &cards.Costs[struct{}]{Mox: cards.MoxOrange | cards.MoxGreen},
				Related:  []string{"Ruby Titan"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("DecodeIMF() card = %+v, want %+v", tt.got, tt.want)
			}
		})
	}

	for _, card := range set.Cards {
		for _, s := range card.Sigils {
			if _, ok := set.SigilsDescription[s]; !ok {
				t.Errorf("sigil %q of %s has no description", s, card.Name)
			}
		}
	}
}

func TestDecodeIMFErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "Invalid special attack",
			input:   `{"ruleset": "x", "cards": [{"name": "Odd", "attack": 0, "health": 1, "atkspecial": "sword"}], "sigils": {}}`,
			wantErr: ErrInvalidSpAtk,
		},
		{
			name:    "Invalid mox",
			input:   `{"ruleset": "x", "cards": [{"name": "Odd", "attack": 0, "health": 1, "mox_cost": ["Purple"]}], "sigils": {}}`,
			wantErr: ErrInvalidMox,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeIMF(strings.NewReader(tt.input), com)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeIMF() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := DecodeIMF(strings.NewReader("{"), com); err == nil {
		t.Errorf("DecodeIMF() error = nil for malformed json")
	}
}

func TestFetchIMF(t *testing.T) {
	src := mock.NewMockSource(gomock.NewController(t))
	src.EXPECT().
		Fetch(gomock.Any(), CompetitiveURL).
		Return(mock.Document(mock.IMFSet), nil)

	set, err := FetchIMF(context.Background(), src, CompetitiveURL, com)
	if err != nil {
		t.Fatalf("FetchIMF() error = %v", err)
	}
	if len(set.Cards) != 4 {
		t.Errorf("FetchIMF() cards = %d, want 4", len(set.Cards))
	}
}

func TestFetchIMFSourceError(t *testing.T) {
	src := mock.NewMockSource(gomock.NewController(t))
	src.EXPECT().
		Fetch(gomock.Any(), gomock.Any()).
		Return(nil, ErrUnexpectedStatus)

	if _, err := FetchIMF(context.Background(), src, CompetitiveURL, com); !errors.Is(err, ErrUnexpectedStatus) {
		t.Errorf("FetchIMF() error = %v, want %v", err, ErrUnexpectedStatus)
	}
}

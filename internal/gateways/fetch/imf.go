package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
)

// CompetitiveURL is the IMF competitive ruleset.
const CompetitiveURL = "https://raw.githubusercontent.com/107zxz/inscr-onln-ruleset/main/competitive.json"

const imfPortraitURL = "https://github.com/107zxz/inscr-onln/raw/main/gfx/pixport/%s.png"

type imfSet struct {
	Ruleset string            `json:"ruleset"`
	Cards   []imfCard         `json:"cards"`
	Sigils  map[string]string `json:"sigils"`
}

type imfCard struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Attack      int      `json:"attack"`
	Health      int      `json:"health"`
	Sigils      []string `json:"sigils"`
	AtkSpecial  string   `json:"atkspecial"`

	BloodCost  int      `json:"blood_cost"`
	BoneCost   int      `json:"bone_cost"`
	EnergyCost int      `json:"energy_cost"`
	MoxCost    []string `json:"mox_cost"`

	PixportURL string `json:"pixport_url"`

	Conduit  bool `json:"conduit"`
	Banned   bool `json:"banned"`
	Rare     bool `json:"rare"`
	NoSac    bool `json:"nosac"`
	NoHammer bool `json:"nohammer"`

	Evolution string `json:"evolution"`
	LeftHalf  string `json:"left_half"`
	RightHalf string `json:"right_half"`
}

var imfSpecialAttacks = map[string]cards.SpAtk{
	"mox":       cards.SpAtkMox,
	"green_mox": cards.SpAtkGreenMox,
	"mirror":    cards.SpAtkMirror,
	"ant":       cards.SpAtkAnt,
}

var imfMox = map[string]cards.Mox{
	"Orange": cards.MoxOrange,
	"Green":  cards.MoxGreen,
	"Blue":   cards.MoxBlue,
	"Gray":   cards.MoxGray,
}

// FetchIMF loads an IMF ruleset from location.
func FetchIMF(ctx context.Context, src Source, location string, code cards.SetCode) (*Set, error) {
	var raw imfSet
	if err := fetchJSON(ctx, src, location, &raw); err != nil {
		return nil, err
	}
	return convertIMF(raw, code)
}

// DecodeIMF reads an IMF ruleset document.
func DecodeIMF(r io.Reader, code cards.SetCode) (*Set, error) {
	var raw imfSet
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode imf set: %w", err)
	}
	return convertIMF(raw, code)
}

func convertIMF(raw imfSet, code cards.SetCode) (*Set, error) {
	sigils := make(map[string]string, len(raw.Sigils)+1)
	for name, desc := range raw.Sigils {
		sigils[name] = desc
	}

	set := &Set{
		Code:              code,
		Name:              raw.Ruleset,
		Cards:             make([]Card, 0, len(raw.Cards)),
		SigilsDescription: sigils,
	}

	for _, c := range raw.Cards {
		card, err := convertIMFCard(c, code, sigils)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", c.Name, err)
		}
		set.Cards = append(set.Cards, card)
	}
	return set, nil
}

func convertIMFCard(c imfCard, code cards.SetCode, sigils map[string]string) (Card, error) {
	card := Card{
		Set:         code,
		Name:        c.Name,
		Description: c.Description,
		Portrait:    c.PixportURL,
		Rarity:      cards.RarityCommon,
		Temple: cards.Temple(0).
			SetIf(cards.TempleBeast, c.BloodCost != 0).
			SetIf(cards.TempleUndead, c.BoneCost != 0).
			SetIf(cards.TempleTech, c.EnergyCost != 0).
			SetIf(cards.TempleMagick, len(c.MoxCost) != 0),
		Attack: cards.NumAttack(c.Attack),
		Health: c.Health,
	}
	if card.Portrait == "" {
		card.Portrait = fmt.Sprintf(imfPortraitURL, strings.ReplaceAll(c.Name, " ", "%20"))
	}
	if c.Rare {
		card.Rarity = cards.RarityRare
	}

	if c.AtkSpecial != "" {
		sp, ok := imfSpecialAttacks[c.AtkSpecial]
		if !ok {
			return Card{}, fmt.Errorf("%w: %s", ErrInvalidSpAtk, c.AtkSpecial)
		}
		card.Attack = cards.SpecialAttack(sp)
	}

	for _, s := range c.Sigils {
		card.Sigils = append(card.Sigils, sigilName(s, sigils))
	}

	if c.BloodCost > 0 || c.BoneCost > 0 || c.EnergyCost > 0 || len(c.MoxCost) > 0 {
		costs := &cards.Costs[struct{}]{
			Blood:  c.BloodCost,
			Bone:   c.BoneCost,
			Energy: c.EnergyCost,
		}
		for _, name := range c.MoxCost {
			mox, ok := imfMox[name]
			if !ok {
				return Card{}, fmt.Errorf("%w: %s", ErrInvalidMox, name)
			}
			costs.Mox |= mox
		}
		card.Costs = costs
	}

	flags := cards.TraitsFlag(0).
		SetIf(cards.TraitConductive, c.Conduit).
		SetIf(cards.TraitBan, c.Banned).
		SetIf(cards.TraitTerrain, c.NoSac).
		SetIf(cards.TraitHard, c.NoHammer)
	if !flags.IsEmpty() {
		card.Traits = &cards.Traits{Flags: flags}
	}

	for _, related := range []string{c.Evolution, c.LeftHalf, c.RightHalf} {
		if related != "" {
			card.Related = append(card.Related, related)
		}
	}
	return card, nil
}

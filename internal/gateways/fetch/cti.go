package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
)

const (
	CTICardsURL  = "https://opensheet.elk.sh/152SuTx1fVc4zsqL4_zVDPx69sd9vYWikc2Ce9Y5vhJE/1"
	CTISigilsURL = "https://opensheet.elk.sh/152SuTx1fVc4zsqL4_zVDPx69sd9vYWikc2Ce9Y5vhJE/2"
	CTISetName   = "Custom TCG Inscryption"
)

const ctiPortraitURL = "https://raw.githubusercontent.com/SaxbyMod/NotionAssets/main/Formats/Custom%%20TCG%%20Inscryption/Portraits/%s.png"

type ctiCard struct {
	Name        string `json:"Internal Name"`
	Description string `json:"Flavor"`
	Temple      string `json:"Temple"`
	Rarity      string `json:"Rarity"`
	Cost        string `json:"Cost"`
	Attack      string `json:"Power"`
	Health      string `json:"Health"`
	Token       string `json:"Token"`
	Sigil1      string `json:"Sigil 1"`
	Sigil2      string `json:"Sigil 2"`
	Sigil3      string `json:"Sigil 3"`
	Sigil4      string `json:"Sigil 4"`
}

type ctiSigil struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

var ctiRarities = map[string]cards.Rarity{
	"":                   cards.RarityCommon,
	"Common":             cards.RarityCommon,
	"Common (Joke Card)": cards.RarityCommon,
	"Uncommon":           cards.RarityUncommon,
	"Rare":               cards.RarityRare,
	"Talking":            cards.RarityUnique,
	"Deathcard":          cards.RarityUnique,
	"Side-Deck":          cards.RaritySide,
}

var ctiTemples = map[string]cards.Temple{
	"Beast":          cards.TempleBeast,
	"Undead":         cards.TempleUndead,
	"Tech":           cards.TempleTech,
	"Magicks":        cards.TempleMagick,
	"Terrain/Extras": 0,
}

var ctiMox = map[string]cards.Mox{
	"ruby":     cards.MoxOrange,
	"emerald":  cards.MoxGreen,
	"sapphire": cards.MoxBlue,
	"prism":    cards.MoxGray,
}

// FetchCTI loads the Custom TCG Inscryption sheets.
func FetchCTI(ctx context.Context, src Source, cardsLocation, sigilsLocation string, code cards.SetCode) (*Set, error) {
	var rawCards []ctiCard
	if err := fetchJSON(ctx, src, cardsLocation, &rawCards); err != nil {
		return nil, err
	}
	var rawSigils []ctiSigil
	if err := fetchJSON(ctx, src, sigilsLocation, &rawSigils); err != nil {
		return nil, err
	}
	return convertCTI(rawCards, rawSigils, code)
}

// DecodeCTI reads the card and sigil sheets of Custom TCG Inscryption.
func DecodeCTI(cardsDoc, sigilsDoc io.Reader, code cards.SetCode) (*Set, error) {
	var rawCards []ctiCard
	if err := json.NewDecoder(cardsDoc).Decode(&rawCards); err != nil {
		return nil, fmt.Errorf("failed to decode cti cards: %w", err)
	}
	var rawSigils []ctiSigil
	if err := json.NewDecoder(sigilsDoc).Decode(&rawSigils); err != nil {
		return nil, fmt.Errorf("failed to decode cti sigils: %w", err)
	}
	return convertCTI(rawCards, rawSigils, code)
}

func convertCTI(rawCards []ctiCard, rawSigils []ctiSigil, code cards.SetCode) (*Set, error) {
	sigils := make(map[string]string, len(rawSigils)+1)
	for _, s := range rawSigils {
		sigils[s.Name] = strings.ReplaceAll(s.Description, "\n", "")
	}

	set := &Set{
		Code:              code,
		Name:              CTISetName,
		Cards:             make([]Card, 0, len(rawCards)),
		SigilsDescription: sigils,
	}
	for _, c := range rawCards {
		card, err := convertCTICard(c, code, sigils)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", c.Name, err)
		}
		set.Cards = append(set.Cards, card)
	}
	return set, nil
}

func convertCTICard(c ctiCard, code cards.SetCode, sigils map[string]string) (Card, error) {
	rarity, ok := ctiRarities[c.Rarity]
	if !ok {
		return Card{}, fmt.Errorf("%w: %s", ErrUnknownRarity, c.Rarity)
	}
	temple, ok := ctiTemples[c.Temple]
	if !ok {
		return Card{}, fmt.Errorf("%w: %s", ErrUnknownTemple, c.Temple)
	}
	costs, err := parseCTICost(c.Cost)
	if err != nil {
		return Card{}, err
	}

	attack, _ := strconv.Atoi(strings.TrimSpace(c.Attack))
	health, _ := strconv.Atoi(strings.TrimSpace(c.Health))

	card := Card{
		Set:         code,
		Name:        c.Name,
		Description: c.Description,
		Portrait:    fmt.Sprintf(ctiPortraitURL, strings.ReplaceAll(c.Name, " ", "%20")),
		Rarity:      rarity,
		Temple:      temple,
		Attack:      cards.NumAttack(attack),
		Health:      health,
		Costs:       costs,
	}

	for _, s := range []string{c.Sigil1, c.Sigil2, c.Sigil3, c.Sigil4} {
		if s != "" {
			card.Sigils = append(card.Sigils, sigilName(s, sigils))
		}
	}
	if c.Token != "" {
		card.Related = strings.Split(c.Token, ", ")
	}
	return card, nil
}

// parseCTICost reads costs such as "2 Blood, 1 Ruby". Free cards have no
// costs.
func parseCTICost(raw string) (*cards.Costs[struct{}], error) {
	if raw == "" || raw == "Free" {
		return nil, nil
	}

	var costs cards.Costs[struct{}]
	var counts cards.MoxCount
	text := strings.ReplaceAll(strings.ToLower(raw), "bones", "bone")
	for _, part := range strings.Split(text, ", ") {
		fields := strings.Fields(part)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCost, raw)
		}
		count, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCost, raw)
		}

		switch kind := fields[1]; kind {
		case "blood":
			costs.Blood += count
		case "bone":
			costs.Bone += count
		case "energy":
			costs.Energy += count
		default:
			mox, ok := ctiMox[kind]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownCost, kind)
			}
			costs.Mox |= mox
			counts.Add(mox, count)
		}
	}

	if counts.Multiple() {
		costs.MoxCount = &counts
	}
	return &costs, nil
}

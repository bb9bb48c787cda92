package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/tutor/magpie"
)

// FormatCosts renders costs as "2 Blood, 1 Bone, Mox: Orange x3".
func FormatCosts(costs *cards.Costs[magpie.Costs]) string {
	if costs == nil {
		return "Free"
	}

	var parts []string
	appendCost := func(n int, label string) {
		if n != 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	appendCost(costs.Blood, "Blood")
	appendCost(costs.Bone, "Bone")
	appendCost(costs.Energy, "Energy")
	appendCost(costs.Extra.Max, "Max")
	appendCost(costs.Extra.Link, "Link")
	appendCost(costs.Extra.Gold, "Gold")

	if !costs.Mox.IsEmpty() {
		var mox []string
		for color := range costs.Mox.Flags() {
			label := color.String()
			if n := moxCount(costs.MoxCount, color); n > 1 {
				label = fmt.Sprintf("%s x%d", label, n)
			}
			mox = append(mox, label)
		}
		parts = append(parts, "Mox: "+strings.Join(mox, " "))
	}

	if len(parts) == 0 {
		return "Free"
	}
	return strings.Join(parts, ", ")
}

func moxCount(count *cards.MoxCount, color cards.Mox) int {
	if count == nil {
		return 1
	}
	switch color {
	case cards.MoxOrange:
		return count.Orange
	case cards.MoxGreen:
		return count.Green
	case cards.MoxBlue:
		return count.Blue
	case cards.MoxGray:
		return count.Gray
	}
	return 1
}

// FormatCard renders a card as plain text. compact drops the description
// and sigil texts.
func FormatCard(card *magpie.Card, set *magpie.Set, compact bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)", card.Name, set.Name)
	if card.Traits != nil && !card.Traits.Flags.IsEmpty() {
		fmt.Fprintf(&b, " [%s]", card.Traits.Flags)
	}
	b.WriteString("\n")

	if card.Description != "" && !compact {
		fmt.Fprintf(&b, "%s\n", card.Description)
	}

	fmt.Fprintf(&b, "Rarity: %s", card.Rarity)
	if !card.Temple.IsEmpty() {
		fmt.Fprintf(&b, " | Temple: %s", card.Temple)
	}
	if card.Tribes != "" {
		fmt.Fprintf(&b, " | Tribe: %s", card.Tribes)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Cost: %s\n", FormatCosts(card.Costs))
	fmt.Fprintf(&b, "Stat: %s / %d\n", card.Attack, card.Health)

	if len(card.Sigils) > 0 {
		if compact {
			fmt.Fprintf(&b, "Sigils: %s\n", strings.Join(card.Sigils, ", "))
		} else {
			b.WriteString("Sigils:\n")
			for _, s := range card.Sigils {
				fmt.Fprintf(&b, "  %s: %s\n", s, set.SigilDescription(s))
			}
		}
	}

	if card.Traits != nil && len(card.Traits.Strings) > 0 {
		fmt.Fprintf(&b, "Traits: %s\n", strings.Join(card.Traits.Strings, ", "))
	}
	if len(card.Related) > 0 {
		fmt.Fprintf(&b, "Related: %s\n", strings.Join(card.Related, ", "))
	}
	if card.Extra.Artist != "" && !compact {
		fmt.Fprintf(&b, "Artist: %s\n", card.Extra.Artist)
	}
	return b.String()
}

// BuildFilterDescription creates a formatted block of the filters a query
// was compiled to
func BuildFilterDescription(filters []magpie.Filter) string {
	if len(filters) == 0 {
		return ""
	}

	lines := make([]string, 0, len(filters))
	for _, f := range filters {
		lines = append(lines, f.String())
	}
	return "# Active Filters\n* " + strings.Join(lines, "\n* ") + "\n"
}

// Truncate cuts text to at most limit bytes, on a line boundary when there
// is one and on a rune boundary otherwise.
func Truncate(text string, limit int) (string, bool) {
	if limit <= 0 || len(text) <= limit {
		return text, false
	}
	cut := strings.LastIndex(text[:limit], "\n")
	if cut <= 0 {
		cut = limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
	}
	return text[:cut], true
}

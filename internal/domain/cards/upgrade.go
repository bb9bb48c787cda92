package cards

// UpgradeCard converts a card into another variant, mapping its extra data
// with extra and the extra cost data with costs. Every other attribute is
// carried over unchanged.
func UpgradeCard[E1, C1, E2, C2 any](card Card[E1, C1], extra func(E1) E2, costs func(C1) C2) Card[E2, C2] {
	var upgraded *Costs[C2]
	if card.Costs != nil {
		upgraded = &Costs[C2]{
			Blood:    card.Costs.Blood,
			Bone:     card.Costs.Bone,
			Energy:   card.Costs.Energy,
			Mox:      card.Costs.Mox,
			MoxCount: card.Costs.MoxCount,
			Extra:    costs(card.Costs.Extra),
		}
	}

	return Card[E2, C2]{
		Set:         card.Set,
		Name:        card.Name,
		Description: card.Description,
		Portrait:    card.Portrait,
		Rarity:      card.Rarity,
		Temple:      card.Temple,
		Tribes:      card.Tribes,
		Attack:      card.Attack,
		Health:      card.Health,
		Sigils:      card.Sigils,
		Costs:       upgraded,
		Traits:      card.Traits,
		Related:     card.Related,
		Extra:       extra(card.Extra),
	}
}

// UpgradeSet converts every card of a set with convert.
func UpgradeSet[E1, C1, E2, C2 any](set *Set[E1, C1], convert func(Card[E1, C1]) Card[E2, C2]) *Set[E2, C2] {
	upgraded := &Set[E2, C2]{
		Code:              set.Code,
		Name:              set.Name,
		Cards:             make([]Card[E2, C2], 0, len(set.Cards)),
		SigilsDescription: set.SigilsDescription,
	}
	for _, card := range set.Cards {
		upgraded.Cards = append(upgraded.Cards, convert(card))
	}
	return upgraded
}

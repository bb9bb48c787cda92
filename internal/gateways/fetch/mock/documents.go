package mock

import (
	"io"
	"strings"
)

// Document wraps raw JSON as a fetched body.
func Document(raw string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(raw))
}

const IMFSet = `{
	"ruleset": "Competitive",
	"cards": [
		{"name": "Stoat", "description": "Fuzzy.", "attack": 1, "health": 3, "blood_cost": 1},
		{"name": "Bat", "attack": 2, "health": 1, "bone_cost": 4, "sigils": ["Airborne"], "rare": true},
		{"name": "Emerald Mox", "attack": 0, "health": 1, "sigils": ["Green Mox", "Mystery"], "nohammer": true, "nosac": true},
		{"name": "Ruby Golem", "attack": 1, "health": 3, "mox_cost": ["Orange", "Green"], "atkspecial": "mirror", "evolution": "Ruby Titan", "pixport_url": "https://example.test/golem.png"}
	],
	"sigils": {
		"Airborne": "Flies over opposing cards.",
		"Green Mox": "Provides a green gem."
	}
}`

const CTICards = `[
	{"Internal Name": "Wolf", "Flavor": "A hungry canine.", "Temple": "Beast", "Rarity": "Common", "Cost": "2 Blood", "Power": "3", "Health": "2", "Token": "Wolf Cub", "Sigil 1": "", "Sigil 2": "", "Sigil 3": "", "Sigil 4": ""},
	{"Internal Name": "Bone Lord", "Flavor": "", "Temple": "Undead", "Rarity": "Talking", "Cost": "5 Bones, 1 Energy", "Power": "X", "Health": "4", "Token": "", "Sigil 1": "Brittle", "Sigil 2": "Gone", "Sigil 3": "", "Sigil 4": ""},
	{"Internal Name": "Gem Crab", "Flavor": "", "Temple": "Magicks", "Rarity": "Uncommon", "Cost": "3 Ruby, 1 Emerald", "Power": "1", "Health": "1", "Token": "", "Sigil 1": "", "Sigil 2": "", "Sigil 3": "", "Sigil 4": ""},
	{"Internal Name": "Boulder", "Flavor": "", "Temple": "Terrain/Extras", "Rarity": "Side-Deck", "Cost": "Free", "Power": "0", "Health": "5", "Token": "", "Sigil 1": "", "Sigil 2": "", "Sigil 3": "", "Sigil 4": ""}
]`

const CTISigils = `[
	{"Name": "Brittle", "Description": "Dies after\nattacking."}
]`

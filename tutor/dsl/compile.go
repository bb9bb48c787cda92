package dsl

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/magpietutor/magpie/internal/domain/cards"
	"github.com/magpietutor/magpie/internal/domain/query"
	"github.com/magpietutor/magpie/tutor/fuzzy"
	"github.com/magpietutor/magpie/tutor/magpie"
)

const maxSuggestions = 3

type (
	ext     = magpie.Ext
	costExt = magpie.Costs
)

var rarities = []struct {
	words  []string
	rarity cards.Rarity
}{
	{[]string{"side", "s"}, cards.RaritySide},
	{[]string{"common", "c"}, cards.RarityCommon},
	{[]string{"uncommon", "u"}, cards.RarityUncommon},
	{[]string{"rare", "r"}, cards.RarityRare},
	{[]string{"unique", "n"}, cards.RarityUnique},
}

var temples = []struct {
	words  []string
	temple cards.Temple
}{
	{[]string{"beast", "b"}, cards.TempleBeast},
	{[]string{"undead", "u"}, cards.TempleUndead},
	{[]string{"technology", "tech", "t"}, cards.TempleTech},
	{[]string{"magick", "m"}, cards.TempleMagick},
	{[]string{"fool", "f"}, cards.TempleFool},
	{[]string{"artistry", "a"}, cards.TempleArtistry},
}

var specialAttacks = []struct {
	word  string
	spAtk cards.SpAtk
}{
	{"mox", cards.SpAtkMox},
	{"green", cards.SpAtkGreenMox},
	{"mirror", cards.SpAtkMirror},
	{"ant", cards.SpAtkAnt},
	{"bone", cards.SpAtkBone},
	{"bell", cards.SpAtkBell},
	{"card", cards.SpAtkCard},
}

var traitFlags = []struct {
	word string
	flag cards.TraitsFlag
}{
	{"conductive", cards.TraitConductive},
	{"ban", cards.TraitBan},
	{"terrain", cards.TraitTerrain},
	{"hard", cards.TraitHard},
}

var costMox = map[byte]cards.Mox{
	'r': cards.MoxOrange,
	'g': cards.MoxGreen,
	'u': cards.MoxBlue,
	'y': cards.MoxGray,
}

var costTypes = map[rune]magpie.CostType{
	'b': magpie.CostBlood,
	'o': magpie.CostBone,
	'e': magpie.CostEnergy,
	'm': magpie.CostMox,
}

var (
	costRegex      = regexp.MustCompile(`(-?\d*)([a-z])`)
	costShapeRegex = regexp.MustCompile(`^(?:-?\d*[a-z])+$`)
)

// Compile lexes, parses and compiles a query into filters. The first error
// encountered is returned.
func Compile(text string) ([]magpie.Filter, error) {
	tokens, err := Lex(text)
	if err != nil {
		return nil, err
	}
	program, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	filters := make([]magpie.Filter, 0, len(program))
	for _, kw := range program {
		f, err := CompileKeyword(kw)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// CompileKeyword turns a single term into a filter.
func CompileKeyword(kw Keyword) (magpie.Filter, error) {
	switch kw.Kind {
	case KeywordName:
		return query.Name[ext, costExt](kw.Value), nil
	case KeywordDesc:
		return query.Description[ext, costExt](kw.Value), nil
	case KeywordRarity:
		return compileRarity(kw.Value)
	case KeywordTemple:
		return compileTemple(kw.Value)
	case KeywordTribe:
		tribe := kw.Value
		return query.Tribe[ext, costExt](&tribe), nil
	case KeywordAttack:
		return query.Attack[ext, costExt](kw.Cmp, kw.Num), nil
	case KeywordHealth:
		return query.Health[ext, costExt](kw.Cmp, kw.Num), nil
	case KeywordSigil:
		return query.Sigil[ext, costExt](kw.Value), nil
	case KeywordSpAtk:
		return compileSpAtk(kw.Value)
	case KeywordCosts:
		return compileCosts(kw.Value)
	case KeywordCostType:
		return compileCostType(kw.Value)
	case KeywordTrait:
		return compileTraits(kw.Value), nil
	case KeywordOr:
		left, err := CompileKeyword(*kw.Left)
		if err != nil {
			return magpie.Filter{}, err
		}
		right, err := CompileKeyword(*kw.Right)
		if err != nil {
			return magpie.Filter{}, err
		}
		return query.Or(left, right), nil
	case KeywordNot:
		inner, err := CompileKeyword(*kw.Left)
		if err != nil {
			return magpie.Filter{}, err
		}
		return query.Not(inner), nil
	}
	return magpie.Filter{}, semantic("keyword", kw.Kind.String(), "unsupported keyword")
}

func compileRarity(value string) (magpie.Filter, error) {
	word := strings.ToLower(value)
	var vocabulary []string
	for _, r := range rarities {
		for _, w := range r.words {
			if w == word {
				return query.Rarity[ext, costExt](r.rarity), nil
			}
		}
		vocabulary = append(vocabulary, r.words[0])
	}
	return magpie.Filter{}, withSuggestions(semantic("rarity", value, ""), word, vocabulary)
}

func compileTemple(value string) (magpie.Filter, error) {
	word := strings.ToLower(value)
	var vocabulary []string
	for _, t := range temples {
		for _, w := range t.words {
			if w == word {
				return query.Temple[ext, costExt](t.temple), nil
			}
		}
		vocabulary = append(vocabulary, t.words[0])
	}
	return magpie.Filter{}, withSuggestions(semantic("temple", value, ""), word, vocabulary)
}

func compileSpAtk(value string) (magpie.Filter, error) {
	word := strings.ToLower(value)
	vocabulary := make([]string, 0, len(specialAttacks))
	for _, sp := range specialAttacks {
		if sp.word == word {
			return query.SpAtk[ext, costExt](sp.spAtk), nil
		}
		vocabulary = append(vocabulary, sp.word)
	}
	return magpie.Filter{}, withSuggestions(semantic("spatk", value, ""), word, vocabulary)
}

// compileCosts reads shorthand such as 2b, 3o1e, 3r2g or -1b. A count
// defaults to one and a repeated letter keeps its last count.
func compileCosts(value string) (magpie.Filter, error) {
	text := strings.ToLower(value)
	if text == "free" {
		return query.Costs[ext, costExt](nil), nil
	}
	if !costShapeRegex.MatchString(text) {
		return magpie.Filter{}, semantic("cost", value, "expected pairs of count and cost letter")
	}

	var costs cards.Costs[magpie.Costs]
	var counts cards.MoxCount
	for _, m := range costRegex.FindAllStringSubmatch(text, -1) {
		count := 1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return magpie.Filter{}, semantic("cost", value, "count out of range")
			}
			count = n
		}

		switch letter := m[2][0]; letter {
		case 'b':
			costs.Blood = count
		case 'o':
			costs.Bone = count
		case 'e':
			costs.Energy = count
		default:
			mox, ok := costMox[letter]
			if !ok {
				return magpie.Filter{}, semantic("cost", m[0], "unknown cost letter, use b, o, e, r, g, u or y")
			}
			costs.Mox |= mox
			counts.Set(mox, count)
		}
	}

	if counts.Multiple() {
		costs.MoxCount = &counts
	}
	return query.Costs[ext, costExt](&costs), nil
}

func compileCostType(value string) (magpie.Filter, error) {
	var t magpie.CostType
	for _, letter := range strings.ToLower(value) {
		kind, ok := costTypes[letter]
		if !ok {
			return magpie.Filter{}, semantic("costtype", value, "unknown cost type "+strconv.QuoteRune(letter)+", use b, o, e or m")
		}
		t |= kind
	}
	return magpie.HasCostType(t), nil
}

func compileTraits(value string) magpie.Filter {
	word := strings.ToLower(value)
	for _, tf := range traitFlags {
		if tf.word == word {
			return query.Traits[ext, costExt](&cards.Traits{Flags: tf.flag})
		}
	}

	var strs []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			strs = append(strs, part)
		}
	}
	return query.Traits[ext, costExt](&cards.Traits{Strings: strs})
}

func withSuggestions(err *Error, input string, vocabulary []string) *Error {
	err.Suggestions = fuzzy.Suggest(input, vocabulary, maxSuggestions)
	return err
}

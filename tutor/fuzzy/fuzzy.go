package fuzzy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
)

// DefaultThreshold is the similarity a name needs to count as a match.
const DefaultThreshold = 0.5

// Match is a scored candidate.
type Match[T any] struct {
	Item  T
	Index int
	Score float64
}

// Levenshtein returns the edit distance between a and b counted in runes.
func Levenshtein(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// Similarity is the normalized, case insensitive Levenshtein similarity of a
// and b in [0, 1].
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	return float64(longest-Levenshtein(a, b)) / float64(longest)
}

// Score is Similarity with anything below threshold reported as 0.
func Score(a, b string, threshold float64) float64 {
	s := Similarity(a, b)
	if s < threshold {
		return 0
	}
	return s
}

// Best returns the candidate whose key scores highest against query. On ties
// the earliest candidate wins. An empty query never matches.
func Best[T any](query string, items []T, threshold float64, key func(T) string) (Match[T], bool) {
	var best Match[T]
	found := false
	if query == "" {
		return best, false
	}

	for i, item := range items {
		score := Score(key(item), query, threshold)
		if score > 0 && (!found || score > best.Score) {
			best = Match[T]{Item: item, Index: i, Score: score}
			found = true
		}
	}
	return best, found
}

// Rank returns every candidate scoring above threshold, best first.
func Rank[T any](query string, items []T, threshold float64, key func(T) string) []Match[T] {
	if query == "" {
		return nil
	}

	var matches []Match[T]
	for i, item := range items {
		if score := Score(key(item), query, threshold); score > 0 {
			matches = append(matches, Match[T]{Item: item, Index: i, Score: score})
		}
	}
	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

// Suggest returns up to limit words of vocabulary that contain the letters of
// input in order, falling back to the closest words by edit distance.
func Suggest(input string, vocabulary []string, limit int) []string {
	if input == "" || limit <= 0 {
		return nil
	}

	var suggestions []string
	for _, m := range fuzzy.Find(strings.ToLower(input), vocabulary) {
		if len(suggestions) == limit {
			return suggestions
		}
		suggestions = append(suggestions, m.Str)
	}
	if len(suggestions) > 0 {
		return suggestions
	}

	for _, m := range Rank(input, vocabulary, DefaultThreshold, func(s string) string { return s }) {
		if len(suggestions) == limit {
			break
		}
		suggestions = append(suggestions, m.Item)
	}
	return suggestions
}

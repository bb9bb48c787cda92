package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/magpietutor/magpie/internal/domain/query"
	"github.com/magpietutor/magpie/tutor/dsl"
	"github.com/magpietutor/magpie/tutor/fuzzy"
	"github.com/magpietutor/magpie/tutor/logger"
	"github.com/magpietutor/magpie/tutor/magpie"
	"github.com/magpietutor/magpie/tutor/utils"
)

const (
	maxSuggestions  = 3
	defaultCacheLen = 256
)

var (
	ErrNoMatch = errors.New("no card matched")
	ErrNoSets  = errors.New("no set to search")
)

type SearchMode uint8

const (
	ModeFuzzy SearchMode = iota
	ModeQuery
)

func (m SearchMode) String() string {
	if m == ModeQuery {
		return "query"
	}
	return "fuzzy"
}

// SearchOptions tunes a SearchService. Zero values fall back to defaults.
type SearchOptions struct {
	Threshold  float64
	MaxResults int
	MaxChars   int
	CacheSize  int
	DefaultSet string
}

// Match is a card found by a search along with the set it came from.
type Match struct {
	Card  *magpie.Card
	Set   *magpie.Set
	Score float64
}

// SearchResponse is the outcome of a single request. Err is set when nothing
// could be shown for the request.
type SearchResponse struct {
	Request     utils.SearchRequest
	Mode        SearchMode
	Sets        []*magpie.Set
	UnknownSets []string
	Matches     []Match
	Filters     []magpie.Filter
	Suggestions []string
	// Truncated counts the matches dropped past MaxResults.
	Truncated int
	Err       error
}

// SearchService answers search requests against a loaded registry.
type SearchService struct {
	registry *Registry
	opts     SearchOptions
	// cache maps a query term to its compiled filters.
	cache *lru.Cache
}

func NewSearchService(registry *Registry, opts SearchOptions) *SearchService {
	if opts.Threshold <= 0 {
		opts.Threshold = fuzzy.DefaultThreshold
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = defaultCacheLen
	}
	cache, _ := lru.New(opts.CacheSize)
	return &SearchService{
		registry: registry,
		opts:     opts,
		cache:    cache,
	}
}

// SearchMessage answers every request found in text.
func (s *SearchService) SearchMessage(ctx context.Context, text string) []SearchResponse {
	requests := utils.ParseSearchMessage(text)
	responses := make([]SearchResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, s.Search(ctx, req))
	}
	return responses
}

func (s *SearchService) Search(ctx context.Context, req utils.SearchRequest) SearchResponse {
	start := time.Now()
	resp := SearchResponse{Request: req, Mode: ModeFuzzy}
	if req.QueryMode() {
		resp.Mode = ModeQuery
	}

	defer func() {
		logger.LogSearch(req.Raw, len(resp.Matches), time.Since(start), resp.Err)
	}()

	if err := ctx.Err(); err != nil {
		resp.Err = err
		return resp
	}

	resp.Sets, resp.UnknownSets = s.resolveSets(req)
	if len(resp.Sets) == 0 {
		resp.Err = ErrNoSets
		return resp
	}

	if resp.Mode == ModeQuery {
		s.searchQuery(&resp)
	} else {
		s.searchFuzzy(&resp)
	}
	return resp
}

// resolveSets picks the sets a request searches. Unknown codes are reported
// and skipped, and the default set is used when nothing valid is left.
func (s *SearchService) resolveSets(req utils.SearchRequest) ([]*magpie.Set, []string) {
	if req.AllSets() {
		return s.registry.All(), nil
	}

	var (
		sets    []*magpie.Set
		unknown []string
		seen    = make(map[string]bool)
	)
	for _, code := range req.SetCodes {
		if seen[code] {
			continue
		}
		seen[code] = true
		if set, ok := s.registry.Get(code); ok {
			sets = append(sets, set)
		} else {
			unknown = append(unknown, code)
		}
	}
	if len(sets) > 0 {
		return sets, unknown
	}

	if set, ok := s.registry.Get(s.opts.DefaultSet); ok {
		return []*magpie.Set{set}, unknown
	}
	if all := s.registry.All(); len(all) > 0 {
		return all[:1], unknown
	}
	return nil, unknown
}

func (s *SearchService) searchFuzzy(resp *SearchResponse) {
	term := resp.Request.Term
	for _, set := range resp.Sets {
		m, ok := fuzzy.Best(term, set.Cards, s.opts.Threshold, cardName)
		if !ok {
			continue
		}
		resp.Matches = append(resp.Matches, Match{
			Card:  &set.Cards[m.Index],
			Set:   set,
			Score: m.Score,
		})
	}
	if len(resp.Matches) > 0 {
		return
	}

	resp.Err = fmt.Errorf("%w: %q", ErrNoMatch, term)
	var names []string
	for _, set := range resp.Sets {
		for _, card := range set.Cards {
			names = append(names, card.Name)
		}
	}
	seen := make(map[string]bool)
	for _, m := range fuzzy.Rank(term, names, s.opts.Threshold/2, func(n string) string { return n }) {
		if len(resp.Suggestions) == maxSuggestions {
			break
		}
		if !seen[m.Item] {
			seen[m.Item] = true
			resp.Suggestions = append(resp.Suggestions, m.Item)
		}
	}
}

func (s *SearchService) searchQuery(resp *SearchResponse) {
	filters, err := s.compile(resp.Request.Term)
	if err != nil {
		resp.Err = err
		return
	}
	resp.Filters = filters

	// One builder per set keeps every match paired with the set holding it.
	for _, set := range resp.Sets {
		result := query.NewBuilder(set).AddFilters(filters...).Query()
		for _, card := range result.Cards {
			resp.Matches = append(resp.Matches, Match{Card: card, Set: set, Score: 1})
		}
	}

	if len(resp.Matches) == 0 {
		resp.Err = fmt.Errorf("%w: %q", ErrNoMatch, resp.Request.Term)
		return
	}
	if s.opts.MaxResults > 0 && len(resp.Matches) > s.opts.MaxResults {
		resp.Truncated = len(resp.Matches) - s.opts.MaxResults
		resp.Matches = resp.Matches[:s.opts.MaxResults]
	}
}

// compile turns a query term into filters. A term without any field is
// treated as a fuzzy name search.
func (s *SearchService) compile(term string) ([]magpie.Filter, error) {
	if cached, ok := s.cache.Get(term); ok {
		return cached.([]magpie.Filter), nil
	}

	tokens, err := dsl.Lex(term)
	if err != nil {
		return nil, err
	}

	var filters []magpie.Filter
	if dsl.IsFreeText(tokens) {
		filters = []magpie.Filter{magpie.Fuzzy(term)}
	} else if filters, err = dsl.Compile(term); err != nil {
		return nil, err
	}

	s.cache.Add(term, filters)
	return filters, nil
}

// Render formats a response as text, cut to MaxChars.
func (s *SearchService) Render(resp SearchResponse) string {
	var b strings.Builder

	for _, code := range resp.UnknownSets {
		fmt.Fprintf(&b, "Unknown set %q, searching the default set instead.\n", code)
	}
	if resp.Request.Debug() {
		b.WriteString(utils.BuildFilterDescription(resp.Filters))
	}

	if resp.Err != nil {
		fmt.Fprintf(&b, "Error: %v\n", resp.Err)
		if len(resp.Suggestions) > 0 {
			fmt.Fprintf(&b, "Did you mean: %s?\n", strings.Join(resp.Suggestions, ", "))
		}
		return b.String()
	}

	compact := resp.Mode == ModeQuery && len(resp.Matches) > 1
	for _, m := range resp.Matches {
		if resp.Request.Debug() {
			fmt.Fprintf(&b, "Score: %.2f\n", m.Score)
		}
		b.WriteString(utils.FormatCard(m.Card, m.Set, compact))
		b.WriteString("\n")
	}

	text, cut := utils.Truncate(b.String(), s.opts.MaxChars)
	if resp.Truncated > 0 || cut {
		text = strings.TrimRight(text, "\n") + "\n" + truncatedNotice(resp, text)
	}
	return text
}

func truncatedNotice(resp SearchResponse, shown string) string {
	hidden := resp.Truncated
	for _, m := range resp.Matches {
		if !strings.Contains(shown, m.Card.Name+" (") {
			hidden++
		}
	}
	return fmt.Sprintf(utils.TruncatedNotice, hidden)
}

func cardName(c magpie.Card) string {
	return c.Name
}

package utils

import (
	"regexp"
	"strings"
)

// searchRegex finds requests of the form modifiers setcodes[term], for
// example q*[h>3] or com|cti[stoat].
var searchRegex = regexp.MustCompile(`([q*d]*)(\w{3}(?:\|\w{3})*)?\[(.*?)\]`)

// SearchRequest is a single bracketed request in a message.
type SearchRequest struct {
	Raw       string
	Modifiers string
	SetCodes  []string
	Term      string
}

// QueryMode reports whether the term is a query rather than a card name. A
// colon in the term implies a query.
func (r SearchRequest) QueryMode() bool {
	return strings.ContainsRune(r.Modifiers, ModifierQuery) || strings.Contains(r.Term, ":")
}

func (r SearchRequest) AllSets() bool {
	return strings.ContainsRune(r.Modifiers, ModifierAllSets)
}

func (r SearchRequest) Debug() bool {
	return strings.ContainsRune(r.Modifiers, ModifierDebug)
}

// ParseSearchMessage extracts every request in text, in order.
func ParseSearchMessage(text string) []SearchRequest {
	var requests []SearchRequest
	for _, m := range searchRegex.FindAllStringSubmatch(text, -1) {
		req := SearchRequest{
			Raw:       m[0],
			Modifiers: m[1],
			Term:      strings.TrimSpace(m[3]),
		}
		if m[2] != "" {
			for _, code := range strings.Split(m[2], SetSeparator) {
				req.SetCodes = append(req.SetCodes, strings.ToLower(code))
			}
		}
		requests = append(requests, req)
	}
	return requests
}

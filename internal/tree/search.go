package tree

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchParams configures filtering.
type SearchParams struct {
	// MinimalQueryLength is the number of runes below which a query is
	// ignored and the tree shows its normal expand state.
	MinimalQueryLength int
	CaseSensitive      bool
	// Fields are matched in order; an empty list means "label".
	Fields []string
	// Throttle is how long the host waits after the last keystroke before
	// running the search.
	Throttle time.Duration
	// Fuzzy matches the query as an ordered subsequence instead of a
	// substring.
	Fuzzy bool
}

// Active reports whether query is long enough to filter.
func (p SearchParams) Active(query string) bool {
	if query == "" {
		return false
	}
	return len([]rune(query)) >= max(1, p.MinimalQueryLength)
}

// Match reports whether any configured field of n matches query.
func (p SearchParams) Match(n *Node, query string) bool {
	fields := p.Fields
	if len(fields) == 0 {
		fields = []string{"label"}
	}
	for _, field := range fields {
		text, ok := n.Text(field)
		if !ok {
			continue
		}
		if p.matchText(text, query) {
			return true
		}
	}
	return false
}

func (p SearchParams) matchText(text, query string) bool {
	switch {
	case p.Fuzzy && p.CaseSensitive:
		return fuzzy.Match(query, text)
	case p.Fuzzy:
		return fuzzy.MatchNormalizedFold(query, text)
	case p.CaseSensitive:
		return strings.Contains(text, query)
	default:
		return strings.Contains(strings.ToLower(text), strings.ToLower(query))
	}
}

// Filter returns the nodes of ordered that match query together with all of
// their ancestors, in the order of ordered. The second result is the number
// of direct matches.
func Filter(ordered []*Node, p SearchParams, query string) ([]*Node, int) {
	include := map[string]bool{}
	matches := 0
	for _, n := range ordered {
		if !p.Match(n, query) {
			continue
		}
		matches++
		include[n.ID] = true
		for _, ancestor := range n.Track {
			include[ancestor] = true
		}
	}
	out := make([]*Node, 0, len(include))
	for _, n := range ordered {
		if include[n.ID] {
			out = append(out, n)
		}
	}
	return out, matches
}

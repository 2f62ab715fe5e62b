// Package score implements the lexical relevance heuristic and snippet
// extraction used to rank search results. Everything here is a pure function
// of its inputs: no state, no randomness, no locale-sensitive comparison
// beyond simple lowercasing.
package score

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxHighlights caps the snippets returned for a single record.
const MaxHighlights = 3

// snippetRadius is the number of bytes kept on each side of a matched term.
const snippetRadius = 30

// Bonus tiers, each multiplied by the field's importance weight. The weight
// of field i out of n is n-i: the first field (title or name) counts most.
// The three match tiers are exclusive per field and all anchor at the start
// of the field; there is no tier for a multi-term query whose terms are all
// contained mid-field, so such a match collects only the per-term bonus.
const (
	exactBonus   = 100 // field equals the query, case-insensitive
	prefixBonus  = 50  // field starts with the query as written
	leadingBonus = 25  // field starts with the query, case-insensitive
	termBonus    = 5   // per individual term contained in the field
)

// Relevance computes the heuristic relevance of a record against a query.
// fields are the record's candidate text fields in decreasing importance;
// empty fields are skipped. A score of 0 means no term matched anywhere.
func Relevance(query string, fields []string) int {
	lq := strings.ToLower(query)
	terms := strings.Fields(lq)
	if len(terms) == 0 {
		return 0
	}

	total := 0
	n := len(fields)
	for i, field := range fields {
		if field == "" {
			continue
		}
		weight := n - i
		lf := strings.ToLower(field)

		switch {
		case lf == lq:
			total += exactBonus * weight
		case strings.HasPrefix(field, lq):
			total += prefixBonus * weight
		case strings.HasPrefix(lf, lq):
			total += leadingBonus * weight
		}

		for _, term := range terms {
			if strings.Contains(lf, term) {
				total += termBonus * weight
			}
		}
	}
	return total
}

// Highlights extracts up to MaxHighlights snippets showing where terms
// matched. For every field, for every term found in it, a window of up to
// snippetRadius bytes either side of the first occurrence is kept, with "..."
// marking truncation. Identical snippets are deduplicated; discovery order is
// field-major, then term order.
func Highlights(query string, fields []string) []string {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})

	for _, field := range fields {
		if field == "" {
			continue
		}
		for _, term := range terms {
			if len(out) >= MaxHighlights {
				return out
			}
			idx, matchLen := foldIndex(field, term)
			if idx < 0 {
				continue
			}
			snippet := excerpt(field, idx, matchLen)
			if _, dup := seen[snippet]; dup {
				continue
			}
			seen[snippet] = struct{}{}
			out = append(out, snippet)
		}
	}
	return out
}

// foldIndex locates the first case-insensitive occurrence of term (already
// lowercased) in field and returns its byte offset and length in field
// itself. Offsets in a lowered copy are useless for slicing: some runes grow
// when lowercased ('Ⱥ' is two bytes, 'ⱥ' three), so an index found there can
// point past the end of the original string.
func foldIndex(field, term string) (idx, matchLen int) {
	for i := range field {
		if n := foldMatchLen(field[i:], term); n >= 0 {
			return i, n
		}
	}
	return -1, 0
}

// foldMatchLen reports how many bytes of s the lowercased term covers when s
// matches it rune by rune, or -1 when it does not.
func foldMatchLen(s, term string) int {
	n := 0
	for _, tr := range term {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 || unicode.ToLower(r) != tr {
			return -1
		}
		n += size
	}
	return n
}

// excerpt cuts a window around the match, clamped to rune boundaries so a
// multi-byte character is never split.
func excerpt(field string, idx, matchLen int) string {
	start := idx - snippetRadius
	if start < 0 {
		start = 0
	}
	end := idx + matchLen + snippetRadius
	if end > len(field) {
		end = len(field)
	}
	for start > 0 && !utf8.RuneStart(field[start]) {
		start--
	}
	for end < len(field) && !utf8.RuneStart(field[end]) {
		end++
	}

	snippet := field[start:end]
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(field) {
		snippet += "..."
	}
	return snippet
}

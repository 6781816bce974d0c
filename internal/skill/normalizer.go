// Package skill canonicalizes free-text skill lists into token sets.
package skill

import (
	"sort"
	"strings"
)

// Normalize parses a comma-separated skill list into a sorted, de-duplicated
// set of lowercase tokens. Empty input yields an empty slice, never nil error.
func Normalize(raw string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		tok := strings.ToLower(strings.TrimSpace(part))
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Intersect returns the tokens present in both sets, sorted.
func Intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return []string{}
	}
	set := make(map[string]struct{}, len(a))
	for _, tok := range a {
		set[tok] = struct{}{}
	}
	out := make([]string, 0)
	for _, tok := range b {
		if _, ok := set[tok]; ok {
			out = append(out, tok)
			delete(set, tok)
		}
	}
	sort.Strings(out)
	return out
}

// Contains reports whether any token in the set matches q exactly or by
// substring, case-insensitive.
func Contains(tokens []string, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return false
	}
	for _, tok := range tokens {
		if strings.Contains(tok, q) {
			return true
		}
	}
	return false
}

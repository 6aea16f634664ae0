// Copyright (c) 2026 Oshidora. All rights reserved.

// Package slug derives ASCII URL slugs for taxonomy rows (categories, tags,
// genres), e.g. "Slice of Life" becomes "slice-of-life".
//
// Names that keep no ASCII letters or digits after folding (Japanese titles,
// emoji) have no natural slug. [Set] substitutes a caller-supplied fallback
// for those and keeps every slug it hands out unique.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	disallowed  = regexp.MustCompile(`[^a-z0-9]+`)
	apostrophes = strings.NewReplacer("'", "", "’", "")
)

// From folds s into a lowercase ASCII slug.
//
// Accents are stripped after NFD decomposition, apostrophes are dropped
// ("Director's Cut" becomes "directors-cut") and every other run of
// non-alphanumerics becomes a single hyphen. The result may be empty.
func From(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, transform.RemoveFunc(isMn)), s)
	if err != nil {
		folded = s
	}

	folded = apostrophes.Replace(strings.ToLower(folded))
	return strings.Trim(disallowed.ReplaceAllString(folded, "-"), "-")
}

// Set hands out unique slugs. The zero value is ready to use.
//
// Set is not safe for concurrent use.
type Set struct {
	taken map[string]int
}

// Make returns the slug of name, or of fallback when name has none.
// A slug already handed out gets a numeric suffix: "drama", "drama-2", ...
func (s *Set) Make(name, fallback string) string {
	if s.taken == nil {
		s.taken = make(map[string]int)
	}

	base := From(name)
	if base == "" {
		base = From(fallback)
	}

	s.taken[base]++
	if n := s.taken[base]; n > 1 {
		candidate := base + "-" + strconv.Itoa(n)
		for s.taken[candidate] > 0 {
			n++
			candidate = base + "-" + strconv.Itoa(n)
		}
		s.taken[candidate]++
		return candidate
	}
	return base
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

package match

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
)

// tokenSet returns the set of case-folded tokens in text, split on anything
// that is not a letter or digit.
func tokenSet(text string) map[string]struct{} {
	folded := cases.Fold().String(text)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}

// TokenSetRatio computes an order-independent, duplicate-insensitive
// similarity between the token sets of a and b on a 0-100 scale.
//
// The intersection and the per-side remainders are joined into sorted token
// strings and compared pairwise with normalized Levenshtein similarity; the
// best pairing wins. Because the intersection is a prefix of both combined
// strings, a token set that contains the other scores 100. Disjoint token
// sets score exactly 0.
func TokenSetRatio(a, b string) int {
	setA := tokenSet(a)
	setB := tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	var intersection, onlyA, onlyB []string
	for token := range setA {
		if _, ok := setB[token]; ok {
			intersection = append(intersection, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range setB {
		if _, ok := setA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}
	if len(intersection) == 0 {
		return 0
	}
	sort.Strings(intersection)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	base := strings.Join(intersection, " ")
	combinedA := joinTokens(base, onlyA)
	combinedB := joinTokens(base, onlyB)

	lev := metrics.NewLevenshtein()
	best := strutil.Similarity(base, combinedA, lev)
	if s := strutil.Similarity(base, combinedB, lev); s > best {
		best = s
	}
	if s := strutil.Similarity(combinedA, combinedB, lev); s > best {
		best = s
	}
	return int(math.Round(best * 100))
}

func joinTokens(base string, rest []string) string {
	if len(rest) == 0 {
		return base
	}
	return base + " " + strings.Join(rest, " ")
}

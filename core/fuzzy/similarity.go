package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/adrg/strutil/metrics"
)

// indel counts insertions and deletions only: a replacement costs one of each.
var indel = &metrics.Levenshtein{
	CaseSensitive: true,
	InsertCost:    1,
	DeleteCost:    1,
	ReplaceCost:   2,
}

// Ratio returns the normalized indel similarity of a and b in [0, 1]:
// 1 - distance / (len(a) + len(b)), lengths counted in runes.
func Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1
	}
	return 1 - float64(indel.Distance(a, b))/float64(total)
}

// TokenSet returns the token-set similarity of a and b in [0, 1].
// Tokens are whitespace separated and compared case-sensitively.
// It is 0 when either string has no tokens.
func TokenSet(a, b string) float64 {
	ta, tb := tokens(a), tokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var inter, onlyA, onlyB []string
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			inter = append(inter, tok)
		} else {
			onlyA = append(onlyA, tok)
		}
	}
	for tok := range tb {
		if _, ok := ta[tok]; !ok {
			onlyB = append(onlyB, tok)
		}
	}

	if len(inter) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 1
	}

	sect := joinSorted(inter)
	withA := strings.TrimSpace(sect + " " + joinSorted(onlyA))
	withB := strings.TrimSpace(sect + " " + joinSorted(onlyB))

	best := Ratio(withA, withB)
	if sect != "" {
		best = max(best, Ratio(sect, withA), Ratio(sect, withB))
	}
	return best
}

// Best returns the highest TokenSet similarity between s and any candidate,
// or 0 when there are none.
func Best(s string, candidates []string) float64 {
	best := 0.0
	for _, c := range candidates {
		best = max(best, TokenSet(s, c))
	}
	return best
}

func tokens(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

func joinSorted(toks []string) string {
	sort.Strings(toks)
	return strings.Join(toks, " ")
}

// Package fuzzy provides string similarity scorers on a 0-100 scale.
//
// The scorers follow the rapidfuzz conventions: Ratio is the normalized
// Indel similarity (insertions and deletions only), and the partial and
// token variants are built on top of it.
package fuzzy

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	unbaseScale      = 0.95
	partialScale     = 0.9
	longPartialScale = 0.6
)

// Scorer compares two strings and returns a similarity in [0, 100].
type Scorer func(a, b string) float64

// Match is the best candidate found by ExtractOne.
type Match struct {
	Choice string
	Score  float64
	Index  int
}

// Ratio returns 200*LCS/(len(a)+len(b)). Two empty strings are identical.
func Ratio(a, b string) float64 {
	return ratioRunes([]rune(a), []rune(b))
}

func ratioRunes(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 100
	}
	return 200 * float64(lcsLength(a, b)) / float64(total)
}

func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) < len(b) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// PartialRatio returns the best Ratio of the shorter string against every
// alignment of it over the longer one, including the windows that hang off
// either edge.
func PartialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	m := len(short)
	best := 0.0
	score := func(window []rune) bool {
		if s := ratioRunes(short, window); s > best {
			best = s
		}
		return best >= 100
	}

	for i := 1; i < m; i++ {
		if score(long[:i]) {
			return 100
		}
	}
	for i := 0; i+m <= len(long); i++ {
		if score(long[i : i+m]) {
			return 100
		}
	}
	for i := len(long) - m + 1; i < len(long); i++ {
		if i <= 0 {
			continue
		}
		if score(long[i:]) {
			return 100
		}
	}
	return best
}

// TokenSortRatio compares the strings after sorting their whitespace tokens.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedJoin(strings.Fields(a)), sortedJoin(strings.Fields(b)))
}

// TokenSetRatio compares the shared and the distinct token sets of both strings.
func TokenSetRatio(a, b string) float64 {
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter, diffAB, diffBA := splitSets(setA, setB)
	if len(inter) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	sect := sortedJoin(inter)
	sectAB, sectBA := sortedJoin(diffAB), sortedJoin(diffBA)
	if sect != "" {
		sectAB = sect + " " + sectAB
		sectBA = sect + " " + sectBA
	}

	best := Ratio(sectAB, sectBA)
	if sect != "" {
		best = max(best, Ratio(sect, sectAB), Ratio(sect, sectBA))
	}
	return best
}

// PartialTokenRatio is 100 when the strings share a token, otherwise the
// PartialRatio of their sorted tokens.
func PartialTokenRatio(a, b string) float64 {
	tokensA, tokensB := strings.Fields(a), strings.Fields(b)
	setA, setB := tokenSet(a), tokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	inter, diffAB, diffBA := splitSets(setA, setB)
	if len(inter) > 0 {
		return 100
	}

	best := PartialRatio(sortedJoin(tokensA), sortedJoin(tokensB))
	return max(best, PartialRatio(sortedJoin(diffAB), sortedJoin(diffBA)))
}

// WRatio weighs the simple, partial and token scorers by the length ratio
// of the inputs. Empty input scores 0.
func WRatio(a, b string) float64 {
	lenA, lenB := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if lenA == 0 || lenB == 0 {
		return 0
	}

	lenRatio := float64(max(lenA, lenB)) / float64(min(lenA, lenB))
	end := Ratio(a, b)

	if lenRatio < 1.5 {
		tokens := max(TokenSortRatio(a, b), TokenSetRatio(a, b))
		return max(end, tokens*unbaseScale)
	}

	scale := partialScale
	if lenRatio >= 8 {
		scale = longPartialScale
	}
	end = max(end, PartialRatio(a, b)*scale)
	return max(end, PartialTokenRatio(a, b)*unbaseScale*scale)
}

// ExtractOne returns the highest scoring choice for query. Ties keep the
// earliest choice. A nil scorer means WRatio.
func ExtractOne(query string, choices []string, scorer Scorer) (Match, bool) {
	if len(choices) == 0 {
		return Match{}, false
	}
	if scorer == nil {
		scorer = WRatio
	}

	best := Match{Index: -1, Score: -1}
	for i, choice := range choices {
		if s := scorer(query, choice); s > best.Score {
			best = Match{Choice: choice, Score: s, Index: i}
			if s >= 100 {
				break
			}
		}
	}
	return best, true
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(s) {
		set[t] = struct{}{}
	}
	return set
}

func splitSets(a, b map[string]struct{}) (inter, onlyA, onlyB []string) {
	for t := range a {
		if _, ok := b[t]; ok {
			inter = append(inter, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range b {
		if _, ok := a[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	return inter, onlyA, onlyB
}

func sortedJoin(tokens []string) string {
	sorted := append([]string(nil), tokens...)
	sort.Strings(sorted)
	return strings.Join(sorted, " ")
}

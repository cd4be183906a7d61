package scoring

import (
	"sort"
	"strings"

	"alfredoptarigan/resume-relevance/internal/fuzzy"
)

// DefaultSkillMatchThreshold is the minimum n-gram score for a vocabulary
// term to count as detected.
const DefaultSkillMatchThreshold = 90.0

// SkillExtractor detects vocabulary skills in free text by fuzzy matching
// every 1-, 2- and 3-word n-gram against the vocabulary.
type SkillExtractor struct {
	vocabulary []string
	threshold  float64
	scorer     fuzzy.Scorer
}

// NewSkillExtractor builds an extractor over vocabulary. A non-positive
// threshold selects DefaultSkillMatchThreshold.
func NewSkillExtractor(vocabulary []string, threshold float64) *SkillExtractor {
	if threshold <= 0 {
		threshold = DefaultSkillMatchThreshold
	}
	return &SkillExtractor{
		vocabulary: sortedSet(vocabulary),
		threshold:  threshold,
		scorer:     fuzzy.WRatio,
	}
}

// Vocabulary returns the normalized terms the extractor matches against.
func (e *SkillExtractor) Vocabulary() []string {
	return append([]string(nil), e.vocabulary...)
}

// Extract returns the sorted set of vocabulary terms (plus seed terms) that
// some n-gram of text matches. An empty vocabulary yields an empty result.
func (e *SkillExtractor) Extract(text string, seed []string) []string {
	base := e.vocabulary
	if len(seed) > 0 {
		base = sortedSet(append(append([]string(nil), e.vocabulary...), seed...))
	}
	if len(base) == 0 {
		return []string{}
	}

	found := make(map[string]struct{})
	for _, gram := range ngrams(text, 3) {
		m, ok := fuzzy.ExtractOne(gram, base, e.scorer)
		if ok && m.Score >= e.threshold {
			found[m.Choice] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for s := range found {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ngrams returns the distinct contiguous word n-grams (n = 1..maxN) of the
// normalized words of text, in first-seen order.
func ngrams(text string, maxN int) []string {
	fields := strings.Fields(text)
	words := make([]string, len(fields))
	for i, f := range fields {
		words[i] = NormalizeToken(f)
	}

	seen := make(map[string]struct{})
	var grams []string
	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(words); i++ {
			g := strings.TrimSpace(strings.Join(words[i:i+n], " "))
			if g == "" {
				continue
			}
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			grams = append(grams, g)
		}
	}
	return grams
}

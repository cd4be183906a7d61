package scoring

import (
	"strings"

	"alfredoptarigan/resume-relevance/internal/fuzzy"
)

const (
	// DefaultFuzzyMustThreshold is the minimum partial-ratio score for a
	// must-have skill that is not literally present.
	DefaultFuzzyMustThreshold = 85.0
	// DefaultFuzzyHitWeight is how much a fuzzy hit counts towards coverage
	// relative to an exact one.
	DefaultFuzzyHitWeight = 0.6
)

// FuzzyHit is a must-have skill matched only approximately.
type FuzzyHit struct {
	Skill string  `json:"skill"`
	Score float64 `json:"score"`
}

// HardMatchResult partitions the must-have skills into exact, fuzzy and
// missing, and lists the good-to-have skills present.
type HardMatchResult struct {
	ExactHits   []string   `json:"exact_hits"`
	FuzzyHits   []FuzzyHit `json:"fuzzy_hits"`
	GoodHits    []string   `json:"good_hits"`
	MissingMust []string   `json:"missing_must"`
}

// Coverage is (exact + fuzzyWeight*fuzzy) / (exact + fuzzy + missing),
// clamped to [0, 1]. No must-haves means 0.
func (h HardMatchResult) Coverage(fuzzyWeight float64) float64 {
	exact, fz, missing := len(h.ExactHits), len(h.FuzzyHits), len(h.MissingMust)
	denom := exact + fz + missing
	if denom == 0 {
		return 0
	}
	return clamp((float64(exact)+fuzzyWeight*float64(fz))/float64(denom), 0, 1)
}

// HardMatch checks each must-have skill for a literal, case-insensitive
// occurrence in resumeText, then for a fuzzy partial match scoring at least
// threshold. Good-to-have skills are only checked literally.
func HardMatch(resumeText string, mustHave, goodToHave []string, threshold float64) HardMatchResult {
	lower := strings.ToLower(resumeText)

	res := HardMatchResult{
		ExactHits:   []string{},
		FuzzyHits:   []FuzzyHit{},
		GoodHits:    []string{},
		MissingMust: []string{},
	}

	for _, skill := range mustHave {
		s := strings.ToLower(skill)
		if strings.Contains(lower, s) {
			res.ExactHits = append(res.ExactHits, skill)
			continue
		}
		if score := fuzzy.PartialRatio(s, lower); score >= threshold {
			res.FuzzyHits = append(res.FuzzyHits, FuzzyHit{Skill: skill, Score: score})
			continue
		}
		res.MissingMust = append(res.MissingMust, skill)
	}

	for _, skill := range goodToHave {
		if strings.Contains(lower, strings.ToLower(skill)) {
			res.GoodHits = append(res.GoodHits, skill)
		}
	}

	return res
}

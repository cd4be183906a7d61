package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWeights is returned for weight overrides with a negative or
// non-finite component.
var ErrInvalidWeights = errors.New("invalid scoring weights")

// Verdict is a coarse relevance bucket.
type Verdict string

const (
	VerdictHigh   Verdict = "High"
	VerdictMedium Verdict = "Medium"
	VerdictLow    Verdict = "Low"
)

// VerdictFromScore buckets a 0-100 score: >=75 High, >=50 Medium, else Low.
func VerdictFromScore(score float64) Verdict {
	switch {
	case score >= 75:
		return VerdictHigh
	case score >= 50:
		return VerdictMedium
	default:
		return VerdictLow
	}
}

// Weights is the mix of hard coverage, soft similarity and ATS hygiene.
type Weights struct {
	Hard float64 `json:"hard"`
	Soft float64 `json:"soft"`
	ATS  float64 `json:"ats"`
}

// DefaultWeights returns 0.55 / 0.35 / 0.10.
func DefaultWeights() Weights {
	return Weights{Hard: 0.55, Soft: 0.35, ATS: 0.10}
}

// Validate rejects negative or non-finite components.
func (w Weights) Validate() error {
	for name, v := range map[string]float64{"hard": w.Hard, "soft": w.Soft, "ats": w.ATS} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeights, name, v)
		}
	}
	return nil
}

// Normalize rescales the weights to sum to 1. All-zero weights fall back to
// DefaultWeights.
func (w Weights) Normalize() Weights {
	sum := w.Hard + w.Soft + w.ATS
	if sum == 0 {
		return DefaultWeights()
	}
	if math.Abs(sum-1) < 1e-9 {
		return w
	}
	return Weights{Hard: w.Hard / sum, Soft: w.Soft / sum, ATS: w.ATS / sum}
}

// Components are the normalized inputs the combined score is built from.
type Components struct {
	HardCoverage   float64 `json:"hard_coverage"`
	SoftSimilarity float64 `json:"soft_similarity"`
	ATSNorm        float64 `json:"ats_norm"`
}

// CombinedScore is the fused relevance score together with every term that
// produced it.
type CombinedScore struct {
	Overall    float64    `json:"overall"`
	Verdict    Verdict    `json:"verdict"`
	Weights    Weights    `json:"weights"`
	Components Components `json:"components"`
}

// Combine fuses hard coverage, soft similarity and the ATS score into a
// 0-100 relevance score.
func Combine(hard HardMatchResult, softSim float64, ats ATSReport, w Weights, fuzzyHitWeight float64) CombinedScore {
	c := Components{
		HardCoverage:   hard.Coverage(fuzzyHitWeight),
		SoftSimilarity: clamp(softSim, -1, 1),
		ATSNorm:        clamp(ats.Score/100, 0, 1),
	}
	return CombineComponents(c, w)
}

// CombineComponents applies the weighted sum to already computed components.
func CombineComponents(c Components, w Weights) CombinedScore {
	overall := 100 * (w.Hard*c.HardCoverage + w.Soft*c.SoftSimilarity + w.ATS*c.ATSNorm)
	overall = clamp(overall, 0, 100)
	return CombinedScore{
		Overall:    overall,
		Verdict:    VerdictFromScore(overall),
		Weights:    w,
		Components: c,
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

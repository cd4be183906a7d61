package scoring

import "strings"

// EvidenceCard shows whether a skill appears in the resume and where.
type EvidenceCard struct {
	Skill   string `json:"skill"`
	Found   bool   `json:"found"`
	Snippet string `json:"snippet"`
}

// Contribution is one weighted term of the combined score, in score points.
type Contribution struct {
	Component    string  `json:"component"`
	Weight       float64 `json:"weight"`
	Value        float64 `json:"value"`
	Contribution float64 `json:"contribution"`
}

// Explanation bundles the evidence cards and the score breakdown.
type Explanation struct {
	Evidence      []EvidenceCard `json:"evidence"`
	Contributions []Contribution `json:"contributions"`
}

// EvidenceCards finds the first resume line mentioning each skill and keeps
// it together with one line of context on either side.
func EvidenceCards(resumeText string, skills []string) []EvidenceCard {
	lines := splitLines(resumeText)
	lowered := make([]string, len(lines))
	for i, l := range lines {
		lowered[i] = strings.ToLower(l)
	}

	cards := make([]EvidenceCard, 0, len(skills))
	for _, skill := range skills {
		s := strings.ToLower(skill)
		card := EvidenceCard{Skill: skill}
		for i, l := range lowered {
			if !strings.Contains(l, s) {
				continue
			}
			lo, hi := max(0, i-1), min(len(lines), i+2)
			card.Found = true
			card.Snippet = strings.Join(lines[lo:hi], "\n")
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// Contributions breaks the combined score into weight*value*100 per
// component, in hard, soft, ats order.
func Contributions(c CombinedScore) []Contribution {
	terms := []struct {
		name   string
		weight float64
		value  float64
	}{
		{"hard", c.Weights.Hard, c.Components.HardCoverage},
		{"soft", c.Weights.Soft, c.Components.SoftSimilarity},
		{"ats", c.Weights.ATS, c.Components.ATSNorm},
	}

	out := make([]Contribution, 0, len(terms))
	for _, t := range terms {
		out = append(out, Contribution{
			Component:    t.name,
			Weight:       t.weight,
			Value:        t.value,
			Contribution: t.weight * t.value * 100,
		})
	}
	return out
}

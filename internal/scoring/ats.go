package scoring

import "strings"

var (
	bulletGlyphs     = []string{"-", "•", "*"}
	atsSectionHeader = []string{"experience", "education", "skills", "projects"}
)

// ATSReport summarizes the formatting hygiene of a resume.
type ATSReport struct {
	BulletDensity   float64 `json:"bullet_density"`
	BulletDensityOK bool    `json:"bullet_density_ok"`
	HasSections     bool    `json:"has_sections"`
	KeywordCoverage float64 `json:"keyword_coverage"`
	Score           float64 `json:"score"`
}

// BulletDensity is the share of non-empty lines that start with a bullet
// glyph. The denominator is at least 1.
func BulletDensity(text string) float64 {
	bullets, lines := 0, 0
	for _, line := range splitLines(text) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines++
		for _, g := range bulletGlyphs {
			if strings.HasPrefix(line, g) {
				bullets++
				break
			}
		}
	}
	return float64(bullets) / float64(max(1, lines))
}

// BuildATSReport scores bullet structure, section headers and literal
// must-have keyword coverage into a 0-100 composite.
func BuildATSReport(resumeText string, mustHave []string) ATSReport {
	lower := strings.ToLower(resumeText)
	bd := BulletDensity(resumeText)

	hasSections := false
	for _, h := range atsSectionHeader {
		if strings.Contains(lower, h) {
			hasSections = true
			break
		}
	}

	hits := 0
	for _, s := range mustHave {
		if strings.Contains(lower, strings.ToLower(s)) {
			hits++
		}
	}
	kc := float64(hits) / float64(max(1, len(mustHave)))

	sectionTerm := 0.0
	if hasSections {
		sectionTerm = 1
	}
	score := 100 * (0.4*kc + 0.4*clamp(bd/0.4, 0, 1) + 0.2*sectionTerm)

	return ATSReport{
		BulletDensity:   bd,
		BulletDensityOK: bd >= 0.15 && bd <= 0.5,
		HasSections:     hasSections,
		KeywordCoverage: kc,
		Score:           clamp(score, 0, 100),
	}
}

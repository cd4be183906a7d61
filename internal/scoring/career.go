package scoring

import (
	"regexp"
	"strconv"
	"strings"
)

// CareerStage is a coarse seniority bucket.
type CareerStage string

const (
	StageFresher CareerStage = "fresher"
	StageJunior  CareerStage = "junior"
	StageMid     CareerStage = "mid"
	StageSenior  CareerStage = "senior"
	StageUnknown CareerStage = "unknown"
)

var (
	yearsRe  = regexp.MustCompile(`(\d+)\+?\s*years`)
	internRe = regexp.MustCompile(`\b(intern|interns|internship|internships|fresher)\b`)
)

// ClassifyCareerStage buckets a resume by the largest "N years" mention.
// Internship or fresher mentions, or no years at all, mean fresher.
func ClassifyCareerStage(text string) CareerStage {
	lower := strings.ToLower(text)

	years := 0
	for _, m := range yearsRe.FindAllStringSubmatch(lower, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > years {
			years = n
		}
	}

	switch {
	case internRe.MatchString(lower) || years == 0:
		return StageFresher
	case years <= 2:
		return StageJunior
	case years <= 5:
		return StageMid
	default:
		return StageSenior
	}
}

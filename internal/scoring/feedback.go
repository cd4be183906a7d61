package scoring

import (
	"fmt"
	"strings"
)

const maxFeedbackGaps = 6

var careerTips = map[CareerStage][]string{
	StageFresher: {
		"Add 2-3 quantified academic or personal projects aligned with the JD.",
		"Include a concise skills section grouped by category (Languages, Tools, Cloud).",
	},
	StageJunior: {
		"Demonstrate impact with metrics (throughput, latency, accuracy improvements).",
		"Add 1-2 production incidents or ownership moments.",
	},
	StageMid: {
		"Show cross-functional collaboration and system design decisions.",
		"List tech leadership moments: reviews, mentoring, roadmap inputs.",
	},
	StageSenior: {
		"Highlight architecture trade-offs and org-level influence.",
		"Quantify cost, reliability, and velocity improvements.",
	},
}

// CareerTips returns the improvement tips for stage. Unknown stages get the
// junior tips.
func CareerTips(stage CareerStage) []string {
	if tips, ok := careerTips[stage]; ok {
		return tips
	}
	return careerTips[StageJunior]
}

// GenerateFeedback renders the improvement plan: up to six missing skills,
// the career-stage tips and the ATS hygiene tips that apply.
func GenerateFeedback(stage CareerStage, missingSkills []string, ats ATSReport) string {
	gaps := ""
	if len(missingSkills) > 0 {
		top := missingSkills[:min(len(missingSkills), maxFeedbackGaps)]
		gaps = fmt.Sprintf("Top missing skills to add or demonstrate: %s.", strings.Join(top, ", "))
	}

	var atsTips []string
	if !ats.BulletDensityOK {
		atsTips = append(atsTips, "Improve bullet structure; target 20–40% of lines as bullets.")
	}
	if !ats.HasSections {
		atsTips = append(atsTips, "Add clear sections: Summary, Skills, Experience, Projects, Education.")
	}
	if ats.KeywordCoverage < 0.5 {
		atsTips = append(atsTips, "Increase JD keyword coverage in your bullet points.")
	}

	atsLine := "Good ATS hygiene overall."
	if len(atsTips) > 0 {
		atsLine = strings.Join(atsTips, " ")
	}

	return gaps + "\n" +
		"Career-stage suggestions: " + strings.Join(CareerTips(stage), " ") + "\n" +
		"ATS tips: " + atsLine
}

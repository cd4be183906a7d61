package scoring

import "strings"

// ProjectsGap is reported when the JD asks about projects and the resume
// has no projects section.
const ProjectsGap = "projects section"

// MissingElements lists what the resume lacks relative to the JD.
type MissingElements struct {
	Skills         []string `json:"skills"`
	Certifications []string `json:"certifications"`
	Projects       []string `json:"projects"`
}

// FindMissingElements collects the missing must-have skills, the
// certifications the JD names that the resume does not, and a projects gap.
func FindMissingElements(hard HardMatchResult, resumeText, jdText string, sections map[string]string, certifications []string) MissingElements {
	resumeLower := strings.ToLower(resumeText)
	jdLower := strings.ToLower(jdText)

	out := MissingElements{
		Skills:         append([]string{}, hard.MissingMust...),
		Certifications: []string{},
		Projects:       []string{},
	}

	for _, c := range certifications {
		c = strings.ToLower(c)
		if c != "" && strings.Contains(jdLower, c) && !strings.Contains(resumeLower, c) {
			out.Certifications = append(out.Certifications, c)
		}
	}

	if strings.Contains(jdLower, "project") {
		if _, ok := sections["projects"]; !ok {
			out.Projects = append(out.Projects, ProjectsGap)
		}
	}

	return out
}

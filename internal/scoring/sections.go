package scoring

import (
	"sort"
	"strings"
)

// CatchAllSection keys the whole text when no anchor keyword is present.
const CatchAllSection = "all"

var sectionAnchors = []string{
	"education",
	"experience",
	"projects",
	"skills",
	"certifications",
	"summary",
	"objective",
}

type anchorHit struct {
	pos  int
	name string
}

// SplitSections slices text between the first occurrences of the section
// anchors, in document order. Without anchors the text is returned under
// CatchAllSection.
func SplitSections(text string) map[string]string {
	lower := lowerASCII(text)

	var hits []anchorHit
	for _, a := range sectionAnchors {
		if i := strings.Index(lower, a); i != -1 {
			hits = append(hits, anchorHit{pos: i, name: a})
		}
	}
	if len(hits) == 0 {
		return map[string]string{CatchAllSection: text}
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	sections := make(map[string]string, len(hits))
	for i, h := range hits {
		end := len(text)
		if i+1 < len(hits) {
			end = hits[i+1].pos
		}
		sections[h.name] = strings.TrimSpace(text[h.pos:end])
	}
	return sections
}

package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Python", want: "python"},
		{in: "  C++, Python! ", want: "c++  python"},
		{in: "Node.JS", want: "node.js"},
		{in: "C#", want: "c#"},
		{in: "CI/CD", want: "ci cd"},
		{in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeToken(tt.in))
		})
	}
}

func TestNormalizeSkills(t *testing.T) {
	t.Parallel()

	got := NormalizeSkills([]string{" Python", "python", "", "AWS", "?"})
	assert.Equal(t, []string{"python", "aws"}, got)
	assert.Empty(t, NormalizeSkills(nil))
}

func TestStandardize(t *testing.T) {
	t.Parallel()

	in := "  Line one \r\n\r\nPage 2 of 3\n  line two\n\n"
	assert.Equal(t, "Line one\nline two", Standardize(in))
	assert.Equal(t, "", Standardize(""))
}

func TestAnonymize(t *testing.T) {
	t.Parallel()

	in := "Name: Jane Doe\nEmail: jane.doe@example.com\nPhone: +1 555-123-4567\nSkills: Go"
	out, counts := Anonymize(in)

	assert.Equal(t, "Name: [NAME]\nEmail: [EMAIL]\nPhone: [PHONE]\nSkills: Go", out)
	assert.Equal(t, RedactionCounts{Emails: 1, Phones: 1, Names: 1}, counts)
}

func TestAnonymizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Name: Jane Doe\nreach me at jane@corp.io or 98765 43210",
		"no pii here at all",
		"",
		"name :   Someone\nmail a@b.co, b@c.org",
	}

	for _, in := range inputs {
		once, _ := Anonymize(in)
		twice, counts := Anonymize(once)
		assert.Equal(t, once, twice)
		assert.Zero(t, counts.Total(), "input %q", in)
	}
}

func TestSplitSections(t *testing.T) {
	t.Parallel()

	text := "John\nSummary: builder\nExperience: 3 years at X\nEducation: BSc\nSkills: Go"
	got := SplitSections(text)

	assert.Equal(t, map[string]string{
		"summary":    "Summary: builder",
		"experience": "Experience: 3 years at X",
		"education":  "Education: BSc",
		"skills":     "Skills: Go",
	}, got)
}

func TestSplitSectionsWithoutAnchors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "hello world", "Go, Rust and SQL\nfive years"} {
		assert.Equal(t, map[string]string{CatchAllSection: in}, SplitSections(in))
	}
}

func TestClassifyCareerStage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want CareerStage
	}{
		{name: "no years", text: "Go developer", want: StageFresher},
		{name: "junior", text: "2 years of Go", want: StageJunior},
		{name: "mid", text: "3 years backend, 1 year frontend", want: StageMid},
		{name: "senior plus", text: "10+ years building systems", want: StageSenior},
		{name: "internship wins", text: "Internship at X, 4 years", want: StageFresher},
		{name: "international is not intern", text: "International clients for 4 years", want: StageMid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ClassifyCareerStage(tt.text))
		})
	}
}

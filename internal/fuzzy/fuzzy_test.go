package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "python", b: "python", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one empty", a: "abc", b: "", want: 0},
		{name: "one extra char", a: "this is a test", b: "this is a test!", want: 200 * 14.0 / 29.0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestPartialRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, PartialRatio("python", "i write python daily"))
	assert.Equal(t, 100.0, PartialRatio("i write python daily", "python"))
	assert.Less(t, PartialRatio("aws", "skills: python, sql\nexperience: 3 years"), 85.0)
	assert.Equal(t, 0.0, PartialRatio("", "abc"))
	assert.Equal(t, 100.0, PartialRatio("", ""))

	// "kubernetes" with a typo still aligns closely.
	assert.GreaterOrEqual(t, PartialRatio("kubernetes", "deployed on kubernets clusters"), 85.0)
}

func TestPartialRatioEdgeWindows(t *testing.T) {
	t.Parallel()

	// Only a prefix of the needle sits at the end of the haystack.
	got := PartialRatio("sqlx", "postgres sql")
	assert.InDelta(t, 200*3.0/7.0, got, 1e-9)
}

func TestTokenRatios(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100.0, TokenSortRatio("new york mets", "mets new york"))
	assert.Equal(t, 100.0, TokenSetRatio("fuzzy wuzzy was a bear", "fuzzy fuzzy was a bear"))
	assert.Equal(t, 0.0, TokenSetRatio("", "anything"))
	assert.Equal(t, 100.0, PartialTokenRatio("machine learning", "learning to rank"))
	assert.Equal(t, 0.0, PartialTokenRatio("", "x"))
}

func TestWRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, WRatio("", "python"))
	assert.Equal(t, 100.0, WRatio("python", "python"))
	assert.InDelta(t, 95.0, WRatio("spring boot", "boot spring"), 1e-9)

	// Long length ratio falls back to the scaled partial scorers.
	assert.InDelta(t, 90.0, WRatio("aws", "aws lambda"), 1e-9)
	assert.Less(t, WRatio("go", "django rest framework"), 90.0)
}

func TestExtractOne(t *testing.T) {
	t.Parallel()

	_, ok := ExtractOne("python", nil, nil)
	assert.False(t, ok)

	m, ok := ExtractOne("pythn", []string{"java", "python", "pytorch"}, nil)
	require.True(t, ok)
	assert.Equal(t, "python", m.Choice)
	assert.Equal(t, 1, m.Index)

	m, ok = ExtractOne("x", []string{"a", "b"}, Ratio)
	require.True(t, ok)
	assert.Equal(t, "a", m.Choice, "ties keep the first choice")
	assert.Equal(t, 0.0, m.Score)
}

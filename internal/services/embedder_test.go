package services

import (
	"context"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-relevance/internal/scoring"
)

func norm(v []float32) float64 {
	var s float64
	for _, x := range v {
		s += float64(x) * float64(x)
	}
	return math.Sqrt(s)
}

func TestHashEmbedder(t *testing.T) {
	t.Parallel()

	emb := NewHashEmbedder(64)
	ctx := context.Background()

	a, err := emb.Embed(ctx, "Python developer building data pipelines")
	require.NoError(t, err)
	b, err := emb.Embed(ctx, "Python developer building data pipelines")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.InDelta(t, 1.0, norm(a), 1e-5)

	near, err := emb.Embed(ctx, "python data pipelines developer")
	require.NoError(t, err)
	far, err := emb.Embed(ctx, "florist arranging wedding bouquets")
	require.NoError(t, err)
	assert.Greater(t, scoring.CosineSimilarity(a, near), scoring.CosineSimilarity(a, far))

	empty, err := emb.Embed(ctx, "")
	require.NoError(t, err)
	assert.Len(t, empty, 64)
	assert.Zero(t, norm(empty))
}

func TestHashEmbedderDefaultDimensions(t *testing.T) {
	t.Parallel()

	v, err := NewHashEmbedder(0).Embed(context.Background(), "go")
	require.NoError(t, err)
	assert.Len(t, v, DefaultHashDimensions)
}

func TestMeanPool(t *testing.T) {
	t.Parallel()

	got, err := meanPool([][]float32{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, got[0], 1e-6)
	assert.InDelta(t, math.Sqrt2/2, got[1], 1e-6)

	_, err = meanPool(nil)
	assert.Error(t, err)

	_, err = meanPool([][]float32{{1, 0}, {1}})
	assert.Error(t, err)
}

func TestChunkText(t *testing.T) {
	t.Parallel()

	text := "alpha beta\n\ngamma\n\n\n\ndelta epsilon"
	assert.Equal(t, []string{"alpha beta\ngamma", "delta epsilon"}, ChunkText(text, 17))
	assert.Equal(t, []string{"alpha beta\ngamma\ndelta epsilon"}, ChunkText(text, 100))
	assert.Empty(t, ChunkText("  \n\n ", 10))

	long := strings.Repeat("é", 25)
	chunks := ChunkText(long, 10)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 10)
	}
	assert.Equal(t, long, strings.Join(chunks, ""))
}

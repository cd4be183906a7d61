package services

import (
	"context"
	"hash/fnv"
	"strings"

	"alfredoptarigan/resume-relevance/internal/scoring"
)

const DefaultHashDimensions = 768

type hashEmbedder struct {
	dims int
}

// NewHashEmbedder returns an offline Embedder that feature-hashes unigrams
// and bigrams into dims buckets. It needs no network and is deterministic,
// so it backs the CLI and tests and stands in when no API key is set.
func NewHashEmbedder(dims int) scoring.Embedder {
	if dims <= 0 {
		dims = DefaultHashDimensions
	}
	return &hashEmbedder{dims: dims}
}

func (h *hashEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, h.dims)

	tokens := strings.Fields(scoring.NormalizeToken(text))
	for i, tok := range tokens {
		h.add(vec, tok, 1)
		if i > 0 {
			h.add(vec, tokens[i-1]+" "+tok, 0.5)
		}
	}

	return scoring.NormalizeVector(vec), nil
}

func (h *hashEmbedder) add(vec []float32, feature string, weight float32) {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(feature))
	sum := hasher.Sum64()

	idx := int(sum % uint64(h.dims))
	if sum&(1<<63) != 0 {
		weight = -weight
	}
	vec[idx] += weight
}

package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"alfredoptarigan/resume-relevance/internal/config"
	"alfredoptarigan/resume-relevance/internal/scoring"
)

// Roughly the 2048-token input cap of text-embedding-004.
const maxEmbedChunkRunes = 8000

type geminiEmbedder struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiEmbedder returns an Embedder backed by the Gemini embedding API.
// Calls are throttled to cfg.RatePerSecond and bounded by cfg.RequestTimeout.
func NewGeminiEmbedder(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (scoring.Embedder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	model := cfg.EmbedModel
	if model == "" {
		model = "text-embedding-004"
	}

	return &geminiEmbedder{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(limit, 1),
		timeout: cfg.RequestTimeout,
		logger:  logger.With(zap.String("embed_model", model)),
	}, nil
}

// Embed implements scoring.Embedder. Long text is split into chunks that are
// embedded in one request and mean-pooled.
func (g *geminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	chunks := ChunkText(text, maxEmbedChunkRunes)
	if len(chunks) == 0 {
		chunks = []string{" "}
	}

	contents := make([]*genai.Content, 0, len(chunks))
	for _, chunk := range chunks {
		contents = append(contents, genai.Text(chunk)...)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for embed rate limit: %w", err)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := g.client.Models.EmbedContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	g.logger.Debug("embedding generated",
		zap.Int("chunks", len(chunks)),
		zap.Duration("took", time.Since(start)),
	)

	vectors := make([][]float32, 0, len(result.Embeddings))
	for _, e := range result.Embeddings {
		if e != nil && len(e.Values) > 0 {
			vectors = append(vectors, e.Values)
		}
	}
	return meanPool(vectors)
}

// meanPool averages equal-length vectors and normalizes the result.
func meanPool(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	dims := len(vectors[0])
	sum := make([]float32, dims)
	for _, v := range vectors {
		if len(v) != dims {
			return nil, fmt.Errorf("embedding dimensions differ: %d vs %d", len(v), dims)
		}
		for i, x := range v {
			sum[i] += x
		}
	}
	for i := range sum {
		sum[i] /= float32(len(vectors))
	}
	return scoring.NormalizeVector(sum), nil
}

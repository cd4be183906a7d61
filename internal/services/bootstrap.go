package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/config"
	"alfredoptarigan/resume-relevance/internal/scoring"
)

// NewEmbedder returns the Gemini embedder when an API key is configured and
// the offline hash embedder otherwise.
func NewEmbedder(ctx context.Context, cfg *config.Config, logger *zap.Logger) (scoring.Embedder, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Gemini.APIKey == "" {
		logger.Info("🔤 GEMINI_API_KEY not set, using hash embeddings",
			zap.Int("dimensions", cfg.Scoring.EmbedDimensions))
		return NewHashEmbedder(cfg.Scoring.EmbedDimensions), nil
	}

	embedder, err := NewGeminiEmbedder(ctx, cfg.Gemini, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gemini embedder: %w", err)
	}
	return embedder, nil
}

// PipelineConfig turns scoring settings into a pipeline config. Weight
// overrides are validated and normalized here so a bad environment fails at
// startup rather than on the first request.
func PipelineConfig(cfg config.ScoringConfig, ontology scoring.Ontology) (scoring.Config, error) {
	weights := scoring.Weights{Hard: cfg.WeightHard, Soft: cfg.WeightSoft, ATS: cfg.WeightATS}
	if err := weights.Validate(); err != nil {
		return scoring.Config{}, err
	}

	pc := scoring.DefaultConfig()
	pc.Weights = weights.Normalize()
	if cfg.FuzzyMustThreshold > 0 {
		pc.FuzzyMustThreshold = cfg.FuzzyMustThreshold
	}
	if cfg.FuzzyHitWeight > 0 {
		pc.FuzzyHitWeight = cfg.FuzzyHitWeight
	}
	if ontology != nil {
		pc.Certifications = ontology.Certifications()
	}
	return pc, nil
}

// NewSkillExtractorFor builds the resume skill extractor over the ontology.
func NewSkillExtractorFor(cfg config.ScoringConfig, ontology scoring.Ontology) *scoring.SkillExtractor {
	threshold := cfg.SkillMatchThreshold
	if threshold <= 0 {
		threshold = scoring.DefaultSkillMatchThreshold
	}
	return scoring.NewSkillExtractor(ontology.Vocabulary(), threshold)
}

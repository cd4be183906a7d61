package scoring

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Embedder maps text to a unit-length vector. Identical input must yield an
// identical vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config holds the tunable constants of the pipeline.
type Config struct {
	FuzzyMustThreshold float64
	FuzzyHitWeight     float64
	Weights            Weights
	Certifications     []string
}

// DefaultConfig returns the stock thresholds and weights.
func DefaultConfig() Config {
	return Config{
		FuzzyMustThreshold: DefaultFuzzyMustThreshold,
		FuzzyHitWeight:     DefaultFuzzyHitWeight,
		Weights:            DefaultWeights(),
	}
}

// ResumeInput is the read-only view of a resume the pipeline scores.
type ResumeInput struct {
	RawText        string
	AnonymizedText string
	Embedding      []float32
	CareerStage    CareerStage
	Sections       map[string]string
}

// JDInput is the read-only view of a job description.
type JDInput struct {
	RawText    string
	MustHave   []string
	GoodToHave []string
}

// Options tune a single evaluation. A nil Weights uses the configured ones.
type Options struct {
	BiasAnonymize bool
	Weights       *Weights
}

// Result is everything one evaluation produces.
type Result struct {
	RelevanceScore  float64         `json:"relevance_score"`
	Verdict         Verdict         `json:"verdict"`
	HardMatch       HardMatchResult `json:"hard_match"`
	SoftSimilarity  float64         `json:"soft_similarity"`
	MissingElements MissingElements `json:"missing_elements"`
	ATSReport       ATSReport       `json:"ats_report"`
	Explainability  Explanation     `json:"explainability"`
	Feedback        string          `json:"feedback"`
	BiasAnonymized  bool            `json:"bias_anonymized"`
	Weights         Weights         `json:"weights"`
	Components      Components      `json:"components"`
}

// Pipeline scores resume/JD pairs. It holds no mutable state and is safe
// for concurrent use.
type Pipeline struct {
	embedder Embedder
	cfg      Config
	logger   *zap.Logger
}

// NewPipeline wires the pipeline. A nil embedder disables soft similarity.
func NewPipeline(embedder Embedder, cfg Config, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FuzzyMustThreshold <= 0 {
		cfg.FuzzyMustThreshold = DefaultFuzzyMustThreshold
	}
	if cfg.FuzzyHitWeight < 0 {
		cfg.FuzzyHitWeight = DefaultFuzzyHitWeight
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	return &Pipeline{embedder: embedder, cfg: cfg, logger: logger}
}

// Evaluate runs hard match, JD embedding and the ATS report concurrently,
// then combines them and derives the explanation and feedback. The only
// error is an invalid weight override.
func (p *Pipeline) Evaluate(ctx context.Context, resume ResumeInput, jd JDInput, opts Options) (*Result, error) {
	weights := p.cfg.Weights
	if opts.Weights != nil {
		if err := opts.Weights.Validate(); err != nil {
			return nil, err
		}
		weights = opts.Weights.Normalize()
	}

	text := resume.RawText
	if opts.BiasAnonymize {
		text = resume.AnonymizedText
	}

	var (
		hard    HardMatchResult
		softSim float64
		ats     ATSReport
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hard = HardMatch(text, jd.MustHave, jd.GoodToHave, p.cfg.FuzzyMustThreshold)
		return nil
	})
	g.Go(func() error {
		softSim = p.softSimilarity(gctx, resume.Embedding, jd.RawText)
		return nil
	})
	g.Go(func() error {
		ats = BuildATSReport(text, jd.MustHave)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to score pair: %w", err)
	}

	combined := Combine(hard, softSim, ats, weights, p.cfg.FuzzyHitWeight)

	sections := resume.Sections
	if len(sections) == 0 {
		sections = SplitSections(text)
	}

	relevant := make([]string, 0, len(jd.MustHave)+len(jd.GoodToHave))
	relevant = append(relevant, jd.MustHave...)
	relevant = append(relevant, jd.GoodToHave...)

	return &Result{
		RelevanceScore:  combined.Overall,
		Verdict:         combined.Verdict,
		HardMatch:       hard,
		SoftSimilarity:  combined.Components.SoftSimilarity,
		MissingElements: FindMissingElements(hard, text, jd.RawText, sections, p.cfg.Certifications),
		ATSReport:       ats,
		Explainability: Explanation{
			Evidence:      EvidenceCards(text, relevant),
			Contributions: Contributions(combined),
		},
		Feedback:       GenerateFeedback(resume.CareerStage, hard.MissingMust, ats),
		BiasAnonymized: opts.BiasAnonymize,
		Weights:        combined.Weights,
		Components:     combined.Components,
	}, nil
}

func (p *Pipeline) softSimilarity(ctx context.Context, resumeVec []float32, jdText string) float64 {
	if p.embedder == nil || len(resumeVec) == 0 {
		return 0
	}

	jdVec, err := p.embedder.Embed(ctx, jdText)
	if err != nil {
		p.logger.Warn("jd embedding failed, soft similarity set to 0", zap.Error(err))
		return 0
	}
	if len(jdVec) != len(resumeVec) {
		p.logger.Warn("embedding dimensions differ, soft similarity set to 0",
			zap.Int("resume_dims", len(resumeVec)),
			zap.Int("jd_dims", len(jdVec)),
		)
		return 0
	}

	return CosineSimilarity(resumeVec, jdVec)
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/repositories"
	"alfredoptarigan/resume-relevance/internal/scoring"
)

type EvaluateParams struct {
	ResumeID      uuid.UUID
	JDID          uuid.UUID
	BiasAnonymize bool
	Weights       *scoring.Weights
}

type EvaluatorService interface {
	Evaluate(ctx context.Context, params EvaluateParams) (*models.Evaluation, error)
	GetEvaluation(ctx context.Context, id uuid.UUID) (*models.Evaluation, error)
}

type evaluatorService struct {
	evalRepo   repositories.EvaluationRepository
	resumeRepo repositories.ResumeRepository
	jdRepo     repositories.JobDescriptionRepository
	pipeline   *scoring.Pipeline
	logger     *zap.Logger
}

func NewEvaluatorService(
	evalRepo repositories.EvaluationRepository,
	resumeRepo repositories.ResumeRepository,
	jdRepo repositories.JobDescriptionRepository,
	pipeline *scoring.Pipeline,
	logger *zap.Logger,
) EvaluatorService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &evaluatorService{
		evalRepo:   evalRepo,
		resumeRepo: resumeRepo,
		jdRepo:     jdRepo,
		pipeline:   pipeline,
		logger:     logger,
	}
}

// Evaluate scores a stored resume against a stored job description and
// persists the result as a new evaluation. A missing record yields
// repositories.ErrNotFound and nothing is written.
func (e *evaluatorService) Evaluate(ctx context.Context, params EvaluateParams) (*models.Evaluation, error) {
	resume, err := e.resumeRepo.FindByID(ctx, params.ResumeID)
	if err != nil {
		return nil, err
	}

	jd, err := e.jdRepo.FindByID(ctx, params.JDID)
	if err != nil {
		return nil, err
	}

	log := e.logger.With(
		zap.String("resume_id", resume.ID.String()),
		zap.String("jd_id", jd.ID.String()),
	)
	log.Debug("🔄 Starting evaluation", zap.Bool("bias_anonymize", params.BiasAnonymize))

	result, err := e.pipeline.Evaluate(ctx, ResumeInputFrom(resume), JDInputFrom(jd), scoring.Options{
		BiasAnonymize: params.BiasAnonymize,
		Weights:       params.Weights,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate pair: %w", err)
	}

	eval := models.NewEvaluation(resume.ID, jd.ID, result)
	if err := e.evalRepo.Create(ctx, eval); err != nil {
		return nil, err
	}
	eval.Resume = resume
	eval.JobDescription = jd

	log.Info("✅ Evaluation completed",
		zap.String("evaluation_id", eval.ID.String()),
		zap.Float64("score", eval.RelevanceScore),
		zap.String("verdict", eval.Verdict),
	)
	return eval, nil
}

func (e *evaluatorService) GetEvaluation(ctx context.Context, id uuid.UUID) (*models.Evaluation, error) {
	return e.evalRepo.FindByID(ctx, id)
}

// ResumeInputFrom exposes the stored resume fields the pipeline reads.
func ResumeInputFrom(r *models.Resume) scoring.ResumeInput {
	return scoring.ResumeInput{
		RawText:        r.RawText,
		AnonymizedText: r.AnonymizedText,
		Embedding:      []float32(r.Embedding),
		CareerStage:    scoring.CareerStage(r.CareerStage),
		Sections:       r.Sections.Data(),
	}
}

func JDInputFrom(jd *models.JobDescription) scoring.JDInput {
	return scoring.JDInput{
		RawText:    jd.RawText,
		MustHave:   []string(jd.MustHave),
		GoodToHave: []string(jd.GoodToHave),
	}
}

package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/repositories"
	"alfredoptarigan/resume-relevance/internal/scoring"
)

type SearchService interface {
	Dashboard(ctx context.Context, filter models.DashboardFilter) ([]models.Evaluation, error)
	Shortlist(ctx context.Context, jdID uuid.UUID, filter models.ShortlistFilter) ([]models.ShortlistEntry, error)
	Matrix(ctx context.Context, resumeID uuid.UUID) ([]models.MatrixEntry, error)
	Semantic(ctx context.Context, jdID uuid.UUID, limit int) ([]models.SemanticHit, error)
}

type searchService struct {
	evalRepo   repositories.EvaluationRepository
	resumeRepo repositories.ResumeRepository
	jdRepo     repositories.JobDescriptionRepository
	embedder   scoring.Embedder
	index      VectorIndex
}

// NewSearchService wires the read side. With a nil index or embedder,
// Semantic returns ErrIndexDisabled.
func NewSearchService(
	evalRepo repositories.EvaluationRepository,
	resumeRepo repositories.ResumeRepository,
	jdRepo repositories.JobDescriptionRepository,
	embedder scoring.Embedder,
	index VectorIndex,
) SearchService {
	return &searchService{
		evalRepo:   evalRepo,
		resumeRepo: resumeRepo,
		jdRepo:     jdRepo,
		embedder:   embedder,
		index:      index,
	}
}

func (s *searchService) Dashboard(ctx context.Context, filter models.DashboardFilter) ([]models.Evaluation, error) {
	return s.evalRepo.Dashboard(ctx, filter)
}

func (s *searchService) Shortlist(ctx context.Context, jdID uuid.UUID, filter models.ShortlistFilter) ([]models.ShortlistEntry, error) {
	evals, err := s.evalRepo.Shortlist(ctx, jdID, filter)
	if err != nil {
		return nil, err
	}

	entries := make([]models.ShortlistEntry, 0, len(evals))
	for _, ev := range evals {
		entry := models.ShortlistEntry{
			EvaluationID: ev.ID.String(),
			ResumeID:     ev.ResumeID.String(),
			Score:        ev.RelevanceScore,
			Verdict:      ev.Verdict,
		}
		if ev.Resume != nil {
			entry.CandidateName = ev.Resume.CandidateName
			entry.CareerStage = ev.Resume.CareerStage
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Matrix lists every job description with the latest score of the resume
// against it.
func (s *searchService) Matrix(ctx context.Context, resumeID uuid.UUID) ([]models.MatrixEntry, error) {
	if _, err := s.resumeRepo.FindByID(ctx, resumeID); err != nil {
		return nil, err
	}

	jds, err := s.jdRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	evals, err := s.evalRepo.FindByResume(ctx, resumeID)
	if err != nil {
		return nil, err
	}

	latest := make(map[uuid.UUID]models.Evaluation, len(evals))
	for _, ev := range evals {
		latest[ev.JDID] = ev
	}

	entries := make([]models.MatrixEntry, 0, len(jds))
	for _, jd := range jds {
		entry := models.MatrixEntry{
			JDID:    jd.ID.String(),
			JDTitle: jd.Title,
			Company: jd.Company,
		}
		if ev, ok := latest[jd.ID]; ok {
			score, verdict := ev.RelevanceScore, ev.Verdict
			entry.Score = &score
			entry.Verdict = &verdict
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Semantic finds the resumes whose stored embeddings are nearest to the
// job description's.
func (s *searchService) Semantic(ctx context.Context, jdID uuid.UUID, limit int) ([]models.SemanticHit, error) {
	if s.index == nil || s.embedder == nil {
		return nil, ErrIndexDisabled
	}

	jd, err := s.jdRepo.FindByID(ctx, jdID)
	if err != nil {
		return nil, err
	}

	vec, err := s.embedder.Embed(ctx, jd.RawText)
	if err != nil {
		return nil, fmt.Errorf("failed to embed job description: %w", err)
	}

	matches, err := s.index.SearchSimilar(ctx, vec, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ResumeID)
	}
	resumes, err := s.resumeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.Resume, len(resumes))
	for _, r := range resumes {
		byID[r.ID] = r
	}

	hits := make([]models.SemanticHit, 0, len(matches))
	for _, m := range matches {
		r, ok := byID[m.ResumeID]
		if !ok {
			continue
		}
		hits = append(hits, models.SemanticHit{
			ResumeID:      r.ID.String(),
			CandidateName: r.CandidateName,
			Location:      r.Location,
			CareerStage:   r.CareerStage,
			Similarity:    float64(m.Score),
		})
	}
	return hits, nil
}

package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-relevance/internal/models"
)

const defaultListLimit = 50

type EvaluationRepository interface {
	Create(ctx context.Context, eval *models.Evaluation) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Evaluation, error)
	Dashboard(ctx context.Context, filter models.DashboardFilter) ([]models.Evaluation, error)
	Shortlist(ctx context.Context, jdID uuid.UUID, filter models.ShortlistFilter) ([]models.Evaluation, error)
	FindByResume(ctx context.Context, resumeID uuid.UUID) ([]models.Evaluation, error)
}

type evaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) EvaluationRepository {
	return &evaluationRepository{db: db}
}

func (r *evaluationRepository) Create(ctx context.Context, eval *models.Evaluation) error {
	if err := r.db.WithContext(ctx).Omit("Resume", "JobDescription").Create(eval).Error; err != nil {
		return fmt.Errorf("failed to create evaluation: %w", err)
	}
	return nil
}

func (r *evaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Evaluation, error) {
	var eval models.Evaluation
	err := r.db.WithContext(ctx).
		Preload("Resume").
		Preload("JobDescription").
		Where("id = ?", id).
		First(&eval).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("evaluation %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find evaluation: %w", err)
	}
	return &eval, nil
}

// Dashboard lists evaluations best score first, filtered by job title and
// resume location substrings (case-insensitive) and a minimum score.
func (r *evaluationRepository) Dashboard(ctx context.Context, filter models.DashboardFilter) ([]models.Evaluation, error) {
	q := r.joined(ctx).Where("evaluations.relevance_score >= ?", filter.MinScore)

	if title := strings.TrimSpace(filter.JobTitle); title != "" {
		q = q.Where("LOWER(job_descriptions.title) LIKE ?", likePattern(title))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		q = q.Where("LOWER(resumes.location) LIKE ?", likePattern(loc))
	}

	var evals []models.Evaluation
	err := q.Order("evaluations.relevance_score DESC").
		Order("evaluations.created_at DESC").
		Limit(limitOrDefault(filter.Limit)).
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	return evals, nil
}

// Shortlist returns evaluations of one job description at or above the
// minimum score. Resumes without a recorded location are never excluded by
// the location filter.
func (r *evaluationRepository) Shortlist(ctx context.Context, jdID uuid.UUID, filter models.ShortlistFilter) ([]models.Evaluation, error) {
	q := r.joined(ctx).
		Where("evaluations.jd_id = ?", jdID).
		Where("evaluations.relevance_score >= ?", filter.MinScore)

	if loc := strings.TrimSpace(filter.Location); loc != "" {
		q = q.Where("(resumes.location = '' OR LOWER(resumes.location) LIKE ?)", likePattern(loc))
	}

	var evals []models.Evaluation
	err := q.Order("evaluations.relevance_score DESC").
		Order("evaluations.created_at DESC").
		Limit(limitOrDefault(filter.Limit)).
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shortlist: %w", err)
	}
	return evals, nil
}

// FindByResume returns every evaluation of a resume, oldest first.
func (r *evaluationRepository) FindByResume(ctx context.Context, resumeID uuid.UUID) ([]models.Evaluation, error) {
	var evals []models.Evaluation
	err := r.db.WithContext(ctx).
		Where("resume_id = ?", resumeID).
		Order("created_at ASC").
		Find(&evals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find evaluations for resume: %w", err)
	}
	return evals, nil
}

func (r *evaluationRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Evaluation{}).
		Select("evaluations.*").
		Joins("JOIN resumes ON resumes.id = evaluations.resume_id").
		Joins("JOIN job_descriptions ON job_descriptions.id = evaluations.jd_id").
		Preload("Resume").
		Preload("JobDescription")
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}

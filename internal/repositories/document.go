package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-relevance/internal/models"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Resume, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Resume, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	if err := r.db.WithContext(ctx).Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindByIDs implements ResumeRepository. Missing ids are skipped.
func (r *resumeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	if len(ids) == 0 {
		return resumes, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to find resumes: %w", err)
	}

	return resumes, nil
}

type JobDescriptionRepository interface {
	Create(ctx context.Context, jd *models.JobDescription) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.JobDescription, error)
	List(ctx context.Context) ([]models.JobDescription, error)
}

type jobDescriptionRepository struct {
	db *gorm.DB
}

func NewJobDescriptionRepository(db *gorm.DB) JobDescriptionRepository {
	return &jobDescriptionRepository{db: db}
}

func (r *jobDescriptionRepository) Create(ctx context.Context, jd *models.JobDescription) error {
	if err := r.db.WithContext(ctx).Create(jd).Error; err != nil {
		return fmt.Errorf("failed to create job description: %w", err)
	}

	return nil
}

func (r *jobDescriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.JobDescription, error) {
	var jd models.JobDescription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&jd).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job description %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find job description: %w", err)
	}

	return &jd, nil
}

// List returns every job description, oldest first.
func (r *jobDescriptionRepository) List(ctx context.Context) ([]models.JobDescription, error) {
	var jds []models.JobDescription
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&jds).Error; err != nil {
		return nil, fmt.Errorf("failed to list job descriptions: %w", err)
	}

	return jds, nil
}

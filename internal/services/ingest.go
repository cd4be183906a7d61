package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/repositories"
	"alfredoptarigan/resume-relevance/internal/scoring"
)

// IngestService turns uploaded documents into stored records with every
// derived field the scorer reads.
type IngestService interface {
	IngestResume(ctx context.Context, upload models.ResumeUpload) (*models.Resume, error)
	IngestResumeFile(ctx context.Context, upload models.ResumeUpload) (*models.Resume, error)
	IngestJD(ctx context.Context, req models.JDCreate) (*models.JobDescription, error)
	IngestJDFile(ctx context.Context, filePath, originalName string) (*models.JobDescription, error)
}

type ingestService struct {
	resumeRepo repositories.ResumeRepository
	jdRepo     repositories.JobDescriptionRepository
	extractor  TextExtractor
	embedder   scoring.Embedder
	index      VectorIndex
	skills     *scoring.SkillExtractor
	ontology   scoring.Ontology
	logger     *zap.Logger
}

// NewIngestService wires ingestion. embedder and index may be nil: resumes
// are then stored without an embedding or without being indexed.
func NewIngestService(
	resumeRepo repositories.ResumeRepository,
	jdRepo repositories.JobDescriptionRepository,
	extractor TextExtractor,
	embedder scoring.Embedder,
	index VectorIndex,
	skills *scoring.SkillExtractor,
	ontology scoring.Ontology,
	logger *zap.Logger,
) IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ontology == nil {
		ontology = scoring.DefaultOntology()
	}
	if skills == nil {
		skills = scoring.NewSkillExtractor(ontology.Vocabulary(), scoring.DefaultSkillMatchThreshold)
	}
	return &ingestService{
		resumeRepo: resumeRepo,
		jdRepo:     jdRepo,
		extractor:  extractor,
		embedder:   embedder,
		index:      index,
		skills:     skills,
		ontology:   ontology,
		logger:     logger,
	}
}

// IngestResume derives sections, anonymized text, career stage, skills and
// the embedding from upload.RawText and persists the resume.
func (s *ingestService) IngestResume(ctx context.Context, upload models.ResumeUpload) (*models.Resume, error) {
	text := scoring.Standardize(upload.RawText)
	anonymized, redactions := scoring.Anonymize(text)

	resume := &models.Resume{
		CandidateName:    strings.TrimSpace(upload.CandidateName),
		Email:            strings.TrimSpace(upload.Email),
		Phone:            strings.TrimSpace(upload.Phone),
		Location:         strings.TrimSpace(upload.Location),
		OriginalFileName: upload.OriginalFileName,
		FilePath:         upload.FilePath,
		RawText:          text,
		AnonymizedText:   anonymized,
		Sections:         datatypes.NewJSONType(scoring.SplitSections(text)),
		Skills:           datatypes.JSONSlice[string](s.skills.Extract(text, nil)),
		CareerStage:      string(scoring.ClassifyCareerStage(text)),
		Redactions:       datatypes.NewJSONType(redactions),
	}

	if s.embedder != nil {
		vec, err := s.embedder.Embed(ctx, anonymized)
		if err != nil {
			s.logger.Warn("⚠️ resume embedding failed, storing without embedding", zap.Error(err))
		} else {
			resume.Embedding = datatypes.JSONSlice[float32](vec)
		}
	}

	if err := s.resumeRepo.Create(ctx, resume); err != nil {
		return nil, err
	}

	s.logger.Info("✅ Resume saved",
		zap.String("resume_id", resume.ID.String()),
		zap.String("career_stage", resume.CareerStage),
		zap.Int("skills", len(resume.Skills)),
		zap.Int("redactions", redactions.Total()),
	)

	if s.index != nil && len(resume.Embedding) > 0 {
		if err := s.index.UpsertResume(ctx, resume); err != nil {
			s.logger.Warn("⚠️ failed to index resume", zap.String("resume_id", resume.ID.String()), zap.Error(err))
		}
	}

	return resume, nil
}

// IngestResumeFile extracts upload.FilePath and ingests the text.
func (s *ingestService) IngestResumeFile(ctx context.Context, upload models.ResumeUpload) (*models.Resume, error) {
	text, err := s.extractor.ExtractText(upload.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	upload.RawText = text
	if upload.OriginalFileName == "" {
		upload.OriginalFileName = filepath.Base(upload.FilePath)
	}
	return s.IngestResume(ctx, upload)
}

// IngestJD stores a job description. Skill lists given explicitly are
// normalized; a missing list is derived from the text via the ontology.
func (s *ingestService) IngestJD(ctx context.Context, req models.JDCreate) (*models.JobDescription, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.RawText) == "" {
		return nil, fmt.Errorf("%w: raw_text is required", ErrInvalidInput)
	}

	derivedMust, derivedGood := scoring.ParseJD(req.RawText, s.ontology)

	must := scoring.NormalizeSkills(req.MustHave)
	if len(must) == 0 {
		must = derivedMust
	}
	good := scoring.NormalizeSkills(req.GoodToHave)
	if len(good) == 0 {
		good = derivedGood
	}

	jd := &models.JobDescription{
		Title:      strings.TrimSpace(req.Title),
		Company:    strings.TrimSpace(req.Company),
		Location:   strings.TrimSpace(req.Location),
		RawText:    req.RawText,
		MustHave:   datatypes.JSONSlice[string](must),
		GoodToHave: datatypes.JSONSlice[string](good),
	}
	if err := s.jdRepo.Create(ctx, jd); err != nil {
		return nil, err
	}

	s.logger.Info("✅ JD saved",
		zap.String("jd_id", jd.ID.String()),
		zap.Strings("must_have", must),
		zap.Strings("good_to_have", good),
	)
	return jd, nil
}

// IngestJDFile extracts a job description file and stores it titled by
// its original file name.
func (s *ingestService) IngestJDFile(ctx context.Context, filePath, originalName string) (*models.JobDescription, error) {
	text, err := s.extractor.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job description text: %w", err)
	}
	if originalName == "" {
		originalName = filepath.Base(filePath)
	}
	return s.IngestJD(ctx, models.JDCreate{Title: originalName, RawText: text})
}

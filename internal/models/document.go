package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"alfredoptarigan/resume-relevance/internal/scoring"
)

// Resume is an uploaded candidate document with every field the scorer
// needs derived at upload time. Rows are never updated after creation.
type Resume struct {
	ID               uuid.UUID                                   `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateName    string                                      `gorm:"type:text;index" json:"candidate_name"`
	Email            string                                      `gorm:"type:text;index" json:"email"`
	Phone            string                                      `gorm:"type:text" json:"phone"`
	Location         string                                      `gorm:"type:text;index" json:"location"`
	OriginalFileName string                                      `gorm:"type:text" json:"original_filename"`
	FilePath         string                                      `gorm:"type:text" json:"-"`
	RawText          string                                      `gorm:"type:text" json:"raw_text"`
	AnonymizedText   string                                      `gorm:"type:text" json:"anonymized_text"`
	Sections         datatypes.JSONType[map[string]string]       `json:"sections"`
	Skills           datatypes.JSONSlice[string]                 `json:"skills"`
	CareerStage      string                                      `gorm:"type:text;not null;default:'unknown'" json:"career_stage"`
	Embedding        datatypes.JSONSlice[float32]                `json:"-"`
	Redactions       datatypes.JSONType[scoring.RedactionCounts] `json:"redactions"`
	CreatedAt        time.Time                                   `json:"created_at"`
}

func (Resume) TableName() string {
	return "resumes"
}

func (r *Resume) BeforeCreate(*gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// JobDescription holds a posting and its normalized skill lists.
type JobDescription struct {
	ID         uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string                      `gorm:"type:text;index" json:"title"`
	Company    string                      `gorm:"type:text;index" json:"company"`
	Location   string                      `gorm:"type:text;index" json:"location"`
	RawText    string                      `gorm:"type:text" json:"raw_text"`
	MustHave   datatypes.JSONSlice[string] `json:"must_have"`
	GoodToHave datatypes.JSONSlice[string] `json:"good_to_have"`
	CreatedAt  time.Time                   `json:"created_at"`
}

func (JobDescription) TableName() string {
	return "job_descriptions"
}

func (j *JobDescription) BeforeCreate(*gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

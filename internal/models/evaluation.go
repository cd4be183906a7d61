package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"alfredoptarigan/resume-relevance/internal/scoring"
)

type SoftMatch struct {
	Similarity float64 `json:"similarity"`
}

// Evaluation is the immutable outcome of scoring one resume against one job
// description. Re-scoring a pair inserts a new row.
type Evaluation struct {
	ID              uuid.UUID                                   `gorm:"type:uuid;primaryKey" json:"id"`
	ResumeID        uuid.UUID                                   `gorm:"type:uuid;not null;index" json:"resume_id"`
	JDID            uuid.UUID                                   `gorm:"column:jd_id;type:uuid;not null;index" json:"jd_id"`
	RelevanceScore  float64                                     `gorm:"not null;index" json:"relevance_score"`
	Verdict         string                                      `gorm:"type:text;not null" json:"verdict"`
	Feedback        string                                      `gorm:"type:text" json:"feedback"`
	BiasAnonymized  bool                                        `gorm:"not null;default:false" json:"bias_anonymized"`
	HardMatch       datatypes.JSONType[scoring.HardMatchResult] `json:"hard_match"`
	SoftMatch       datatypes.JSONType[SoftMatch]               `json:"soft_match"`
	MissingElements datatypes.JSONType[scoring.MissingElements] `json:"missing_elements"`
	ATSReport       datatypes.JSONType[scoring.ATSReport]       `gorm:"column:ats_report" json:"ats_report"`
	Explainability  datatypes.JSONType[scoring.Explanation]     `json:"explainability"`
	Weights         datatypes.JSONType[scoring.Weights]         `json:"weights"`
	Components      datatypes.JSONType[scoring.Components]      `json:"components"`
	CreatedAt       time.Time                                   `json:"created_at"`

	// Relations
	Resume         *Resume         `gorm:"foreignKey:ResumeID" json:"resume,omitempty"`
	JobDescription *JobDescription `gorm:"foreignKey:JDID" json:"jd,omitempty"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}

func (e *Evaluation) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NewEvaluation maps a pipeline result onto a row for the given pair.
func NewEvaluation(resumeID, jdID uuid.UUID, res *scoring.Result) *Evaluation {
	return &Evaluation{
		ResumeID:        resumeID,
		JDID:            jdID,
		RelevanceScore:  res.RelevanceScore,
		Verdict:         string(res.Verdict),
		Feedback:        res.Feedback,
		BiasAnonymized:  res.BiasAnonymized,
		HardMatch:       datatypes.NewJSONType(res.HardMatch),
		SoftMatch:       datatypes.NewJSONType(SoftMatch{Similarity: res.SoftSimilarity}),
		MissingElements: datatypes.NewJSONType(res.MissingElements),
		ATSReport:       datatypes.NewJSONType(res.ATSReport),
		Explainability:  datatypes.NewJSONType(res.Explainability),
		Weights:         datatypes.NewJSONType(res.Weights),
		Components:      datatypes.NewJSONType(res.Components),
	}
}

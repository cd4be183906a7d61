package models

import "alfredoptarigan/resume-relevance/internal/scoring"

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileType     string `json:"file_type"`
}

// ResumeUpload carries an extracted resume and the optional contact details
// submitted with it.
type ResumeUpload struct {
	RawText          string
	CandidateName    string
	Email            string
	Phone            string
	Location         string
	OriginalFileName string
	FilePath         string
}

type JDCreate struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	RawText    string   `json:"raw_text"`
	MustHave   []string `json:"must_have,omitempty"`
	GoodToHave []string `json:"good_to_have,omitempty"`
}

// EvaluateRequest is the body of POST /evaluate. BiasAnonymize defaults to
// true when omitted.
type EvaluateRequest struct {
	ResumeID      string           `json:"resume_id"`
	JDID          string           `json:"jd_id"`
	BiasAnonymize *bool            `json:"bias_anonymize,omitempty"`
	Weights       *scoring.Weights `json:"weights,omitempty"`
}

func (r EvaluateRequest) Anonymize() bool {
	return r.BiasAnonymize == nil || *r.BiasAnonymize
}

type DashboardFilter struct {
	JobTitle string
	MinScore float64
	Location string
	Limit    int
}

type ShortlistFilter struct {
	MinScore float64
	Location string
	Limit    int
}

type ShortlistEntry struct {
	EvaluationID  string  `json:"evaluation_id"`
	ResumeID      string  `json:"resume_id"`
	CandidateName string  `json:"candidate_name"`
	Score         float64 `json:"score"`
	Verdict       string  `json:"verdict"`
	CareerStage   string  `json:"career_stage"`
}

// MatrixEntry pairs a job description with the most recent score of one
// resume against it. Score and Verdict are nil when the pair was never
// evaluated.
type MatrixEntry struct {
	JDID    string   `json:"jd_id"`
	JDTitle string   `json:"jd_title"`
	Company string   `json:"company"`
	Score   *float64 `json:"score"`
	Verdict *string  `json:"verdict"`
}

type SemanticHit struct {
	ResumeID      string  `json:"resume_id"`
	CandidateName string  `json:"candidate_name"`
	Location      string  `json:"location"`
	CareerStage   string  `json:"career_stage"`
	Similarity    float64 `json:"similarity"`
}

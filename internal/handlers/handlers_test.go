package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-relevance/internal/config"
	"alfredoptarigan/resume-relevance/internal/models"
	"alfredoptarigan/resume-relevance/internal/repositories"
	"alfredoptarigan/resume-relevance/internal/scoring"
	"alfredoptarigan/resume-relevance/internal/services"
)

const resumeText = "Name: Jane Doe\njane@example.io\nExperience: 3 years\n" +
	"- built Python services\n- tuned SQL queries\nSkills: Python, SQL, Docker"

type testServer struct {
	app       *fiber.App
	uploadDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	db, err := config.OpenSQLite(filepath.Join(dir, "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	resumeRepo := repositories.NewResumeRepository(db)
	jdRepo := repositories.NewJobDescriptionRepository(db)
	evalRepo := repositories.NewEvaluationRepository(db)
	embedder := services.NewHashEmbedder(64)

	uploadDir := filepath.Join(dir, "uploads")
	storage := services.NewStorageService(uploadDir, 1<<20)
	require.NoError(t, storage.EnsureUploadDir())

	ingest := services.NewIngestService(resumeRepo, jdRepo, services.NewTextExtractor(), embedder, nil, nil, nil, nil)
	evaluator := services.NewEvaluatorService(evalRepo, resumeRepo, jdRepo, scoring.NewPipeline(embedder, scoring.DefaultConfig(), nil), nil)
	search := services.NewSearchService(evalRepo, resumeRepo, jdRepo, embedder, nil)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	RegisterRoutes(app, Handlers{
		Upload:     NewUploadHandler(ingest, storage, nil),
		Evaluation: NewEvaluationHandler(evaluator),
		Result:     NewResultHandler(evaluator, search),
		Search:     NewSearchHandler(search),
	})

	return &testServer{app: app, uploadDir: uploadDir}
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, []byte) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func (s *testServer) postJSON(t *testing.T, path string, payload any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return s.do(t, req)
}

func (s *testServer) get(t *testing.T, path string) (int, []byte) {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) upload(t *testing.T, path, filename, content string, fields map[string]string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return s.do(t, req)
}

func (s *testServer) seed(t *testing.T) (resumeID, jdID string) {
	t.Helper()

	code, body := s.upload(t, "/api/v1/upload/resume", "jane.txt", resumeText, map[string]string{
		"candidate_name": "Jane Doe",
		"location":       "Pune",
	})
	require.Equal(t, fiber.StatusCreated, code, string(body))
	var resume models.Resume
	require.NoError(t, json.Unmarshal(body, &resume))

	code, body = s.postJSON(t, "/api/v1/upload/jd", models.JDCreate{
		Title:      "Backend Engineer",
		Company:    "Acme",
		RawText:    "Backend engineer with Python, SQL and AWS.",
		MustHave:   []string{"python", "sql", "aws"},
		GoodToHave: []string{"docker"},
	})
	require.Equal(t, fiber.StatusCreated, code, string(body))
	var jd models.JobDescription
	require.NoError(t, json.Unmarshal(body, &jd))

	return resume.ID.String(), jd.ID.String()
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	code, body := s.get(t, "/api/v1/health")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, string(body), "healthy")
}

func TestUploadResume(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	code, body := s.upload(t, "/api/v1/upload/resume", "jane.txt", resumeText, map[string]string{
		"candidate_name": "Jane Doe",
		"email":          "jane@example.io",
		"location":       "Pune",
	})
	require.Equal(t, fiber.StatusCreated, code, string(body))

	var resume models.Resume
	require.NoError(t, json.Unmarshal(body, &resume))
	assert.Equal(t, "Jane Doe", resume.CandidateName)
	assert.Equal(t, "jane.txt", resume.OriginalFileName)
	assert.Equal(t, string(scoring.StageMid), resume.CareerStage)
	assert.NotContains(t, resume.AnonymizedText, "jane@example.io")

	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUploadResumeErrors(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	code, body := s.upload(t, "/api/v1/upload/resume", "cv.exe", "binary", nil)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, code, string(body))

	code, body = s.upload(t, "/api/v1/upload/resume", "blank.txt", "   \n\n", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code, string(body))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload/resume", nil)
	code, _ = s.do(t, req)
	assert.Equal(t, fiber.StatusBadRequest, code)

	// rejected uploads leave nothing behind
	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadJD(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)

	code, body := s.postJSON(t, "/api/v1/upload/jd", models.JDCreate{Title: "Data", RawText: "We need strong Python and SQL."})
	require.Equal(t, fiber.StatusCreated, code, string(body))
	var jd models.JobDescription
	require.NoError(t, json.Unmarshal(body, &jd))
	assert.Contains(t, []string(jd.MustHave), "python")

	code, _ = s.postJSON(t, "/api/v1/upload/jd", models.JDCreate{Title: "No text"})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = s.upload(t, "/api/v1/upload/jd-file", "jd.md", "# Platform\nKubernetes and Terraform required.", nil)
	require.Equal(t, fiber.StatusCreated, code, string(body))
}

func TestEvaluateAndFetch(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	resumeID, jdID := s.seed(t)

	code, body := s.postJSON(t, "/api/v1/evaluate", fiber.Map{"resume_id": resumeID, "jd_id": jdID})
	require.Equal(t, fiber.StatusCreated, code, string(body))

	var eval models.Evaluation
	require.NoError(t, json.Unmarshal(body, &eval))
	assert.True(t, eval.BiasAnonymized)
	assert.GreaterOrEqual(t, eval.RelevanceScore, 0.0)
	assert.LessOrEqual(t, eval.RelevanceScore, 100.0)
	assert.Equal(t, []string{"aws"}, eval.HardMatch.Data().MissingMust)

	code, body = s.get(t, "/api/v1/evaluations/"+eval.ID.String())
	require.Equal(t, fiber.StatusOK, code, string(body))
	var fetched models.Evaluation
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, eval.ID, fetched.ID)
	require.NotNil(t, fetched.Resume)
	assert.Equal(t, "Jane Doe", fetched.Resume.CandidateName)

	code, body = s.get(t, "/api/v1/evaluations/dashboard?job_title=backend&location=pun")
	require.Equal(t, fiber.StatusOK, code, string(body))
	var dashboard []models.Evaluation
	require.NoError(t, json.Unmarshal(body, &dashboard))
	assert.Len(t, dashboard, 1)
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	resumeID, jdID := s.seed(t)

	tests := []struct {
		name    string
		payload fiber.Map
		want    int
	}{
		{name: "missing resume", payload: fiber.Map{"jd_id": jdID}, want: fiber.StatusBadRequest},
		{name: "bad id", payload: fiber.Map{"resume_id": "nope", "jd_id": jdID}, want: fiber.StatusBadRequest},
		{name: "unknown resume", payload: fiber.Map{"resume_id": uuid.NewString(), "jd_id": jdID}, want: fiber.StatusNotFound},
		{name: "unknown jd", payload: fiber.Map{"resume_id": resumeID, "jd_id": uuid.NewString()}, want: fiber.StatusNotFound},
		{
			name:    "negative weight",
			payload: fiber.Map{"resume_id": resumeID, "jd_id": jdID, "weights": fiber.Map{"hard": -1, "soft": 1}},
			want:    fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		code, body := s.postJSON(t, "/api/v1/evaluate", tt.payload)
		assert.Equal(t, tt.want, code, "%s: %s", tt.name, body)
	}

	code, _ := s.get(t, "/api/v1/evaluations/"+uuid.NewString())
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = s.get(t, "/api/v1/evaluations/not-an-id")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestSearchRoutes(t *testing.T) {
	t.Parallel()

	s := newTestServer(t)
	resumeID, jdID := s.seed(t)

	code, body := s.postJSON(t, "/api/v1/evaluate", fiber.Map{
		"resume_id": resumeID,
		"jd_id":     jdID,
		"weights":   fiber.Map{"hard": 1},
	})
	require.Equal(t, fiber.StatusCreated, code, string(body))

	code, body = s.get(t, "/api/v1/search/shortlist?jd_id="+jdID+"&min_score=10")
	require.Equal(t, fiber.StatusOK, code, string(body))
	var shortlist []models.ShortlistEntry
	require.NoError(t, json.Unmarshal(body, &shortlist))
	require.Len(t, shortlist, 1)
	assert.Equal(t, "Jane Doe", shortlist[0].CandidateName)

	code, body = s.get(t, "/api/v1/search/matrix?resume_id="+resumeID)
	require.Equal(t, fiber.StatusOK, code, string(body))
	var matrix []models.MatrixEntry
	require.NoError(t, json.Unmarshal(body, &matrix))
	require.Len(t, matrix, 1)
	assert.NotNil(t, matrix[0].Score)

	code, _ = s.get(t, "/api/v1/search/shortlist?jd_id=bad")
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = s.get(t, "/api/v1/search/matrix?resume_id="+uuid.NewString())
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = s.get(t, "/api/v1/search/semantic?jd_id="+jdID)
	assert.Equal(t, fiber.StatusServiceUnavailable, code)
}

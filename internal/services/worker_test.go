package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-relevance/internal/models"
)

type stubIngest struct {
	IngestService
	calls atomic.Int32
}

func (s *stubIngest) IngestResumeFile(_ context.Context, upload models.ResumeUpload) (*models.Resume, error) {
	s.calls.Add(1)
	if strings.Contains(upload.FilePath, "bad") {
		return nil, errors.New("unreadable")
	}
	return &models.Resume{ID: uuid.New()}, nil
}

func TestIngestWorkerRun(t *testing.T) {
	t.Parallel()

	var paths []string
	for i := 0; i < 20; i++ {
		paths = append(paths, fmt.Sprintf("cv_%d.pdf", i))
	}
	paths = append(paths, "bad_1.pdf", "bad_2.docx")

	stub := &stubIngest{}
	report := NewIngestWorker(stub, 4, nil).Run(context.Background(), paths)

	assert.EqualValues(t, len(paths), stub.calls.Load())
	assert.Len(t, report.Ingested, 20)
	require.Len(t, report.Failed, 2)
	assert.Contains(t, report.Failed, "bad_1.pdf")
	for _, id := range report.Ingested {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestIngestWorkerCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubIngest{}
	report := NewIngestWorker(stub, 0, nil).Run(ctx, []string{"a.pdf", "b.pdf", "c.pdf"})

	assert.LessOrEqual(t, len(report.Ingested)+len(report.Failed), 3)
	assert.Empty(t, report.Failed)
}

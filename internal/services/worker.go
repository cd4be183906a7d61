package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/models"
)

// BatchReport summarizes a bulk ingest run.
// Ingested maps file path to the new resume id.
type BatchReport struct {
	Ingested map[string]string
	Failed   map[string]error
}

// IngestWorker ingests resume files with a fixed number of goroutines.
type IngestWorker interface {
	Run(ctx context.Context, paths []string) BatchReport
}

type ingestWorker struct {
	ingest      IngestService
	concurrency int
	logger      *zap.Logger
}

func NewIngestWorker(ingest IngestService, concurrency int, logger *zap.Logger) IngestWorker {
	if concurrency <= 0 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ingestWorker{
		ingest:      ingest,
		concurrency: concurrency,
		logger:      logger,
	}
}

type ingestOutcome struct {
	path     string
	resumeID string
	err      error
}

// Run implements IngestWorker. A failed file does not stop the others;
// cancelling ctx stops feeding new files.
func (w *ingestWorker) Run(ctx context.Context, paths []string) BatchReport {
	w.logger.Info("🚀 Starting ingest workers",
		zap.Int("workers", w.concurrency),
		zap.Int("files", len(paths)),
	)

	jobQueue := make(chan string)
	outcomes := make(chan ingestOutcome, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go w.processJobs(ctx, i+1, jobQueue, outcomes, &wg)
	}

	go func() {
		defer close(jobQueue)
		for _, p := range paths {
			select {
			case <-ctx.Done():
				return
			case jobQueue <- p:
			}
		}
	}()

	wg.Wait()
	close(outcomes)

	report := BatchReport{
		Ingested: make(map[string]string),
		Failed:   make(map[string]error),
	}
	for o := range outcomes {
		if o.err != nil {
			report.Failed[o.path] = o.err
			continue
		}
		report.Ingested[o.path] = o.resumeID
	}

	w.logger.Info("✅ Ingest finished",
		zap.Int("ingested", len(report.Ingested)),
		zap.Int("failed", len(report.Failed)),
	)
	return report
}

func (w *ingestWorker) processJobs(ctx context.Context, workerID int, jobs <-chan string, outcomes chan<- ingestOutcome, wg *sync.WaitGroup) {
	defer wg.Done()

	for path := range jobs {
		log := w.logger.With(zap.Int("worker", workerID), zap.String("path", path))

		resume, err := w.ingest.IngestResumeFile(ctx, models.ResumeUpload{FilePath: path})
		if err != nil {
			log.Warn("❌ Failed to ingest resume", zap.Error(err))
			outcomes <- ingestOutcome{path: path, err: err}
			continue
		}

		log.Debug("👷 Resume ingested", zap.String("resume_id", resume.ID.String()))
		outcomes <- ingestOutcome{path: path, resumeID: resume.ID.String()}
	}
}

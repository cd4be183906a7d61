package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/config"
	"alfredoptarigan/resume-relevance/internal/repositories"
	"alfredoptarigan/resume-relevance/internal/scoring"
	"alfredoptarigan/resume-relevance/internal/services"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Bulk-ingest every resume file in a directory into the database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runIngest(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().String("dir", "", "directory with resume files")
	ingestCmd.Flags().Int("concurrency", 4, "number of ingest workers")

	bindFlags(ingestCmd, "dir", "concurrency")
}

func runIngest(ctx context.Context, out io.Writer) error {
	dir := viper.GetString("dir")
	if dir == "" {
		return fmt.Errorf("%w: --dir is required", services.ErrInvalidInput)
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	paths, err := collectDocuments(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		log.Warn("⚠️ no supported documents found", zap.String("dir", dir))
		return nil
	}

	cfg := config.Load()
	db, err := config.InitDatabase(cfg, log)
	if err != nil {
		return err
	}

	ontology, err := scoring.LoadOntology(cfg.Scoring.OntologyPath)
	if err != nil {
		return err
	}

	embedder, err := services.NewEmbedder(ctx, cfg, log)
	if err != nil {
		return err
	}

	var index services.VectorIndex
	if cfg.Qdrant.Enabled() {
		index, err = services.NewQdrantIndex(cfg.Qdrant.URL, cfg.Qdrant.APIKey, cfg.Qdrant.Collection, cfg.Scoring.EmbedDimensions, log)
		if err != nil {
			return err
		}
		if err := index.InitCollection(ctx); err != nil {
			return err
		}
	}

	ingest := services.NewIngestService(
		repositories.NewResumeRepository(db),
		repositories.NewJobDescriptionRepository(db),
		services.NewTextExtractor(),
		embedder,
		index,
		services.NewSkillExtractorFor(cfg.Scoring, ontology),
		ontology,
		log,
	)

	report := services.NewIngestWorker(ingest, viper.GetInt("concurrency"), log).Run(ctx, paths)
	writeReport(out, report)

	if len(report.Failed) > 0 {
		return fmt.Errorf("%d of %d documents failed", len(report.Failed), len(paths))
	}
	return nil
}

// collectDocuments returns the supported files under dir, sorted.
func collectDocuments(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if services.IsSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func writeReport(w io.Writer, report services.BatchReport) {
	ingested := make([]string, 0, len(report.Ingested))
	for path := range report.Ingested {
		ingested = append(ingested, path)
	}
	sort.Strings(ingested)
	for _, path := range ingested {
		fmt.Fprintf(w, "✅ %s -> %s\n", path, report.Ingested[path])
	}

	failed := make([]string, 0, len(report.Failed))
	for path := range report.Failed {
		failed = append(failed, path)
	}
	sort.Strings(failed)
	for _, path := range failed {
		fmt.Fprintf(w, "❌ %s: %v\n", path, report.Failed[path])
	}

	fmt.Fprintf(w, "\n📊 %d ingested, %d failed\n", len(report.Ingested), len(report.Failed))
}

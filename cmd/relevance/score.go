package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-relevance/internal/scoring"
	"alfredoptarigan/resume-relevance/internal/services"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume file against one job description file without a database",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runScore(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("resume", "", "resume file (.pdf, .docx, .txt, .md)")
	scoreCmd.Flags().String("jd", "", "job description file (.pdf, .docx, .txt, .md)")
	scoreCmd.Flags().StringSlice("must", nil, "must-have skills, derived from the JD when empty")
	scoreCmd.Flags().StringSlice("good", nil, "good-to-have skills, derived from the JD when empty")
	scoreCmd.Flags().Float64("weight-hard", 0, "hard match weight")
	scoreCmd.Flags().Float64("weight-soft", 0, "semantic similarity weight")
	scoreCmd.Flags().Float64("weight-ats", 0, "ATS hygiene weight")
	scoreCmd.Flags().Bool("no-anonymize", false, "score the raw resume text instead of the redacted one")
	scoreCmd.Flags().Bool("json", false, "print the full result as JSON")
	scoreCmd.Flags().String("ontology", "", "skill ontology YAML (built-in when empty)")
	scoreCmd.Flags().Int("embed-dimensions", services.DefaultHashDimensions, "hash embedding dimensions")

	bindFlags(scoreCmd, "resume", "jd", "must", "good", "weight-hard", "weight-soft", "weight-ats",
		"no-anonymize", "json", "ontology", "embed-dimensions")
}

type scoreOptions struct {
	ResumePath string
	JDPath     string
	MustHave   []string
	GoodToHave []string
	Weights    *scoring.Weights
	Anonymize  bool
	Ontology   string
	Dimensions int
}

func scoreOptionsFromViper() scoreOptions {
	opts := scoreOptions{
		ResumePath: viper.GetString("resume"),
		JDPath:     viper.GetString("jd"),
		MustHave:   viper.GetStringSlice("must"),
		GoodToHave: viper.GetStringSlice("good"),
		Anonymize:  !viper.GetBool("no-anonymize"),
		Ontology:   viper.GetString("ontology"),
		Dimensions: viper.GetInt("embed-dimensions"),
	}
	w := scoring.Weights{
		Hard: viper.GetFloat64("weight-hard"),
		Soft: viper.GetFloat64("weight-soft"),
		ATS:  viper.GetFloat64("weight-ats"),
	}
	if w != (scoring.Weights{}) {
		opts.Weights = &w
	}
	return opts
}

func runScore(ctx context.Context, out io.Writer) error {
	log := zap.NewNop()
	if viper.GetBool("debug") {
		var err error
		if log, err = newLogger(); err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}
	}

	res, err := scoreFiles(ctx, scoreOptionsFromViper(), log)
	if err != nil {
		return err
	}
	if viper.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return renderResult(out, res)
}

// scoreFiles runs the scoring pipeline on two documents using the hash
// embedder, so no network or database is needed.
func scoreFiles(ctx context.Context, opts scoreOptions, log *zap.Logger) (*scoring.Result, error) {
	if opts.ResumePath == "" || opts.JDPath == "" {
		return nil, fmt.Errorf("%w: --resume and --jd are required", services.ErrInvalidInput)
	}
	ontology, err := scoring.LoadOntology(opts.Ontology)
	if err != nil {
		return nil, err
	}

	extractor := services.NewTextExtractor()
	resumeText, err := extractor.ExtractText(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}
	jdText, err := extractor.ExtractText(opts.JDPath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job description text: %w", err)
	}

	embedder := services.NewHashEmbedder(opts.Dimensions)

	text := scoring.Standardize(resumeText)
	anonymized, _ := scoring.Anonymize(text)
	vec, err := embedder.Embed(ctx, anonymized)
	if err != nil {
		return nil, fmt.Errorf("failed to embed resume: %w", err)
	}

	derivedMust, derivedGood := scoring.ParseJD(jdText, ontology)
	must := scoring.NormalizeSkills(opts.MustHave)
	if len(must) == 0 {
		must = derivedMust
	}
	good := scoring.NormalizeSkills(opts.GoodToHave)
	if len(good) == 0 {
		good = derivedGood
	}

	cfg := scoring.DefaultConfig()
	cfg.Certifications = ontology.Certifications()

	pipeline := scoring.NewPipeline(embedder, cfg, log)
	return pipeline.Evaluate(ctx,
		scoring.ResumeInput{
			RawText:        text,
			AnonymizedText: anonymized,
			Embedding:      vec,
			CareerStage:    scoring.ClassifyCareerStage(text),
			Sections:       scoring.SplitSections(text),
		},
		scoring.JDInput{RawText: jdText, MustHave: must, GoodToHave: good},
		scoring.Options{BiasAnonymize: opts.Anonymize, Weights: opts.Weights},
	)
}

func renderResult(w io.Writer, res *scoring.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Relevance: %.1f (%s)\n", res.RelevanceScore, res.Verdict)
	fmt.Fprintf(&b, "Weights:   hard=%.2f soft=%.2f ats=%.2f\n", res.Weights.Hard, res.Weights.Soft, res.Weights.ATS)
	fmt.Fprintf(&b, "Semantic:  %.3f\n", res.SoftSimilarity)
	fmt.Fprintf(&b, "ATS:       %.0f\n", res.ATSReport.Score)

	fuzzy := make([]string, 0, len(res.HardMatch.FuzzyHits))
	for _, h := range res.HardMatch.FuzzyHits {
		fuzzy = append(fuzzy, fmt.Sprintf("%s (%.0f)", h.Skill, h.Score))
	}
	fmt.Fprintf(&b, "Exact:     %s\n", listOrDash(res.HardMatch.ExactHits))
	fmt.Fprintf(&b, "Fuzzy:     %s\n", listOrDash(fuzzy))
	fmt.Fprintf(&b, "Missing:   %s\n", listOrDash(res.HardMatch.MissingMust))
	fmt.Fprintf(&b, "Bonus:     %s\n", listOrDash(res.HardMatch.GoodHits))

	if feedback := strings.TrimSpace(res.Feedback); feedback != "" {
		fmt.Fprintf(&b, "\n%s\n", feedback)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

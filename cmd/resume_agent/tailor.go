package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/analysis"
	"github.com/jonathan/resume-tailor/internal/embedding"
	"github.com/jonathan/resume-tailor/internal/knowledge"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/tailoring"
	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Generate tailored content for a job posting",
	Long: `Run the full tailoring pipeline: analyze the job posting, score every
project and work experience entry in the knowledge base against it, and
print the tailored content package as JSON.`,
	RunE: runTailor,
}

var (
	tailorJob            string
	tailorJobURL         string
	tailorKnowledgeBase  string
	tailorOutputFile     string
	tailorAPIKey         string
	tailorEmbeddingModel string
	tailorMaxProjects    int
	tailorUseBrowser     bool
	tailorVerbose        bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	tailorCmd.Flags().StringVar(&tailorJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	tailorCmd.Flags().StringVar(&tailorKnowledgeBase, "kb", "", "Path to knowledge base directory (required)")
	tailorCmd.Flags().StringVarP(&tailorOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	tailorCmd.Flags().StringVar(&tailorAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	tailorCmd.Flags().StringVar(&tailorEmbeddingModel, "embedding-model", "", "Embedding model name (optional)")
	tailorCmd.Flags().IntVar(&tailorMaxProjects, "max-projects", 0, "Number of projects to include (1-6)")
	tailorCmd.Flags().BoolVar(&tailorUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	kbPath := tailorKnowledgeBase
	if kbPath == "" {
		kbPath = os.Getenv("KNOWLEDGE_BASE_PATH")
	}
	if kbPath == "" {
		return fmt.Errorf("knowledge base directory is required (use --kb or KNOWLEDGE_BASE_PATH)")
	}

	jobText, err := loadJobText(ctx, tailorJob, tailorJobURL, tailorUseBrowser, tailorVerbose)
	if err != nil {
		return err
	}

	kb, err := knowledge.NewLoader(kbPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load knowledge base: %w", err)
	}

	apiKey := tailorAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var client llm.Client
	if apiKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer client.Close()
	}

	var initFn embedding.InitFunc
	if apiKey != "" {
		key, model := apiKey, tailorEmbeddingModel
		initFn = func(ctx context.Context) (embedding.Backend, error) {
			return embedding.NewGeminiBackend(ctx, key, model)
		}
	}
	agg := scoring.NewAggregator(scoring.NewSemanticScorer(embedding.NewLazy(initFn)))

	req := analysis.NewAnalyzer(client).Analyze(ctx, jobText)

	maxProjects := tailorMaxProjects
	if maxProjects > 6 {
		maxProjects = 6
	}
	content := tailoring.NewAssembler(agg).Assemble(ctx, &req, kb, maxProjects)

	if tailorVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirement(&req)
		printer.PrintTailoredContent(content)
	}

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tailored content: %w", err)
	}
	return writeJSONOutput(tailorOutputFile, data)
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/analysis"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Extract a structured job requirement from a posting",
	Long: `Analyze a job posting (from a local text file or a URL) and print the
extracted job requirement as JSON. Without an API key the analysis degrades
to keyword extraction.`,
	RunE: runAnalyzeJob,
}

var (
	analyzeJob        string
	analyzeJobURL     string
	analyzeOutputFile string
	analyzeAPIKey     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	analyzeJobCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (defaults to stdout)")
	analyzeJobCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	analyzeJobCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	analyzeJobCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted summary to stderr")

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	jobText, err := loadJobText(ctx, analyzeJob, analyzeJobURL, analyzeUseBrowser, analyzeVerbose)
	if err != nil {
		return err
	}

	apiKey := analyzeAPIKey
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

	req := analysis.NewAnalyzer(client).Analyze(ctx, jobText)

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintJobRequirement(&req)
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal job requirement: %w", err)
	}
	return writeJSONOutput(analyzeOutputFile, data)
}

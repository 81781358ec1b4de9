package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/resume-tailor/internal/fetch"
)

// loadJobText resolves the job posting text from either a local file or a
// URL. Exactly one of jobPath and jobURL must be set.
func loadJobText(ctx context.Context, jobPath, jobURL string, useBrowser, verbose bool) (string, error) {
	if jobPath != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	if jobPath != "" {
		data, err := os.ReadFile(jobPath)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return "", fmt.Errorf("job file is empty: %s", jobPath)
		}
		return text, nil
	}

	if jobURL != "" {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = useBrowser
		opts.Verbose = verbose

		result, err := fetch.JobPostingText(ctx, jobURL, opts)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		if strings.TrimSpace(result.Text) == "" {
			return "", fmt.Errorf("no text extracted from %s", jobURL)
		}
		return result.Text, nil
	}

	return "", fmt.Errorf("either --job or --job-url is required")
}

// writeJSONOutput writes data to the given path, or stdout when path is
// empty.
func writeJSONOutput(path string, data []byte) error {
	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

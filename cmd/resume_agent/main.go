package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "Resume tailoring engine",
	Long: `resume_agent analyzes job postings and ranks a personal knowledge base
of projects, work experience, and skills against them to produce a tailored
content package for resume generation.`,
}

func main() {
	// Load .env file if present (ignore errors; env vars may be set directly)
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

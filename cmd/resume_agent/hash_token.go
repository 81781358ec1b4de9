package main

import (
	"fmt"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/spf13/cobra"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Generate a bcrypt hash for an API access token",
	Long: `Generate the bcrypt hash of an API access token. Store the hash in the
API_TOKEN_HASH environment variable to enable authenticated mode.`,
	Args: cobra.ExactArgs(1),
	RunE: runHashToken,
}

var hashTokenCost int

func init() {
	hashTokenCmd.Flags().IntVar(&hashTokenCost, "cost", 0, "Bcrypt cost (defaults to BCRYPT_COST env var or 12)")

	rootCmd.AddCommand(hashTokenCmd)
}

func runHashToken(_ *cobra.Command, args []string) error {
	cfg, err := config.NewTokenConfigForHashing(hashTokenCost)
	if err != nil {
		return err
	}

	hash, err := cfg.HashToken(args[0])
	if err != nil {
		return fmt.Errorf("failed to hash token: %w", err)
	}

	fmt.Println(hash)
	return nil
}

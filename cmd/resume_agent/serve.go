package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for job analysis,
knowledge base inspection, tailored content generation, and project
relevance scoring.`,
	RunE: runServe,
}

var (
	serveConfigPath     string
	servePort           int
	serveKnowledgeBase  string
	serveAPIKey         string
	serveEmbeddingModel string
	serveDatabaseURL    string
	serveMaxProjects    int
	serveEnableAuth     bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveKnowledgeBase, "kb", "", "Path to knowledge base directory")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveEmbeddingModel, "embedding-model", "", "Embedding model name (optional)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().IntVar(&serveMaxProjects, "max-projects", 0, "Default number of projects in tailored output")
	serveCmd.Flags().BoolVar(&serveEnableAuth, "enable-auth", false, "Require JWT auth on /api routes (needs JWT_SECRET and API_TOKEN_HASH)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, config.Config{
		Port:           servePort,
		KnowledgeBase:  serveKnowledgeBase,
		APIKey:         serveAPIKey,
		EmbeddingModel: serveEmbeddingModel,
		DatabaseURL:    serveDatabaseURL,
		MaxProjects:    serveMaxProjects,
	})
	if err != nil {
		return err
	}

	if cfg.KnowledgeBase == "" {
		return fmt.Errorf("knowledge base directory is required (use --kb or 'knowledge_base' in config)")
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Port,
		KnowledgeBase:  cfg.KnowledgeBase,
		APIKey:         cfg.APIKey,
		EmbeddingModel: cfg.EmbeddingModel,
		DatabaseURL:    cfg.DatabaseURL,
		MaxProjects:    cfg.MaxProjects,
		EnableAuth:     serveEnableAuth,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// resolveConfig merges flag values over an optional config file, then fills
// remaining gaps from the environment and builtin defaults. Flags win over
// the file, the file wins over the environment.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	fileCfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = *loaded
	}

	merged := flags.MergeWithDefaults(fileCfg)

	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if merged.KnowledgeBase == "" {
		merged.KnowledgeBase = os.Getenv("KNOWLEDGE_BASE_PATH")
	}

	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/internodyssey/intern-match/internal/config"
	"github.com/internodyssey/intern-match/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for matching, job submission, recommendations, and resume parsing.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to engine config JSON (weights, bonuses, quota categories)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Get API key from environment
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	engineCfg, err := loadEngineConfig(serveConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		engineCfg.Port = servePort
	}

	cfg := server.Config{
		Port:   engineCfg.Port,
		APIKey: apiKey,
		Engine: engineCfg,
	}

	srv, err := server.New(contextOrBackground(cmd), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadEngineConfig loads the engine config from path, or the defaults when no
// path is given.
func loadEngineConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// contextOrBackground guards against cobra commands run without a context.
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

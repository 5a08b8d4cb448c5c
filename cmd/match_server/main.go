// Package main provides the entry point for the internship match engine.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_server",
	Short: "Internship Match Engine",
	Long:  "Internship match engine that scores candidate pools against postings with hybrid skill/semantic scoring and fills capacity under rural and category quotas, via REST API or one-shot CLI runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

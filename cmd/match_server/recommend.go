package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/internodyssey/intern-match/internal/embedding"
	"github.com/internodyssey/intern-match/internal/recommend"
	"github.com/internodyssey/intern-match/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank postings for one candidate",
	Long:  "Score a candidate profile against a list of postings by semantic similarity and print the best matches with confidence percentages.",
	RunE:  runRecommend,
}

var (
	recommendCandidateFile string
	recommendJobsFile      string
	recommendModel         string
	recommendTopK          int
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendCandidateFile, "candidate", "c", "", "Path to candidate JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendJobsFile, "jobs", "j", "", "Path to postings JSON file (required)")
	recommendCmd.Flags().StringVar(&recommendModel, "model", embedding.DefaultModel, "Gemini embedding model")
	recommendCmd.Flags().IntVarP(&recommendTopK, "top", "n", recommend.DefaultTopK, "Number of postings to return")

	recommendCmd.MarkFlagRequired("candidate")
	recommendCmd.MarkFlagRequired("jobs")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	candidateData, err := os.ReadFile(recommendCandidateFile)
	if err != nil {
		return fmt.Errorf("failed to read candidate file: %w", err)
	}
	var candidate types.Candidate
	if err := json.Unmarshal(candidateData, &candidate); err != nil {
		return fmt.Errorf("failed to parse candidate JSON: %w", err)
	}
	if err := candidate.Validate(); err != nil {
		return fmt.Errorf("invalid candidate: %w", err)
	}

	jobsData, err := os.ReadFile(recommendJobsFile)
	if err != nil {
		return fmt.Errorf("failed to read postings file: %w", err)
	}
	var jobs []types.Posting
	if err := json.Unmarshal(jobsData, &jobs); err != nil {
		return fmt.Errorf("failed to parse postings JSON: %w", err)
	}
	if len(jobs) == 0 {
		return fmt.Errorf("postings file contains no postings")
	}

	ctx := contextOrBackground(cmd)

	provider, err := embedding.NewGeminiProvider(ctx, apiKey, recommendModel)
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %w", err)
	}
	defer provider.Close()

	recs, err := recommend.Jobs(ctx, provider, &candidate, jobs, recommendTopK)
	if err != nil {
		return fmt.Errorf("recommendation failed: %w", err)
	}

	return printJSON(recs)
}

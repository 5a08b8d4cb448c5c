package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/internodyssey/intern-match/internal/embedding"
	"github.com/internodyssey/intern-match/internal/matching"
	"github.com/internodyssey/intern-match/internal/schemas"
	"github.com/internodyssey/intern-match/internal/types"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run a one-shot match from JSON files",
	Long:  "Score a candidate pool against a posting and print the quota-compliant selection as JSON. Candidates are schema-validated before any scoring work.",
	RunE:  runMatch,
}

var (
	matchPostingFile    string
	matchCandidatesFile string
	matchConfig         string
	matchTopN           int
	matchShowAll        bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchPostingFile, "posting", "p", "", "Path to posting JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCandidatesFile, "candidates", "c", "", "Path to candidates JSON file (required)")
	matchCmd.Flags().StringVar(&matchConfig, "config", "", "Path to engine config JSON")
	matchCmd.Flags().IntVar(&matchTopN, "top", 0, "Select the top N candidates by merit, ignoring quotas")
	matchCmd.Flags().BoolVar(&matchShowAll, "all", false, "Include the full scored pool in the output")

	matchCmd.MarkFlagRequired("posting")
	matchCmd.MarkFlagRequired("candidates")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	engineCfg, err := loadEngineConfig(matchConfig)
	if err != nil {
		return err
	}
	if err := engineCfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	req, err := loadMatchRequest(matchPostingFile, matchCandidatesFile)
	if err != nil {
		return err
	}

	ctx := contextOrBackground(cmd)

	provider, err := embedding.NewGeminiProvider(ctx, apiKey, engineCfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedding provider: %w", err)
	}
	defer provider.Close()

	engine := matching.NewEngine(provider, engineCfg.Scorer(), engineCfg.Selector())

	var resp *types.MatchResponse
	if matchTopN > 0 {
		resp, err = engine.MatchTopN(ctx, req, matchTopN)
	} else {
		resp, err = engine.Match(ctx, req)
	}
	if err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	if !matchShowAll {
		resp.AllCandidates = nil
	}

	return printJSON(resp)
}

// loadMatchRequest reads and validates the posting and candidate files. The
// candidate file is checked against the candidates JSON schema before
// unmarshaling so malformed records fail with field-level errors.
func loadMatchRequest(postingPath, candidatesPath string) (*types.MatchRequest, error) {
	postingData, err := os.ReadFile(postingPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read posting file: %w", err)
	}

	var posting types.Posting
	if err := json.Unmarshal(postingData, &posting); err != nil {
		return nil, fmt.Errorf("failed to parse posting JSON: %w", err)
	}

	if err := schemas.ValidateJSONFile(schemas.CandidatesSchema, candidatesPath); err != nil {
		return nil, fmt.Errorf("candidate file validation failed: %w", err)
	}

	candidatesData, err := os.ReadFile(candidatesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file: %w", err)
	}

	var candidates []types.Candidate
	if err := json.Unmarshal(candidatesData, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse candidates JSON: %w", err)
	}

	req := &types.MatchRequest{Posting: posting, Candidates: candidates}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match input: %w", err)
	}
	return req, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

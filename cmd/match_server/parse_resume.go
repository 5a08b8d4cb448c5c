package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/internodyssey/intern-match/internal/llm"
	"github.com/internodyssey/intern-match/internal/resume"
	"github.com/spf13/cobra"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract a structured candidate record from resume text",
	Long:  "Parse raw resume text into structured fields (name, skills, education, work history) with the Gemini extraction model, and optionally emit a candidate record ready for matching.",
	RunE:  runParseResume,
}

var (
	parseInputFile   string
	parseModel       string
	parseAsCandidate bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "input", "i", "", "Path to resume text file (required)")
	parseResumeCmd.Flags().StringVar(&parseModel, "model", llm.DefaultParseModel, "Gemini model used for extraction")
	parseResumeCmd.Flags().BoolVar(&parseAsCandidate, "candidate", false, "Output a candidate record instead of the raw parsed resume")

	parseResumeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	data, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	ctx := contextOrBackground(cmd)

	client, err := llm.NewGeminiClient(ctx, apiKey, parseModel)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	parsed, err := resume.NewParser(client).Parse(ctx, string(data))
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if parseAsCandidate {
		return printJSON(parsed.ToCandidate(uuid.NewString()))
	}
	return printJSON(parsed)
}

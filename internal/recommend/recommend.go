// Package recommend ranks postings for a candidate profile, and candidates
// for a free-text job description, by embedding similarity alone. Unlike the
// match pipeline it applies no quotas or equity adjustments.
package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/internodyssey/intern-match/internal/embedding"
	"github.com/internodyssey/intern-match/internal/types"
)

// DefaultTopK is the number of results returned when the caller does not ask
// for a specific count.
const DefaultTopK = 5

// Jobs ranks the given postings against one candidate profile and returns the
// topK best, highest confidence first. Confidence rescales cosine similarity
// from [-1,1] to a 0-100 percentage, rounded to two decimals.
func Jobs(ctx context.Context, provider embedding.Provider, cand *types.Candidate, jobs []types.Posting, topK int) ([]types.JobRecommendation, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	texts := make([]string, 0, len(jobs)+1)
	texts = append(texts, cand.ProfileText())
	for i := range jobs {
		texts = append(texts, jobs[i].Description)
	}

	vectors, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed jobs: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding provider returned %d vectors for %d texts", len(vectors), len(texts))
	}
	candVec := vectors[0]

	type rankedJob struct {
		job *types.Posting
		sim float64
	}
	ranked := make([]rankedJob, 0, len(jobs))
	for i := range jobs {
		ranked = append(ranked, rankedJob{
			job: &jobs[i],
			sim: embedding.CosineSimilarity(candVec, vectors[i+1]),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sim > ranked[j].sim
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]types.JobRecommendation, 0, topK)
	for _, r := range ranked[:topK] {
		out = append(out, types.JobRecommendation{
			JobID:      r.job.ID,
			Title:      r.job.Title,
			Confidence: roundTo2(((r.sim + 1) / 2) * 100),
		})
	}
	return out, nil
}

// CandidateMatch is one candidate ranked against a free-text job description,
// annotated with the literal overlaps found in the description.
type CandidateMatch struct {
	Candidate         types.Candidate `json:"candidate"`
	Score             float64         `json:"score"`
	MatchedSkills     []string        `json:"matched_skills"`
	MatchedLocation   string          `json:"matched_location,omitempty"`
	MatchedExperience string          `json:"matched_experience,omitempty"`
}

// Candidates ranks candidates against a free-text job description and returns
// the topK best by embedding similarity, each annotated with the skills,
// location, and experience fragments that literally appear in the
// description.
func Candidates(ctx context.Context, provider embedding.Provider, jobDescription string, candidates []types.Candidate, topK int) ([]CandidateMatch, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, jobDescription)
	for i := range candidates {
		texts = append(texts, candidates[i].ProfileText())
	}

	vectors, err := provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidates: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding provider returned %d vectors for %d texts", len(vectors), len(texts))
	}
	jobVec := vectors[0]

	matches := make([]CandidateMatch, 0, len(candidates))
	descLower := strings.ToLower(jobDescription)
	for i := range candidates {
		m := CandidateMatch{
			Candidate: candidates[i],
			Score:     embedding.CosineSimilarity(jobVec, vectors[i+1]),
		}
		for _, skill := range candidates[i].Skills {
			if strings.Contains(descLower, strings.ToLower(skill)) {
				m.MatchedSkills = append(m.MatchedSkills, skill)
			}
		}
		if loc := candidates[i].Location; loc != "" && strings.Contains(descLower, strings.ToLower(loc)) {
			m.MatchedLocation = loc
		}
		if exp := candidates[i].Experience; exp != "" && anyWordIn(descLower, exp) {
			m.MatchedExperience = exp
		}
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if topK > len(matches) {
		topK = len(matches)
	}
	return matches[:topK], nil
}

// anyWordIn reports whether any whitespace-separated word of text appears in
// the lowercased haystack.
func anyWordIn(haystackLower, text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if strings.Contains(haystackLower, word) {
			return true
		}
	}
	return false
}

// roundTo2 rounds to two decimal places.
func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

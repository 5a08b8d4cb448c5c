// Package matching orchestrates the scoring pipeline: eligibility filtering,
// batch embedding, hybrid scoring, and quota-constrained selection.
package matching

import (
	"context"
	"fmt"

	"github.com/internodyssey/intern-match/internal/embedding"
	"github.com/internodyssey/intern-match/internal/scoring"
	"github.com/internodyssey/intern-match/internal/selection"
	"github.com/internodyssey/intern-match/internal/types"
)

// Engine runs match requests against an embedding provider. It holds no
// request state: every invocation works on its own posting/candidate data, so
// concurrent Match calls need no locking.
type Engine struct {
	provider embedding.Provider
	scorer   *scoring.Scorer
	selector *selection.Selector
}

// NewEngine creates an Engine with the given embedding provider. A nil scorer
// or selector falls back to the defaults.
func NewEngine(provider embedding.Provider, scorer *scoring.Scorer, selector *selection.Selector) *Engine {
	if scorer == nil {
		scorer = scoring.NewDefaultScorer()
	}
	if selector == nil {
		selector = selection.NewSelector(nil)
	}
	return &Engine{provider: provider, scorer: scorer, selector: selector}
}

// Match scores the eligible candidate pool against the posting and returns a
// quota-compliant selection with per-candidate breakdowns. The request must
// already be validated.
func (e *Engine) Match(ctx context.Context, req *types.MatchRequest) (*types.MatchResponse, error) {
	scored, err := e.ScorePool(ctx, &req.Posting, req.Candidates)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return &types.MatchResponse{Selected: []types.ScoredCandidate{}, Message: NoFresherMessage}, nil
	}

	result := e.selector.Select(&req.Posting, scored)
	return &types.MatchResponse{
		Selected:      result.Selected,
		AllCandidates: scored,
		Message:       result.Message,
	}, nil
}

// MatchTopN scores the eligible pool and returns the n best candidates by
// merit alone, ignoring quotas. Used when a caller overrides the posting's
// capacity with an explicit count.
func (e *Engine) MatchTopN(ctx context.Context, req *types.MatchRequest, n int) (*types.MatchResponse, error) {
	scored, err := e.ScorePool(ctx, &req.Posting, req.Candidates)
	if err != nil {
		return nil, err
	}
	if len(scored) == 0 {
		return &types.MatchResponse{Selected: []types.ScoredCandidate{}, Message: NoFresherMessage}, nil
	}

	result := selection.SelectTopN(scored, n)
	return &types.MatchResponse{
		Selected:      result.Selected,
		AllCandidates: scored,
		Message:       result.Message,
	}, nil
}

// ScorePool filters the candidate pool for eligibility, embeds the posting
// description and every surviving candidate profile in a single batch call,
// and computes the hybrid score per candidate. The returned slice preserves
// the input candidate order.
func (e *Engine) ScorePool(ctx context.Context, posting *types.Posting, candidates []types.Candidate) ([]types.ScoredCandidate, error) {
	eligible := FilterEligible(candidates)
	if len(eligible) == 0 {
		return nil, nil
	}

	// One batch: posting description first, then every candidate profile.
	texts := make([]string, 0, len(eligible)+1)
	texts = append(texts, posting.Description)
	for i := range eligible {
		texts = append(texts, eligible[i].ProfileText())
	}

	vectors, err := e.provider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed candidate pool: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("embedding provider returned %d vectors for %d texts", len(vectors), len(texts))
	}
	postingVec := vectors[0]

	scored := make([]types.ScoredCandidate, 0, len(eligible))
	for i := range eligible {
		semSim := embedding.CosineSimilarity(vectors[i+1], postingVec)
		final, bd := e.scorer.Score(&eligible[i], posting, semSim)
		scored = append(scored, types.ScoredCandidate{
			Candidate:  eligible[i],
			FinalScore: final,
			Breakdown:  bd,
		})
	}
	return scored, nil
}

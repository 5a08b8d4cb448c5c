// Package selection allocates a posting's capacity over scored candidates,
// honoring hard-minimum quotas before filling the rest by merit.
package selection

import (
	"fmt"
	"sort"

	"github.com/internodyssey/intern-match/internal/types"
)

// CategoryQuota binds a social category to the quota key that reserves seats
// for it. Categories are processed in declared order after the rural pass.
type CategoryQuota struct {
	Category string `json:"category"`
	QuotaKey string `json:"quota_key"`
}

// DefaultCategoryQuotas returns the standard category pass order: SC then ST.
func DefaultCategoryQuotas() []CategoryQuota {
	return []CategoryQuota{
		{Category: "SC", QuotaKey: types.QuotaSCMin},
		{Category: "ST", QuotaKey: types.QuotaSTMin},
	}
}

// Selector performs quota-constrained selection over scored candidates.
type Selector struct {
	categories []CategoryQuota
}

// NewSelector creates a Selector with the given category pass order.
func NewSelector(categories []CategoryQuota) *Selector {
	if categories == nil {
		categories = DefaultCategoryQuotas()
	}
	return &Selector{categories: categories}
}

// Select fills the posting's capacity in three ordered passes:
//
//  1. rural pass: best-scoring rural candidates, up to the rural_min quota;
//  2. category passes, in configured order: best-scoring candidates of that
//     exact category not yet selected, up to the category quota;
//  3. fill pass: everyone remaining, by score, up to remaining capacity.
//
// Every pass checks remaining capacity before each take, so the selected
// count can never exceed the posting's capacity even when quota minimums sum
// above it. Quotas under-fill silently when too few matching candidates
// exist.
//
// Sorting within a pass is stable: candidates with equal final scores keep
// their relative order from the input sequence. The returned sequence is the
// concatenation of the passes, not a re-sort by score.
func (s *Selector) Select(posting *types.Posting, scored []types.ScoredCandidate) types.SelectionResult {
	remaining := posting.Capacity
	selected := make([]types.ScoredCandidate, 0, posting.Capacity)
	selectedIDs := make(map[string]bool, posting.Capacity)

	take := func(pool []types.ScoredCandidate, want int) {
		sortByScoreDesc(pool)
		for _, sc := range pool {
			if want <= 0 || remaining <= 0 {
				break
			}
			selected = append(selected, sc)
			selectedIDs[sc.Candidate.ID] = true
			want--
			remaining--
		}
	}

	// Rural pass.
	take(filterUnselected(scored, selectedIDs, func(c *types.Candidate) bool {
		return c.Rural
	}), posting.QuotaMin(types.QuotaRuralMin))

	// Category passes.
	for _, cq := range s.categories {
		take(filterUnselected(scored, selectedIDs, func(c *types.Candidate) bool {
			return c.SocialCategory() == cq.Category
		}), posting.QuotaMin(cq.QuotaKey))
	}

	// Fill pass.
	take(filterUnselected(scored, selectedIDs, func(*types.Candidate) bool {
		return true
	}), remaining)

	return types.SelectionResult{
		Selected: selected,
		Message:  fmt.Sprintf("Selected %d candidates.", len(selected)),
	}
}

// SelectTopN bypasses quotas and returns the n best-scoring candidates by
// merit alone, preserving input order on ties.
func SelectTopN(scored []types.ScoredCandidate, n int) types.SelectionResult {
	pool := make([]types.ScoredCandidate, len(scored))
	copy(pool, scored)
	sortByScoreDesc(pool)

	if n < 0 {
		n = 0
	}
	if n > len(pool) {
		n = len(pool)
	}
	selected := pool[:n]

	return types.SelectionResult{
		Selected: selected,
		Message:  fmt.Sprintf("Selected %d candidates.", len(selected)),
	}
}

// filterUnselected returns the candidates matching the predicate that have not
// been selected yet, in input order.
func filterUnselected(scored []types.ScoredCandidate, selectedIDs map[string]bool, keep func(*types.Candidate) bool) []types.ScoredCandidate {
	out := make([]types.ScoredCandidate, 0, len(scored))
	for i := range scored {
		if selectedIDs[scored[i].Candidate.ID] {
			continue
		}
		if keep(&scored[i].Candidate) {
			out = append(out, scored[i])
		}
	}
	return out
}

// sortByScoreDesc sorts in place by final score descending. The sort is
// stable so equal scores retain input order, which keeps selection
// deterministic.
func sortByScoreDesc(pool []types.ScoredCandidate) {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].FinalScore > pool[j].FinalScore
	})
}

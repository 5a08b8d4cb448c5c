package matching

import (
	"github.com/internodyssey/intern-match/internal/types"
)

// NoFresherMessage is the terminal status when eligibility filtering empties
// the candidate pool. An empty pool is a valid outcome, not an error.
const NoFresherMessage = "No fresher candidates found."

// FilterEligible removes candidates flagged as already experienced. The
// fresher track excludes experienced candidates unconditionally; there is no
// posting-level toggle.
func FilterEligible(candidates []types.Candidate) []types.Candidate {
	eligible := make([]types.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.HasExperience {
			continue
		}
		eligible = append(eligible, c)
	}
	return eligible
}

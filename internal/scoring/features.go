// Package scoring computes per-dimension feature scores for candidate/posting
// pairs and combines them into a single hybrid utility score.
package scoring

import "strings"

// SkillFraction returns the fraction of required skills the candidate holds.
// Matching is case-insensitive and whitespace-trimmed on both sides; an empty
// required list yields 0.0 (request validation rejects it upstream, the guard
// only keeps the division from ever escaping).
func SkillFraction(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0.0
	}

	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		if n := normalizeSkill(s); n != "" {
			have[n] = true
		}
	}

	matched := 0
	for _, s := range requiredSkills {
		if have[normalizeSkill(s)] {
			matched++
		}
	}

	return float64(matched) / float64(len(requiredSkills))
}

// LocationScore returns 1.0 when the two location strings are equal under
// case-insensitive, whitespace-trimmed comparison, otherwise 0.0. There is no
// fuzzy or hierarchical matching.
func LocationScore(candidateLoc, postingLoc string) float64 {
	if strings.EqualFold(strings.TrimSpace(candidateLoc), strings.TrimSpace(postingLoc)) {
		return 1.0
	}
	return 0.0
}

// normalizeSkill lowercases and trims a skill string for membership comparison.
func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

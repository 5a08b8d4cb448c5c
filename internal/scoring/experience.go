package scoring

import "strings"

// experienceRule maps a substring predicate over the lowercased experience
// descriptor to a tier score. Rules are evaluated in declared order and the
// first match wins, which makes the precedence visible and testable.
type experienceRule struct {
	matches func(string) bool
	score   float64
}

var experienceRules = []experienceRule{
	{func(s string) bool { return strings.Contains(s, "fresher") || strings.Contains(s, "months") }, 1.0},
	{func(s string) bool { return strings.Contains(s, "1 year") }, 0.9},
	{func(s string) bool { return strings.Contains(s, "2 year") }, 0.6},
	{func(s string) bool { return strings.Contains(s, "research") }, 0.8},
}

// experienceDefaultScore applies when no rule matches.
const experienceDefaultScore = 0.5

// ExperienceScore classifies a free-text experience descriptor into a tier
// score. An empty descriptor is treated as a fresher signal and scores 1.0.
// This is a heuristic tier map, not a parser.
func ExperienceScore(experience string) float64 {
	experience = strings.ToLower(strings.TrimSpace(experience))
	if experience == "" {
		return 1.0
	}
	for _, rule := range experienceRules {
		if rule.matches(experience) {
			return rule.score
		}
	}
	return experienceDefaultScore
}

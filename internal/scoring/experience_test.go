package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceScore_Tiers(t *testing.T) {
	tests := []struct {
		name       string
		experience string
		want       float64
	}{
		{"fresher", "Fresher", 1.0},
		{"months", "6 months internship", 1.0},
		{"empty treated as fresher", "", 1.0},
		{"whitespace only", "   ", 1.0},
		{"one year", "1 year at a startup", 0.9},
		{"two years", "2 years of development", 0.6},
		{"research", "undergraduate research assistant", 0.8},
		{"unclassified", "volunteer work", 0.5},
		{"case insensitive", "FRESHER", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceScore(tt.experience))
		})
	}
}

func TestExperienceScore_FirstRuleWins(t *testing.T) {
	// "fresher" and "months" outrank later rules when descriptors overlap.
	assert.Equal(t, 1.0, ExperienceScore("fresher, 1 year of coursework"))
	assert.Equal(t, 1.0, ExperienceScore("3 months research internship"))

	// "1 year" is checked before "research".
	assert.Equal(t, 0.9, ExperienceScore("1 year research experience"))
}

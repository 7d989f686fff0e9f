package matching_test

import (
	"testing"

	"go-jobportal-backend/internal/matching"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		skills       []string
		requirements []string
		want         int
	}{
		{
			name:         "no requirements scores zero even with skills",
			skills:       []string{"Go", "React"},
			requirements: []string{},
			want:         0,
		},
		{
			name:         "nil requirements scores zero",
			skills:       nil,
			requirements: nil,
			want:         0,
		},
		{
			name:         "no skills scores zero",
			skills:       []string{},
			requirements: []string{"React", "TypeScript"},
			want:         0,
		},
		{
			name:         "full match",
			skills:       []string{"React", "TypeScript", "Node.js"},
			requirements: []string{"React", "TypeScript"},
			want:         100,
		},
		{
			name:         "half match",
			skills:       []string{"JavaScript"},
			requirements: []string{"JavaScript", "Python"},
			want:         50,
		},
		{
			name:         "case insensitive",
			skills:       []string{"javascript", "REACT"},
			requirements: []string{"JavaScript", "React"},
			want:         100,
		},
		{
			name:         "whitespace trimmed",
			skills:       []string{"  JavaScript  ", "React  "},
			requirements: []string{"JavaScript", "  React"},
			want:         100,
		},
		{
			name:         "skill contains requirement",
			skills:       []string{"JavaScript Developer"},
			requirements: []string{"JavaScript"},
			want:         100,
		},
		{
			name:         "requirement contains skill",
			skills:       []string{"React"},
			requirements: []string{"React Developer"},
			want:         100,
		},
		{
			name:         "one of three rounds down",
			skills:       []string{"Go"},
			requirements: []string{"Go", "Kubernetes", "Terraform"},
			want:         33,
		},
		{
			name:         "two of three rounds up",
			skills:       []string{"Go", "Kubernetes"},
			requirements: []string{"Go", "Kubernetes", "Terraform"},
			want:         67,
		},
		{
			name:         "duplicate requirements counted separately",
			skills:       []string{"Go"},
			requirements: []string{"Go", "Go", "Rust", "Rust"},
			want:         50,
		},
		{
			name:         "empty skill strings are ignored",
			skills:       []string{"", "   "},
			requirements: []string{"React"},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matching.Score(tt.skills, tt.requirements))
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	skills := []string{"  Go  ", "React"}
	requirements := []string{"go", "Vue"}

	first := matching.Score(skills, requirements)
	second := matching.Score(skills, requirements)

	assert.Equal(t, first, second)
	// Inputs must not be mutated by normalization.
	assert.Equal(t, []string{"  Go  ", "React"}, skills)
	assert.Equal(t, []string{"go", "Vue"}, requirements)
}

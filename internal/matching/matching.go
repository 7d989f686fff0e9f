// Package matching computes the compatibility score between a candidate's
// skill set and a job offer's requirement set. The score is deterministic,
// has no side effects and never fails; it is computed once when an
// application is created and stored immutably on the application row.
package matching

import (
	"math"
	"strings"
)

// Score returns an integer compatibility percentage in [0, 100].
//
// Every skill and requirement is normalized by trimming surrounding
// whitespace and lower-casing. A requirement counts as matched when any
// normalized skill is a substring of it, or it is a substring of the skill
// ("react" matches "react developer" and vice versa). Matched requirement
// entries are counted without deduplication, and the score is the matched
// share of all requirements rounded half-up.
//
// A job with no requirements scores 0, not 100: an offer that states
// nothing is treated as unmatchable. This is an explicit contract, not an
// accident.
func Score(skills, requirements []string) int {
	if len(requirements) == 0 {
		return 0
	}

	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		// An empty needle would be a substring of every requirement.
		if s == "" {
			continue
		}
		normalized = append(normalized, s)
	}

	matched := 0
	for _, r := range requirements {
		req := strings.ToLower(strings.TrimSpace(r))
		for _, skill := range normalized {
			if strings.Contains(req, skill) || strings.Contains(skill, req) {
				matched++
				break
			}
		}
	}

	return int(math.Round(float64(matched) / float64(len(requirements)) * 100))
}

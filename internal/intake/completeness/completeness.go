// Package completeness computes the fill rate of a record over the full
// field catalog. Format validity is deliberately out of scope: a malformed
// but non-blank value still counts as filled.
package completeness

import (
	"math"

	"surveygate/internal/intake"
)

// Score summarizes how much of the catalog a record fills.
type Score struct {
	IsComplete      bool     `json:"isComplete"`
	CompletionRate  int      `json:"completionRate"`
	MissingRequired []string `json:"missingRequired"`
	MissingOptional []string `json:"missingOptional"`
	FilledCount     int      `json:"filledCount"`
	TotalCount      int      `json:"totalCount"`
}

// Evaluate scores the record over the full completeness catalog. IsComplete
// depends only on required fields being non-blank; the rate counts every
// catalog field, required or not. Absent keys are treated as blank, never as
// errors.
func Evaluate(record intake.Record) Score {
	catalog := intake.CompletenessCatalog()
	score := Score{TotalCount: len(catalog)}

	for _, spec := range catalog {
		if record.IsBlank(spec.Key) {
			if spec.Required {
				score.MissingRequired = append(score.MissingRequired, spec.Key)
			} else {
				score.MissingOptional = append(score.MissingOptional, spec.Key)
			}
			continue
		}
		score.FilledCount++
	}

	score.IsComplete = len(score.MissingRequired) == 0
	score.CompletionRate = int(math.Round(float64(score.FilledCount) / float64(score.TotalCount) * 100))
	return score
}

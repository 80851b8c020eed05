// Package reconcile merges OCR-extracted fields into an intake record and
// reports what still stands in the way of a complete submission.
package reconcile

import (
	"surveygate/internal/intake"
	"surveygate/internal/intake/completeness"
	"surveygate/internal/intake/validate"
	"surveygate/internal/ocr"
)

// Outcome is the result of one reconciliation pass.
type Outcome struct {
	Record       intake.Record      `json:"record"`
	FilledFields []string           `json:"filledFields"`
	Remaining    validate.Summary   `json:"remaining"`
	Completeness completeness.Score `json:"completeness"`
}

// Reconciler folds extracted fields into records and re-validates.
type Reconciler struct {
	validator *validate.Validator
}

func New(validator *validate.Validator) *Reconciler {
	return &Reconciler{validator: validator}
}

// Merge returns a copy of the record with blank fields filled from the
// extraction, plus the keys that were filled in catalog order. A non-blank
// respondent value is never overwritten by OCR output.
func Merge(record intake.Record, extracted ocr.FieldMap) (intake.Record, []string) {
	merged := record.Clone()
	var filled []string
	for _, spec := range intake.CompletenessCatalog() {
		value, ok := extracted[spec.Key]
		if !ok || intake.Blank(value) || !merged.IsBlank(spec.Key) {
			continue
		}
		merged[spec.Key] = value
		filled = append(filled, spec.Key)
	}
	return merged, filled
}

// Reconcile extracts fields from the blocks, merges them into the record,
// and re-runs validation and completeness over the merged result.
func (r *Reconciler) Reconcile(record intake.Record, blocks []ocr.TextBlock) Outcome {
	merged, filled := Merge(record, ocr.Extract(blocks))
	return Outcome{
		Record:       merged,
		FilledFields: filled,
		Remaining:    r.validator.Validate(merged),
		Completeness: completeness.Evaluate(merged),
	}
}

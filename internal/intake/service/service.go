// Package service composes the intake core (validation, auto-correction,
// completeness, reconciliation) behind one façade the transport layer and
// harness call.
package service

import (
	"context"
	"log/slog"

	"surveygate/internal/intake"
	"surveygate/internal/intake/autofix"
	"surveygate/internal/intake/completeness"
	"surveygate/internal/intake/validate"
	"surveygate/internal/ocr"
	"surveygate/internal/platform/metrics"
	"surveygate/internal/reconcile"
)

// Evaluation bundles everything one validation pass produces for a record.
type Evaluation struct {
	Validation   validate.Summary   `json:"validation"`
	Corrections  autofix.Result     `json:"corrections"`
	Completeness completeness.Score `json:"completeness"`
}

// Service runs intake records through the core pipeline.
type Service struct {
	logger     *slog.Logger
	metrics    *metrics.Metrics
	validator  *validate.Validator
	reconciler *reconcile.Reconciler
}

// New wires a Service. metrics may be nil; counters are then skipped.
func New(logger *slog.Logger, m *metrics.Metrics) *Service {
	validator := validate.New()
	return &Service{
		logger:     logger,
		metrics:    m,
		validator:  validator,
		reconciler: reconcile.New(validator),
	}
}

// Evaluate validates the record, proposes corrections for what it finds, and
// scores completeness. The record is never mutated; corrections are
// proposals only.
func (s *Service) Evaluate(ctx context.Context, record intake.Record) Evaluation {
	summary := s.validator.Validate(record)
	corrections := autofix.Propose(record, summary.Issues)
	score := completeness.Evaluate(record)

	s.metrics.AddIssues(len(summary.Issues))
	s.metrics.AddCorrections(len(corrections.Fixed))
	s.logger.InfoContext(ctx, "record evaluated",
		"issues", len(summary.Issues),
		"critical", summary.CriticalCount,
		"proposed_fixes", len(corrections.Fixed),
		"completion_rate", score.CompletionRate,
	)

	return Evaluation{
		Validation:   summary,
		Corrections:  corrections,
		Completeness: score,
	}
}

// Reconcile merges OCR blocks into the record and reports remaining gaps.
func (s *Service) Reconcile(ctx context.Context, record intake.Record, blocks []ocr.TextBlock) reconcile.Outcome {
	outcome := s.reconciler.Reconcile(record, blocks)
	s.metrics.AddIssues(len(outcome.Remaining.Issues))
	s.logger.InfoContext(ctx, "record reconciled",
		"filled_fields", len(outcome.FilledFields),
		"remaining_issues", len(outcome.Remaining.Issues),
		"complete", outcome.Completeness.IsComplete,
	)
	return outcome
}

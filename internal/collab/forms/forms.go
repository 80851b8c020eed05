// Package forms wraps the form provider: the externally hosted survey whose
// field layout must line up with the intake catalog.
package forms

import (
	"context"
	"strings"
)

// FieldDescriptor is the provider's view of one form field.
type FieldDescriptor struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
}

// Client fetches the deployed form's field descriptors.
type Client interface {
	ListFields(ctx context.Context, formID string) ([]FieldDescriptor, error)
}

// ExpectedLabels is the label set the deployed form must expose, matched by
// substring against descriptor titles and descriptions.
func ExpectedLabels() []string {
	return []string{
		"お名前",
		"会社名",
		"部署名",
		"電話番号",
		"メールアドレス",
		"サービス満足度",
		"利用サービス",
		"推奨度",
		"ご意見・ご要望",
		"データ取り扱い同意",
	}
}

// LabelReport reconciles the expected label list against what the provider
// actually serves.
type LabelReport struct {
	TotalExpected int      `json:"totalExpected"`
	Found         int      `json:"found"`
	Missing       []string `json:"missing"`
	Extra         []string `json:"extra"`
}

// Complete reports whether every expected label was found.
func (r LabelReport) Complete() bool {
	return len(r.Missing) == 0
}

// ReconcileLabels matches expected labels against descriptors by title or
// description substring, both directions: expected labels with no matching
// descriptor are missing, descriptors matching no expected label are extra.
func ReconcileLabels(expected []string, fields []FieldDescriptor) LabelReport {
	report := LabelReport{TotalExpected: len(expected)}

	for _, label := range expected {
		if anyFieldContains(fields, label) {
			report.Found++
		} else {
			report.Missing = append(report.Missing, label)
		}
	}

	for _, field := range fields {
		matched := false
		for _, label := range expected {
			if descriptorContains(field, label) {
				matched = true
				break
			}
		}
		if !matched {
			report.Extra = append(report.Extra, field.Title)
		}
	}
	return report
}

func anyFieldContains(fields []FieldDescriptor, label string) bool {
	for _, field := range fields {
		if descriptorContains(field, label) {
			return true
		}
	}
	return false
}

func descriptorContains(field FieldDescriptor, label string) bool {
	return strings.Contains(field.Title, label) || strings.Contains(field.Description, label)
}

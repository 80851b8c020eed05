// Package validate scans an intake record against a field catalog and
// produces a typed issue list. The same validator serves the English-keyed
// record path and the localized sheet-row path via a header mapping, so the
// rules live in exactly one place.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"surveygate/internal/intake"
)

// Severity ranks an issue. Blank required fields and any format violation are
// critical; blank optional fields are warnings.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
)

// Issue is one problem found in a record. Issues are value objects produced
// fresh per validation pass.
type Issue struct {
	Field      string   `json:"field"`
	Label      string   `json:"label"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion"`
}

// Summary is the outcome of one validation pass over one record.
type Summary struct {
	Issues        []Issue `json:"issues"`
	BlankCount    int     `json:"blankCount"`
	CriticalCount int     `json:"criticalCount"`
	WarningCount  int     `json:"warningCount"`
}

// Clean reports whether the pass found nothing.
func (s Summary) Clean() bool {
	return len(s.Issues) == 0
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneCharset = regexp.MustCompile(`^[0-9+()\-\s]+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// ValidEmail reports whether the value matches the accepted address shape
// (local part, @, domain with at least one dot).
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// ValidPhone accepts digits, hyphens, plus, parentheses and spaces, and
// requires at least 10 digits once everything else is stripped.
func ValidPhone(value string) bool {
	if !phoneCharset.MatchString(value) {
		return false
	}
	return len(nonDigits.ReplaceAllString(value, "")) >= 10
}

var suggestions = map[string]string{
	"name":              "お名前を入力してください",
	"company":           "会社名を入力してください",
	"phone":             "電話番号を入力してください（例：03-1234-5678）",
	"email":             "メールアドレスを入力してください（例：user@example.com）",
	"establishmentType": "設立種類を選択してください",
	"capital":           "資本金を入力してください（例：1,000,000香港ドル）",
	"address":           "登記住所を入力してください",
}

const genericSuggestion = "この項目を入力してください"

// Validator applies blank and format rules over a fixed catalog. Construct
// once; a Validator is immutable and safe for concurrent use.
type Validator struct {
	catalog []intake.FieldSpec
}

// New returns a validator over the default intake validation catalog.
func New() *Validator {
	return NewWithCatalog(intake.ValidationCatalog())
}

// NewWithCatalog returns a validator over an explicit catalog. Used by the
// sheet read-back path (localized headers mapped to a reduced catalog) and
// the response-acceptance path.
func NewWithCatalog(catalog []intake.FieldSpec) *Validator {
	specs := make([]intake.FieldSpec, len(catalog))
	copy(specs, catalog)
	return &Validator{catalog: specs}
}

// Validate scans the record and returns every issue found. The record is
// never mutated. Issue order is deterministic: blanks in catalog order, then
// the email format check, then the phone format check.
//
// A field contributes at most one blank issue and, independently, at most one
// format issue; a format failure is always critical regardless of the
// required flag or any blank issue already emitted for that field.
func (v *Validator) Validate(record intake.Record) Summary {
	var s Summary
	for _, spec := range v.catalog {
		if !record.IsBlank(spec.Key) {
			continue
		}
		s.BlankCount++
		severity := SeverityWarning
		if spec.Required {
			severity = SeverityCritical
		}
		s.Issues = append(s.Issues, Issue{
			Field:      spec.Key,
			Label:      spec.Label,
			Severity:   severity,
			Message:    fmt.Sprintf("%sが未記入です", spec.Label),
			Suggestion: suggestionFor(spec.Key),
		})
	}

	if email := record["email"]; !intake.Blank(email) && !ValidEmail(email) {
		s.Issues = append(s.Issues, Issue{
			Field:      "email",
			Label:      "メールアドレス",
			Severity:   SeverityCritical,
			Message:    "メールアドレスの形式が不正です",
			Suggestion: "正しいメールアドレス形式で入力してください",
		})
	}
	if phone := record["phone"]; !intake.Blank(phone) && !ValidPhone(phone) {
		s.Issues = append(s.Issues, Issue{
			Field:      "phone",
			Label:      "電話番号",
			Severity:   SeverityCritical,
			Message:    "電話番号の形式が不正です",
			Suggestion: "正しい電話番号形式で入力してください",
		})
	}

	for _, issue := range s.Issues {
		if issue.Severity == SeverityCritical {
			s.CriticalCount++
		} else {
			s.WarningCount++
		}
	}
	return s
}

func suggestionFor(key string) string {
	if s, ok := suggestions[key]; ok {
		return s
	}
	return genericSuggestion
}

// HeaderMapping translates localized column headers to canonical field keys,
// so spreadsheet rows can run through the same validator as form records.
type HeaderMapping map[string]string

// ToRecord converts a localized row into an intake record. Headers without a
// mapping are dropped; validation ignores unknown keys anyway.
func (m HeaderMapping) ToRecord(row map[string]string) intake.Record {
	record := make(intake.Record, len(m))
	for header, value := range row {
		if key, ok := m[header]; ok {
			record[key] = strings.TrimSpace(value)
		}
	}
	return record
}

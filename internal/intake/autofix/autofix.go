// Package autofix proposes best-effort repairs for a detected issue list.
// Only two shapes are repairable; everything else is handed back for manual
// fixing. Proposals are never applied to the input record — callers apply
// accepted ones explicitly via Apply.
package autofix

import (
	"math"
	"regexp"
	"strings"

	"surveygate/internal/intake"
	"surveygate/internal/intake/validate"
)

// Repair methods and the reason attached to everything unrepairable.
const (
	MethodDomainSuggestion = "domain_suggestion"
	MethodFormatFix        = "format_fix"

	ReasonManualFixRequired = "manual_fix_required"
)

// placeholderDomain is a stand-in appended to addresses missing an @ part.
// The result is a guess for a human to confirm, not a guaranteed-valid
// address.
const placeholderDomain = "@example.com"

// bareElevenDigits matches the one phone shape we can re-hyphenate: exactly
// 11 digits with no delimiters, split 3-4-4.
var bareElevenDigits = regexp.MustCompile(`^(\d{3})(\d{4})(\d{4})$`)

// Outcome records the fate of one input issue. Exactly one Outcome is
// produced per issue.
type Outcome struct {
	Issue    validate.Issue `json:"issue"`
	Fixed    bool           `json:"fixed"`
	Method   string         `json:"method,omitempty"`
	NewValue string         `json:"newValue,omitempty"`
	Reason   string         `json:"reason,omitempty"`
}

// Result is the full proposal set for one correction pass.
type Result struct {
	Fixed          []Outcome `json:"fixed"`
	Unfixed        []Outcome `json:"unfixed"`
	FixRatePercent int       `json:"fixRatePercent"`
}

// Propose walks the issue list and returns a proposal per issue. The record
// is read-only here; with zero input issues the fix rate is reported as 0
// (there was nothing to fix, so no fixes happened).
func Propose(record intake.Record, issues []validate.Issue) Result {
	var res Result
	for _, issue := range issues {
		out := attempt(record, issue)
		if out.Fixed {
			res.Fixed = append(res.Fixed, out)
		} else {
			res.Unfixed = append(res.Unfixed, out)
		}
	}
	if len(issues) > 0 {
		res.FixRatePercent = int(math.Round(float64(len(res.Fixed)) / float64(len(issues)) * 100))
	}
	return res
}

func attempt(record intake.Record, issue validate.Issue) Outcome {
	if issue.Severity == validate.SeverityCritical {
		switch issue.Field {
		case "email":
			if v := record["email"]; !intake.Blank(v) && !strings.Contains(v, "@") {
				return Outcome{
					Issue:    issue,
					Fixed:    true,
					Method:   MethodDomainSuggestion,
					NewValue: v + placeholderDomain,
				}
			}
		case "phone":
			if v := record["phone"]; !intake.Blank(v) && !strings.Contains(v, "-") && bareElevenDigits.MatchString(v) {
				return Outcome{
					Issue:    issue,
					Fixed:    true,
					Method:   MethodFormatFix,
					NewValue: bareElevenDigits.ReplaceAllString(v, "$1-$2-$3"),
				}
			}
		}
	}
	return Outcome{Issue: issue, Reason: ReasonManualFixRequired}
}

// Apply returns a copy of the record with every fixed proposal written in.
// The input record is untouched.
func Apply(record intake.Record, fixed []Outcome) intake.Record {
	out := record.Clone()
	for _, o := range fixed {
		if o.Fixed {
			out[o.Issue.Field] = o.NewValue
		}
	}
	return out
}

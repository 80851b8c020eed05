// Package ocr turns line-oriented recognized text into a structured field
// map and scores the result against an expected record. It consumes text
// blocks produced by the OCR collaborator read-only.
package ocr

import (
	"math"
	"sort"
	"strings"

	"surveygate/internal/intake"
)

// Position is the block's location on the scanned page.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TextBlock is one recognized line with its confidence.
type TextBlock struct {
	Text       string   `json:"text"`
	Confidence float64  `json:"confidence"`
	Position   Position `json:"position"`
}

// FieldMap is the extracted field key → value mapping. It is built fresh
// from a block sequence and only merged into a record through an explicit
// reconciliation step.
type FieldMap map[string]string

// labelPrefixes maps each target field to its accepted label prefixes,
// long form first. A block is tested against every field independently, so
// one line can populate several fields; that permissive matching is
// intentional and relied upon by the scoring path.
var labelPrefixes = []struct {
	field    string
	prefixes []string
}{
	{"name", []string{"お名前:", "名前:"}},
	{"company", []string{"会社名:", "会社:"}},
	{"establishmentType", []string{"設立種類:", "設立:"}},
	{"capital", []string{"資本金:", "資本:"}},
	{"address", []string{"登記住所:", "住所:"}},
	{"phone", []string{"電話番号:", "電話:"}},
	{"email", []string{"メールアドレス:", "メール:"}},
}

// Extract builds a field map from the block sequence. For each field the
// first matching prefix within a block wins; across blocks, a later block
// overwrites an earlier value for the same field.
func Extract(blocks []TextBlock) FieldMap {
	fields := make(FieldMap)
	for _, block := range blocks {
		for _, lp := range labelPrefixes {
			for _, prefix := range lp.prefixes {
				idx := strings.Index(block.Text, prefix)
				if idx < 0 {
					continue
				}
				fields[lp.field] = strings.TrimSpace(block.Text[idx+len(prefix):])
				break
			}
		}
	}
	return fields
}

// absentSentinel is reported in place of a value that was never extracted.
const absentSentinel = "未記入"

// Mismatch reports one expected field the extraction missed or got wrong.
type Mismatch struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// MatchReport scores an extraction against the expected record.
type MatchReport struct {
	Accuracy  int        `json:"accuracy"`
	Unmatched []Mismatch `json:"unmatched"`
}

// Score compares extracted values with the expected record. Accuracy is
// computed only over extracted keys that exist non-blank in expected; when
// that intersection is empty the accuracy is 0. Matching is case-insensitive
// trimmed equality — no fuzzy matching. Unmatched lists every expected key
// whose extracted value is absent or different, in catalog order.
func Score(extracted FieldMap, expected intake.Record) MatchReport {
	var report MatchReport

	var comparable, correct int
	for key, value := range extracted {
		if expected.IsBlank(key) {
			continue
		}
		comparable++
		if valuesMatch(value, expected[key]) {
			correct++
		}
	}
	if comparable > 0 {
		report.Accuracy = int(math.Round(float64(correct) / float64(comparable) * 100))
	}

	for _, key := range orderedKeys(expected) {
		actual, ok := extracted[key]
		if ok && valuesMatch(actual, expected[key]) {
			continue
		}
		if !ok {
			actual = absentSentinel
		}
		report.Unmatched = append(report.Unmatched, Mismatch{
			Field:    key,
			Expected: expected[key],
			Actual:   actual,
		})
	}
	return report
}

func valuesMatch(actual, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(actual), strings.TrimSpace(expected))
}

// orderedKeys returns the expected record's keys in completeness-catalog
// order, with any stragglers sorted at the end, so reports are
// deterministic.
func orderedKeys(record intake.Record) []string {
	seen := make(map[string]bool, len(record))
	keys := make([]string, 0, len(record))
	for _, spec := range intake.CompletenessCatalog() {
		if _, ok := record[spec.Key]; ok {
			keys = append(keys, spec.Key)
			seen[spec.Key] = true
		}
	}
	var extra []string
	for key := range record {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// Package intake holds the survey intake domain: the record shape collected
// from a form submission and the field catalogs everything else validates
// against.
package intake

import "strings"

// Record is the flattened set of a respondent's field values, keyed by the
// canonical English field key. Values may be empty; unknown keys are carried
// but ignored by validation.
type Record map[string]string

// FieldSpec describes one expected intake field. Catalogs are defined once at
// startup and read-only thereafter.
type FieldSpec struct {
	Key      string
	Label    string
	Required bool
}

// Blank reports whether a value counts as unfilled: absent or
// whitespace-only.
func Blank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// IsBlank reports whether the record's value for key counts as unfilled.
func (r Record) IsBlank(key string) bool {
	return Blank(r[key])
}

// Clone returns an independent copy so corrections can be applied without
// touching the caller's record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ValidationCatalog is the field set scanned for blank and format issues.
// Order is significant: issues are emitted in catalog order.
func ValidationCatalog() []FieldSpec {
	return []FieldSpec{
		{Key: "name", Label: "お名前", Required: true},
		{Key: "company", Label: "会社名", Required: true},
		{Key: "phone", Label: "電話番号", Required: true},
		{Key: "email", Label: "メールアドレス", Required: true},
		{Key: "establishmentType", Label: "設立種類", Required: true},
		{Key: "capital", Label: "資本金", Required: false},
		{Key: "address", Label: "登記住所", Required: true},
	}
}

// CompletenessCatalog is the full field set a submission can carry. It is a
// deliberate superset of the validation catalog: the extra fields count
// toward the fill rate but are never checked for blank/format issues.
func CompletenessCatalog() []FieldSpec {
	return []FieldSpec{
		{Key: "name", Label: "お名前", Required: true},
		{Key: "company", Label: "会社名", Required: true},
		{Key: "department", Label: "部署名"},
		{Key: "phone", Label: "電話番号", Required: true},
		{Key: "email", Label: "メールアドレス", Required: true},
		{Key: "establishmentType", Label: "設立種類", Required: true},
		{Key: "capital", Label: "資本金"},
		{Key: "address", Label: "登記住所", Required: true},
		{Key: "satisfaction", Label: "サービス満足度"},
		{Key: "services", Label: "利用サービス"},
		{Key: "recommendation", Label: "推奨度"},
		{Key: "feedback", Label: "ご意見・ご要望"},
		{Key: "consent", Label: "データ取り扱い同意"},
	}
}

// ResponseCatalog is the field set a submitted answer must carry before it is
// accepted into the pipeline. Distinct from the validation catalog: survey
// answers (satisfaction, services, recommendation, consent) are mandatory
// here even though the blank/format scan never looks at them.
func ResponseCatalog() []FieldSpec {
	return []FieldSpec{
		{Key: "name", Label: "お名前", Required: true},
		{Key: "company", Label: "会社名", Required: true},
		{Key: "phone", Label: "電話番号", Required: true},
		{Key: "email", Label: "メールアドレス", Required: true},
		{Key: "satisfaction", Label: "サービス満足度", Required: true},
		{Key: "services", Label: "利用サービス", Required: true},
		{Key: "recommendation", Label: "推奨度", Required: true},
		{Key: "consent", Label: "データ取り扱い同意", Required: true},
	}
}

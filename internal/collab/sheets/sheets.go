// Package sheets wraps the spreadsheet store that intake records are
// appended to and read back from for verification. Read-back rows carry
// localized column headers; the shared validator handles them through a
// header mapping so the rules are not duplicated.
package sheets

import (
	"context"
	"time"

	"surveygate/internal/intake"
	"surveygate/internal/intake/validate"
)

// Connection describes the sheet a client attached to.
type Connection struct {
	SheetID      string    `json:"sheetId"`
	SheetName    string    `json:"sheetName"`
	LastModified time.Time `json:"lastModified"`
}

// WriteResult reports an append.
type WriteResult struct {
	RowsWritten int  `json:"rowsWritten"`
	DataValid   bool `json:"dataValid"`
}

// Row is one sheet row keyed by localized column header.
type Row map[string]string

// Client is the spreadsheet store boundary.
type Client interface {
	Connect(ctx context.Context, sheetID string) (Connection, error)
	Append(ctx context.Context, sheetID string, record intake.Record) (WriteResult, error)
	Rows(ctx context.Context, sheetID string) ([]Row, error)
}

// DefaultHeaderMapping maps the sheet's localized headers to canonical field
// keys. Bookkeeping columns (response ID, timestamps, processing state) are
// intentionally unmapped.
func DefaultHeaderMapping() validate.HeaderMapping {
	return validate.HeaderMapping{
		"お名前":       "name",
		"会社名":       "company",
		"部署名":       "department",
		"電話番号":      "phone",
		"メールアドレス":   "email",
		"サービス満足度":   "satisfaction",
		"利用サービス":    "services",
		"推奨度":       "recommendation",
		"ご意見・ご要望":   "feedback",
		"データ取り扱い同意": "consent",
	}
}

// RowCatalog is the reduced catalog the read-back check enforces: only the
// contact columns are required on a stored row.
func RowCatalog() []intake.FieldSpec {
	return []intake.FieldSpec{
		{Key: "name", Label: "お名前", Required: true},
		{Key: "company", Label: "会社名", Required: true},
		{Key: "phone", Label: "電話番号", Required: true},
		{Key: "email", Label: "メールアドレス", Required: true},
	}
}

// RowIssues ties a 1-based row number to the issues found in it.
type RowIssues struct {
	Row    int              `json:"row"`
	Issues []validate.Issue `json:"issues"`
}

// RowReport is the read-back verification result for a sheet.
type RowReport struct {
	TotalRows   int         `json:"totalRows"`
	ValidRows   int         `json:"validRows"`
	InvalidRows int         `json:"invalidRows"`
	Issues      []RowIssues `json:"issues,omitempty"`
}

// Valid reports whether every row passed.
func (r RowReport) Valid() bool {
	return r.InvalidRows == 0
}

// ValidateRows runs each localized row through the validator after mapping
// headers to field keys.
func ValidateRows(rows []Row, mapping validate.HeaderMapping, validator *validate.Validator) RowReport {
	report := RowReport{TotalRows: len(rows)}
	for i, row := range rows {
		summary := validator.Validate(mapping.ToRecord(row))
		if summary.Clean() {
			report.ValidRows++
			continue
		}
		report.InvalidRows++
		report.Issues = append(report.Issues, RowIssues{Row: i + 1, Issues: summary.Issues})
	}
	return report
}

package sheets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"surveygate/internal/intake"
	"surveygate/internal/intake/validate"
)

type SheetsSuite struct {
	suite.Suite
	client *MockClient
}

func (s *SheetsSuite) SetupTest() {
	s.client = &MockClient{}
}

func (s *SheetsSuite) SetupSubTest() {
	s.SetupTest()
}

func TestSheetsSuite(t *testing.T) {
	suite.Run(t, new(SheetsSuite))
}

func acceptedRecord() intake.Record {
	return intake.Record{
		"name":           "テスト太郎",
		"company":        "テスト株式会社",
		"phone":          "03-1234-5678",
		"email":          "test@example.com",
		"satisfaction":   "満足",
		"services":       "会社設立サポート",
		"recommendation": "9",
		"consent":        "同意する",
	}
}

func (s *SheetsSuite) TestConnect() {
	conn, err := s.client.Connect(context.Background(), "test-sheet-id")
	s.Require().NoError(err)
	s.Equal("test-sheet-id", conn.SheetID)
	s.NotEmpty(conn.SheetName)
	s.False(conn.LastModified.IsZero())
}

func (s *SheetsSuite) TestAppend() {
	s.Run("accepted shape writes one valid row", func() {
		res, err := s.client.Append(context.Background(), "test-sheet-id", acceptedRecord())
		s.Require().NoError(err)
		s.Equal(1, res.RowsWritten)
		s.True(res.DataValid)
	})

	s.Run("missing survey answer fails the shape gate but still writes", func() {
		record := acceptedRecord()
		delete(record, "consent")

		res, err := s.client.Append(context.Background(), "test-sheet-id", record)
		s.Require().NoError(err)
		s.Equal(1, res.RowsWritten)
		s.False(res.DataValid)
	})

	s.Run("appends are recorded as independent copies", func() {
		record := acceptedRecord()
		_, err := s.client.Append(context.Background(), "test-sheet-id", record)
		s.Require().NoError(err)
		record["name"] = "上書き"

		stored := s.client.Appended()
		s.Require().Len(stored, 1)
		s.Equal("テスト太郎", stored[0]["name"])
	})
}

func (s *SheetsSuite) TestRowsReadBack() {
	rows, err := s.client.Rows(context.Background(), "test-sheet-id")
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal("RESP001", rows[0]["回答ID"])

	validator := validate.NewWithCatalog(RowCatalog())
	report := ValidateRows(rows, DefaultHeaderMapping(), validator)

	s.True(report.Valid())
	s.Equal(1, report.TotalRows)
	s.Equal(1, report.ValidRows)
}

func (s *SheetsSuite) TestErrorInjection() {
	s.client.Err = errors.New("sheet store unavailable")

	_, err := s.client.Connect(context.Background(), "test-sheet-id")
	s.Error(err)
	_, err = s.client.Append(context.Background(), "test-sheet-id", acceptedRecord())
	s.Error(err)
	_, err = s.client.Rows(context.Background(), "test-sheet-id")
	s.Error(err)
}

func TestValidateRows(t *testing.T) {
	validator := validate.NewWithCatalog(RowCatalog())
	mapping := DefaultHeaderMapping()

	good := Row{
		"お名前":     "テスト太郎",
		"会社名":     "テスト株式会社",
		"電話番号":    "03-1234-5678",
		"メールアドレス": "test@example.com",
	}
	bad := Row{
		"お名前":     "",
		"会社名":     "テスト株式会社",
		"電話番号":    "03-1234-5678",
		"メールアドレス": "kowareta-address",
	}

	report := ValidateRows([]Row{good, bad}, mapping, validator)

	if report.Valid() {
		t.Fatal("report should be invalid")
	}
	if report.ValidRows != 1 || report.InvalidRows != 1 {
		t.Fatalf("valid/invalid = %d/%d, want 1/1", report.ValidRows, report.InvalidRows)
	}
	if len(report.Issues) != 1 || report.Issues[0].Row != 2 {
		t.Fatalf("issues = %+v, want one entry for row 2", report.Issues)
	}
	var fields []string
	for _, issue := range report.Issues[0].Issues {
		fields = append(fields, issue.Field)
	}
	if strings.Join(fields, ",") != "name,email" {
		t.Fatalf("issue fields = %v, want blank name then malformed email", fields)
	}
}

package harness

import (
	"surveygate/internal/collab/files"
	"surveygate/internal/intake"
)

// SampleResponse is a fully answered submission used by the happy-path
// checks.
func SampleResponse() intake.Record {
	return intake.Record{
		"name":              "テスト太郎",
		"company":           "テスト株式会社",
		"department":        "開発部",
		"phone":             "03-1234-5678",
		"email":             "test@example.com",
		"establishmentType": "新規法人設立",
		"capital":           "1,000,000香港ドル",
		"address":           "東京都渋谷区1-1-1",
		"satisfaction":      "5",
		"services":          "コンサルティング,システム開発",
		"recommendation":    "5",
		"feedback":          "とても良いサービスです。継続利用を検討します。",
		"consent":           "同意",
	}
}

// FlawedResponse carries the blank and malformed values the detection and
// auto-fix checks must catch. The email is missing its domain entirely so
// the domain-suggestion repair has something to propose.
func FlawedResponse() intake.Record {
	return intake.Record{
		"name":              "",
		"company":           "テスト株式会社",
		"department":        "開発部",
		"phone":             "0312345678",
		"email":             "testexample",
		"establishmentType": "",
		"capital":           "1,000,000香港ドル",
		"address":           "",
		"satisfaction":      "5",
		"services":          "コンサルティング",
		"recommendation":    "5",
		"feedback":          "良いサービスです",
		"consent":           "同意",
	}
}

// PartialResponse carries only the survey answers a respondent types by
// hand; every contact field is left for OCR auto-fill to reconcile.
func PartialResponse() intake.Record {
	return intake.Record{
		"department":     "開発部",
		"satisfaction":   "5",
		"services":       "コンサルティング,システム開発",
		"recommendation": "5",
		"feedback":       "とても良いサービスです。",
		"consent":        "同意",
	}
}

// ExpectedScanResult is what the canned OCR blocks should reconstruct.
func ExpectedScanResult() intake.Record {
	return intake.Record{
		"name":              "田中太郎",
		"company":           "株式会社サンプル",
		"establishmentType": "新規法人設立",
		"capital":           "1,000,000香港ドル",
		"address":           "東京都渋谷区1-1-1",
		"phone":             "03-1234-5678",
		"email":             "tanaka@example.com",
	}
}

// SampleUpload is the scanned form image fed to the upload checks.
func SampleUpload() files.FileInfo {
	return files.FileInfo{
		Name: "test-form-image.jpg",
		Size: 2048000,
		Type: "image/jpeg",
	}
}

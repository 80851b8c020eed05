package ocr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveygate/internal/intake"
)

func block(text string) TextBlock {
	return TextBlock{Text: text, Confidence: 0.95}
}

func TestExtract(t *testing.T) {
	t.Run("long label prefix", func(t *testing.T) {
		fields := Extract([]TextBlock{block("お名前: 田中太郎")})
		assert.Equal(t, FieldMap{"name": "田中太郎"}, fields)
	})

	t.Run("short label prefix", func(t *testing.T) {
		fields := Extract([]TextBlock{block("名前: 田中太郎")})
		assert.Equal(t, "田中太郎", fields["name"])
	})

	t.Run("value is trimmed", func(t *testing.T) {
		fields := Extract([]TextBlock{block("会社名:   テスト株式会社  ")})
		assert.Equal(t, "テスト株式会社", fields["company"])
	})

	t.Run("no label no extraction", func(t *testing.T) {
		fields := Extract([]TextBlock{block("ただのテキスト")})
		assert.Empty(t, fields)
	})

	t.Run("one block can feed several fields", func(t *testing.T) {
		fields := Extract([]TextBlock{block("会社名: テスト社 電話番号: 03-1234-5678")})
		assert.Equal(t, "テスト社 電話番号: 03-1234-5678", fields["company"])
		assert.Equal(t, "03-1234-5678", fields["phone"])
	})

	t.Run("later block wins for the same field", func(t *testing.T) {
		fields := Extract([]TextBlock{
			block("お名前: 田中太郎"),
			block("お名前: 佐藤花子"),
		})
		assert.Equal(t, "佐藤花子", fields["name"])
	})

	t.Run("full scanned form", func(t *testing.T) {
		blocks := []TextBlock{
			block("お名前: 田中太郎"),
			block("会社名: 田中商事株式会社"),
			block("電話番号: 090-1234-5678"),
			block("メールアドレス: tanaka@example.com"),
			block("設立種類: 新規法人設立"),
			block("資本金: 500万円"),
			block("登記住所: 東京都新宿区1-2-3"),
		}
		want := FieldMap{
			"name":              "田中太郎",
			"company":           "田中商事株式会社",
			"phone":             "090-1234-5678",
			"email":             "tanaka@example.com",
			"establishmentType": "新規法人設立",
			"capital":           "500万円",
			"address":           "東京都新宿区1-2-3",
		}
		if diff := cmp.Diff(want, Extract(blocks)); diff != "" {
			t.Errorf("Extract mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestScore(t *testing.T) {
	expected := intake.Record{
		"name":  "田中太郎",
		"email": "tanaka@example.com",
	}

	t.Run("perfect extraction", func(t *testing.T) {
		report := Score(FieldMap{"name": "田中太郎", "email": "tanaka@example.com"}, expected)
		assert.Equal(t, 100, report.Accuracy)
		assert.Empty(t, report.Unmatched)
	})

	t.Run("matching ignores case and surrounding space", func(t *testing.T) {
		report := Score(FieldMap{"name": " 田中太郎 ", "email": "TANAKA@EXAMPLE.COM"}, expected)
		assert.Equal(t, 100, report.Accuracy)
		assert.Empty(t, report.Unmatched)
	})

	t.Run("wrong value halves the accuracy and is reported", func(t *testing.T) {
		report := Score(FieldMap{"name": "佐藤花子", "email": "tanaka@example.com"}, expected)
		assert.Equal(t, 50, report.Accuracy)
		require.Len(t, report.Unmatched, 1)
		assert.Equal(t, Mismatch{Field: "name", Expected: "田中太郎", Actual: "佐藤花子"}, report.Unmatched[0])
	})

	t.Run("missing field uses the absent sentinel", func(t *testing.T) {
		report := Score(FieldMap{"name": "田中太郎"}, expected)
		assert.Equal(t, 100, report.Accuracy, "accuracy counts only extracted keys")
		require.Len(t, report.Unmatched, 1)
		assert.Equal(t, "email", report.Unmatched[0].Field)
		assert.Equal(t, "未記入", report.Unmatched[0].Actual)
	})

	t.Run("extracted keys absent from expected are not scored", func(t *testing.T) {
		report := Score(FieldMap{"name": "田中太郎", "capital": "500万円"}, expected)
		assert.Equal(t, 100, report.Accuracy)
	})

	t.Run("empty intersection scores zero", func(t *testing.T) {
		report := Score(FieldMap{}, expected)
		assert.Zero(t, report.Accuracy)
		assert.Len(t, report.Unmatched, 2)
	})

	t.Run("unmatched follows catalog order", func(t *testing.T) {
		wide := intake.Record{
			"address": "東京都",
			"name":    "田中太郎",
			"company": "田中商事",
			"phone":   "090-1234-5678",
		}
		report := Score(FieldMap{}, wide)
		var fields []string
		for _, m := range report.Unmatched {
			fields = append(fields, m.Field)
		}
		assert.Equal(t, []string{"name", "company", "phone", "address"}, fields)
	})
}

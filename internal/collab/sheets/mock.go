package sheets

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"surveygate/internal/intake"
)

// MockClient simulates the spreadsheet store: appends are kept in memory,
// reads return a canned localized row. Each call sleeps the configured
// latency; when Err is set it is returned after the latency instead.
type MockClient struct {
	Latency time.Duration
	Err     error

	mu       sync.Mutex
	appended []appendedRow
}

type appendedRow struct {
	ResponseID string
	Record     intake.Record
	WrittenAt  time.Time
}

func (c *MockClient) Connect(_ context.Context, sheetID string) (Connection, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return Connection{}, c.Err
	}
	return Connection{
		SheetID:      sheetID,
		SheetName:    "セキュアアンケート回答データ",
		LastModified: time.Now(),
	}, nil
}

func (c *MockClient) Append(_ context.Context, _ string, record intake.Record) (WriteResult, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return WriteResult{}, c.Err
	}
	c.mu.Lock()
	c.appended = append(c.appended, appendedRow{
		ResponseID: "resp_" + uuid.NewString(),
		Record:     record.Clone(),
		WrittenAt:  time.Now(),
	})
	c.mu.Unlock()
	return WriteResult{RowsWritten: 1, DataValid: hasAcceptedShape(record)}, nil
}

// hasAcceptedShape checks the append payload carries every accepted-response
// field non-blank. This is a structural gate on the write path, not the full
// read-back validation.
func hasAcceptedShape(record intake.Record) bool {
	for _, spec := range intake.ResponseCatalog() {
		if record.IsBlank(spec.Key) {
			return false
		}
	}
	return true
}

func (c *MockClient) Rows(_ context.Context, _ string) ([]Row, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return nil, c.Err
	}
	return []Row{
		{
			"回答ID":      "RESP001",
			"回答日時":      "2024-01-15 10:30:00",
			"会員ID":      "MEMBER001",
			"認証トークン":    "TOKEN123",
			"お名前":       "テスト太郎",
			"会社名":       "テスト株式会社",
			"部署名":       "開発部",
			"電話番号":      "03-1234-5678",
			"メールアドレス":   "test@example.com",
			"サービス満足度":   "5",
			"利用サービス":    "コンサルティング,システム開発",
			"推奨度":       "5",
			"ご意見・ご要望":   "とても良いサービスです",
			"データ取り扱い同意": "同意",
			"処理状況":      "完了",
			"セキュリティレベル": "高",
			"PDF生成日時":   "2024-01-15 10:35:00",
			"メール送信日時":   "2024-01-15 10:36:00",
		},
	}, nil
}

// Appended returns a snapshot of everything written through this client.
func (c *MockClient) Appended() []intake.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]intake.Record, len(c.appended))
	for i, row := range c.appended {
		out[i] = row.Record.Clone()
	}
	return out
}

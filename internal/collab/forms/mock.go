package forms

import (
	"context"
	"time"
)

// MockClient serves the deployed form's field layout from canned data after
// a configurable latency, mimicking a real provider round trip. When Err is
// set it is returned after the latency elapses instead.
type MockClient struct {
	Latency time.Duration
	Err     error
}

func (c MockClient) ListFields(_ context.Context, _ string) ([]FieldDescriptor, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return nil, c.Err
	}
	return []FieldDescriptor{
		{Title: "お名前", Type: "text", Required: true},
		{Title: "会社名", Type: "text", Required: true},
		{Title: "部署名", Type: "text", Required: false},
		{Title: "電話番号", Type: "text", Required: true},
		{Title: "メールアドレス", Type: "text", Required: true},
		{Title: "サービス満足度", Type: "scale", Required: true},
		{Title: "利用サービス", Type: "checkbox", Required: true},
		{Title: "推奨度", Type: "scale", Required: true},
		{Title: "ご意見・ご要望", Type: "paragraph", Required: false},
		{Title: "データ取り扱い同意", Type: "checkbox", Required: true},
	}, nil
}

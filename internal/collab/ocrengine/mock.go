package ocrengine

import (
	"context"
	"strings"
	"time"

	"surveygate/internal/ocr"
)

// MockClient simulates the OCR provider: a fixed latency, then canned
// results for a scanned intake form. When Err is set it is returned after
// the latency instead.
type MockClient struct {
	Latency time.Duration
	Err     error
}

func (c MockClient) Detect(_ context.Context, _ string) (Detection, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return Detection{}, c.Err
	}
	return Detection{
		ImageType:  "form_document",
		HasText:    true,
		Confidence: 0.95,
		Elements: []Element{
			{Type: "text_field", Label: "お名前", Position: ocr.Position{X: 100, Y: 200}},
			{Type: "text_field", Label: "会社名", Position: ocr.Position{X: 100, Y: 250}},
			{Type: "radio_button", Label: "設立種類", Position: ocr.Position{X: 100, Y: 300}},
			{Type: "text_field", Label: "資本金", Position: ocr.Position{X: 100, Y: 350}},
			{Type: "text_field", Label: "登記住所", Position: ocr.Position{X: 100, Y: 400}},
		},
	}, nil
}

func (c MockClient) Recognize(_ context.Context, _ string) (Recognition, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return Recognition{}, c.Err
	}
	blocks := []ocr.TextBlock{
		{Text: "お名前: 田中太郎", Confidence: 0.95, Position: ocr.Position{X: 100, Y: 200}},
		{Text: "会社名: 株式会社サンプル", Confidence: 0.90, Position: ocr.Position{X: 100, Y: 250}},
		{Text: "設立種類: 新規法人設立", Confidence: 0.88, Position: ocr.Position{X: 100, Y: 300}},
		{Text: "資本金: 1,000,000香港ドル", Confidence: 0.85, Position: ocr.Position{X: 100, Y: 350}},
		{Text: "登記住所: 東京都渋谷区1-1-1", Confidence: 0.92, Position: ocr.Position{X: 100, Y: 400}},
		{Text: "電話番号: 03-1234-5678", Confidence: 0.94, Position: ocr.Position{X: 100, Y: 450}},
		{Text: "メールアドレス: tanaka@example.com", Confidence: 0.96, Position: ocr.Position{X: 100, Y: 500}},
	}
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = b.Text
	}
	return Recognition{
		ExtractedText: strings.Join(lines, "\n"),
		Confidence:    0.92,
		Language:      "ja",
		Blocks:        blocks,
	}, nil
}

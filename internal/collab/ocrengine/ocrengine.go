// Package ocrengine wraps the OCR provider. The core extractor only
// consumes the text blocks; everything else in a recognition result is
// reporting detail.
package ocrengine

import (
	"context"

	"surveygate/internal/ocr"
)

// Element is one form control the image-recognition pass located.
type Element struct {
	Type     string       `json:"type"`
	Label    string       `json:"label"`
	Position ocr.Position `json:"position"`
}

// Detection is the image-recognition result for a scanned form.
type Detection struct {
	ImageType  string    `json:"imageType"`
	HasText    bool      `json:"hasText"`
	Confidence float64   `json:"confidence"`
	Elements   []Element `json:"detectedElements"`
}

// Recognition is the OCR result for a scanned form.
type Recognition struct {
	ExtractedText string          `json:"extractedText"`
	Confidence    float64         `json:"confidence"`
	Language      string          `json:"language"`
	Blocks        []ocr.TextBlock `json:"textBlocks"`
}

// Client runs image recognition and OCR against an uploaded file.
type Client interface {
	Detect(ctx context.Context, fileID string) (Detection, error)
	Recognize(ctx context.Context, fileID string) (Recognition, error)
}

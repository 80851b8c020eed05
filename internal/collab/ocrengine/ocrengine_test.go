package ocrengine

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveygate/internal/ocr"
)

func TestMockClientDetect(t *testing.T) {
	client := MockClient{}

	detection, err := client.Detect(context.Background(), "file_x")
	require.NoError(t, err)

	assert.Equal(t, "form_document", detection.ImageType)
	assert.True(t, detection.HasText)
	assert.Len(t, detection.Elements, 5)
}

func TestMockClientRecognize(t *testing.T) {
	client := MockClient{}

	recognition, err := client.Recognize(context.Background(), "file_x")
	require.NoError(t, err)

	assert.Equal(t, "ja", recognition.Language)
	assert.Len(t, recognition.Blocks, 7)
	assert.Equal(t, len(recognition.Blocks),
		strings.Count(recognition.ExtractedText, "\n")+1,
		"extracted text is the blocks joined by newlines")

	// The canned blocks must round-trip through the extractor: one value per
	// intake field.
	fields := ocr.Extract(recognition.Blocks)
	assert.Len(t, fields, 7)
	assert.Equal(t, "田中太郎", fields["name"])
	assert.Equal(t, "tanaka@example.com", fields["email"])
}

func TestMockClientError(t *testing.T) {
	boom := errors.New("ocr provider unavailable")
	client := MockClient{Err: boom}

	_, err := client.Detect(context.Background(), "file_x")
	assert.ErrorIs(t, err, boom)
	_, err = client.Recognize(context.Background(), "file_x")
	assert.ErrorIs(t, err, boom)
}

package files

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MockClient simulates the file store: a fixed latency, then canned storage
// and processing results. When Err is set it is returned after the latency
// instead.
type MockClient struct {
	Latency time.Duration
	Err     error
}

func (c MockClient) Upload(_ context.Context, info FileInfo) (Stored, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return Stored{}, c.Err
	}
	id := "file_" + uuid.NewString()
	return Stored{
		FileID:     id,
		URL:        fmt.Sprintf("https://drive.google.com/file/d/%s/view", id),
		UploadedAt: time.Now(),
	}, nil
}

func (c MockClient) Process(_ context.Context, _ string) (Processed, error) {
	time.Sleep(c.Latency)
	if c.Err != nil {
		return Processed{}, c.Err
	}
	return Processed{
		Width:      1920,
		Height:     1080,
		Quality:    0.95,
		Format:     "JPEG",
		ColorSpace: "RGB",
		DPI:        300,
	}, nil
}

// Package files wraps the upload store for scanned form images and the
// format/size gate applied before anything is stored.
package files

import (
	"context"
	"time"
)

// FileInfo describes an upload candidate.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

// Stored acknowledges an accepted upload.
type Stored struct {
	FileID     string    `json:"fileId"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Processed is the post-upload image-processing result.
type Processed struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Quality    float64 `json:"quality"`
	Format     string  `json:"format"`
	ColorSpace string  `json:"colorSpace"`
	DPI        int     `json:"dpi"`
}

// Client is the file store boundary.
type Client interface {
	Upload(ctx context.Context, info FileInfo) (Stored, error)
	Process(ctx context.Context, fileID string) (Processed, error)
}

// MaxUploadSize caps uploads at 10 MiB.
const MaxUploadSize = 10 << 20

// SupportedFormats is the MIME allow-list for uploads.
func SupportedFormats() []string {
	return []string{"image/jpeg", "image/png", "image/gif", "image/bmp", "application/pdf"}
}

// FormatReport is the outcome of the upload gate.
type FormatReport struct {
	Detected      string `json:"detectedFormat"`
	FormatAllowed bool   `json:"isValidFormat"`
	ActualSize    int64  `json:"actualSize"`
	MaxSize       int64  `json:"maxSize"`
	SizeAllowed   bool   `json:"sizeValid"`
	Valid         bool   `json:"isValid"`
}

// ValidateFormat applies the MIME allow-list and size cap.
func ValidateFormat(info FileInfo) FormatReport {
	report := FormatReport{
		Detected:    info.Type,
		ActualSize:  info.Size,
		MaxSize:     MaxUploadSize,
		SizeAllowed: info.Size <= MaxUploadSize,
	}
	for _, format := range SupportedFormats() {
		if info.Type == format {
			report.FormatAllowed = true
			break
		}
	}
	report.Valid = report.FormatAllowed && report.SizeAllowed
	return report
}

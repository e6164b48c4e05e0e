package domain

import (
	"context"
	"fmt"
)

// MediaVariant is one raw rendition reported by the extractor, before any
// filtering. ID may be empty for storyboard or image entries; those are
// dropped during descriptor building.
type MediaVariant struct {
	ID         string
	Resolution string
	// QualityNote is the extractor's free-form quality label ("720p",
	// "medium"), used when no explicit resolution is present.
	QualityNote string
}

// MediaInfo is the metadata returned by a probe of a video URL.
type MediaInfo struct {
	Title    string
	Variants []MediaVariant
}

// DownloadOptions configures a single extractor download invocation.
type DownloadOptions struct {
	// OutputPath is the exact file path the extractor writes to.
	OutputPath string
	// Format is the extractor format specifier ("22", "best").
	Format string
}

// Extractor is the seam to the external media extraction tool. Both
// operations send the fixed simulated browser identity and neither
// retries on failure.
type Extractor interface {
	// FetchInfo probes the URL and returns its metadata without
	// downloading anything.
	FetchInfo(ctx context.Context, url string) (*MediaInfo, error)
	// Download fetches the media at the URL into opts.OutputPath. A
	// failure reported by the tool itself comes back as *DownloadError;
	// anything else (spawn failure, I/O) is a plain error.
	Download(ctx context.Context, url string, opts DownloadOptions) error
}

// DownloadError is a failure reported by the extraction tool, as opposed
// to a failure launching or supervising it. Callers distinguish the two
// with errors.As.
type DownloadError struct {
	// Message is the tool's own error line when one could be captured,
	// otherwise a generic description.
	Message string
	// Err is the underlying process error.
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download error: %s", e.Message)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}

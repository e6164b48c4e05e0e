package domain

// DownloadRequest carries one download invocation. Requests are built at
// the call site, consumed once, and never stored.
type DownloadRequest struct {
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	// FormatID is the user's optional resolution selection. It is honored
	// only for platforms that support format choice; everywhere else the
	// download uses the best-quality selector.
	FormatID string `json:"format_id,omitempty"`
}

// DownloadResult is the terminal outcome of a download. Exactly one arm is
// populated: FilePath on success, Error on failure.
type DownloadResult struct {
	Success  bool   `json:"success"`
	FilePath string `json:"file_path,omitempty"`
	Error    string `json:"error,omitempty"`
}

// SuccessResult builds a successful result pointing at the written file.
func SuccessResult(filePath string) DownloadResult {
	return DownloadResult{Success: true, FilePath: filePath}
}

// FailureResult builds a failed result carrying a human-readable message.
func FailureResult(message string) DownloadResult {
	return DownloadResult{Success: false, Error: message}
}

// FormatDescriptor is one selectable rendition of a video, produced by a
// metadata fetch. Descriptors are transient; they exist only to populate
// the resolution picker and are never persisted.
type FormatDescriptor struct {
	FormatID   string `json:"format_id"`
	Resolution string `json:"resolution"`
}

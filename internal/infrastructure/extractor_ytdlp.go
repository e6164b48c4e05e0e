package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/yourusername/vidfetch-go/internal/domain"
	"go.uber.org/zap"
)

// ytdlpInfo mirrors the fields consumed from yt-dlp's single-JSON dump.
type ytdlpInfo struct {
	Title   string        `json:"title"`
	Formats []ytdlpFormat `json:"formats"`
}

type ytdlpFormat struct {
	FormatID   string `json:"format_id"`
	Resolution string `json:"resolution"`
	FormatNote string `json:"format_note"`
}

// YTDLPExtractor implements domain.Extractor by shelling out to the
// yt-dlp binary. Both operations send the fixed browser identity and run
// the tool exactly once per call; failure handling is left to the caller.
type YTDLPExtractor struct {
	binary string
	logger *zap.Logger
}

// NewYTDLPExtractor creates an extractor around the configured binary.
func NewYTDLPExtractor(config *domain.ExtractorConfig, logger *zap.Logger) *YTDLPExtractor {
	return &YTDLPExtractor{
		binary: config.Binary,
		logger: logger,
	}
}

// FetchInfo probes the URL with a metadata-only JSON dump. The returned
// variants are unfiltered; entries without a format id are kept and
// dropped later during descriptor building.
func (e *YTDLPExtractor) FetchInfo(ctx context.Context, url string) (*domain.MediaInfo, error) {
	args := e.infoArgs(url)

	e.logger.Debug("probing media URL",
		zap.String("url", url),
		zap.String("command", commandLine(e.binary, args...)))

	// Note: exec.Command passes args directly to process, no shell quoting needed
	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := toolErrorLine(stderr.Bytes()); msg != "" {
			// Surface the tool's own message; the UI shows it verbatim
			return nil, errors.New(msg)
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	return parseInfo(stdout.Bytes())
}

// parseInfo decodes a single-JSON dump into media metadata.
func parseInfo(data []byte) (*domain.MediaInfo, error) {
	var info ytdlpInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	media := &domain.MediaInfo{
		Title:    info.Title,
		Variants: make([]domain.MediaVariant, 0, len(info.Formats)),
	}
	for _, f := range info.Formats {
		media.Variants = append(media.Variants, domain.MediaVariant{
			ID:          f.FormatID,
			Resolution:  f.Resolution,
			QualityNote: f.FormatNote,
		})
	}
	return media, nil
}

// Download fetches the media at the URL into opts.OutputPath. A non-zero
// exit from the tool comes back as *domain.DownloadError carrying the
// tool's last ERROR line; spawn failures stay plain errors.
func (e *YTDLPExtractor) Download(ctx context.Context, url string, opts domain.DownloadOptions) error {
	format := opts.Format
	if format == "" {
		format = domain.FormatBest
	}
	args := e.downloadArgs(url, format, opts.OutputPath)

	e.logger.Info("starting download",
		zap.String("url", url),
		zap.String("format", format),
		zap.String("command", commandLine(e.binary, args...)))

	// Note: exec.Command passes args directly to process, no shell quoting needed
	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := toolErrorLine(stderr.Bytes())
			if msg == "" {
				msg = fmt.Sprintf("yt-dlp exited with %s", exitErr)
			}
			return &domain.DownloadError{Message: msg, Err: err}
		}
		return fmt.Errorf("failed to run %s: %w", e.binary, err)
	}

	if !fileExists(opts.OutputPath) {
		return &domain.DownloadError{Message: fmt.Sprintf("no file produced at %s", opts.OutputPath)}
	}

	e.logger.Info("download completed", zap.String("file", opts.OutputPath))
	return nil
}

// infoArgs builds the metadata probe invocation: quiet single-JSON dump,
// nothing written to disk.
func (e *YTDLPExtractor) infoArgs(url string) []string {
	return []string{
		"--dump-single-json",
		"--no-warnings",
		"--quiet",
		"--user-agent", domain.BrowserUserAgent,
		url,
	}
}

// downloadArgs builds the download invocation. The output path is passed
// literally, so the tool writes exactly the fixed per-platform file.
func (e *YTDLPExtractor) downloadArgs(url, format, outputPath string) []string {
	return []string{
		"--no-warnings",
		"-f", format,
		"-o", outputPath,
		"--user-agent", domain.BrowserUserAgent,
		url,
	}
}

// toolErrorLine extracts the last "ERROR:" line from yt-dlp's stderr,
// stripped of the prefix. Returns "" when the output has none.
func toolErrorLine(stderr []byte) string {
	lines := strings.Split(strings.TrimSpace(string(stderr)), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "ERROR:") {
			return strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/vidfetch-go/internal/domain"
	"go.uber.org/zap"
)

func newTestExtractor() *YTDLPExtractor {
	return NewYTDLPExtractor(&domain.ExtractorConfig{Binary: "yt-dlp"}, zap.NewNop())
}

func TestInfoArgs(t *testing.T) {
	e := newTestExtractor()
	args := e.infoArgs("https://www.youtube.com/watch?v=abc")

	assert.Equal(t, []string{
		"--dump-single-json",
		"--no-warnings",
		"--quiet",
		"--user-agent", domain.BrowserUserAgent,
		"https://www.youtube.com/watch?v=abc",
	}, args)
}

func TestDownloadArgs(t *testing.T) {
	e := newTestExtractor()
	args := e.downloadArgs("https://www.tiktok.com/@u/video/1", "best", "/media/tiktok_video/Untitled.mp4")

	assert.Equal(t, []string{
		"--no-warnings",
		"-f", "best",
		"-o", "/media/tiktok_video/Untitled.mp4",
		"--user-agent", domain.BrowserUserAgent,
		"https://www.tiktok.com/@u/video/1",
	}, args)
	// URL always comes last so flags can never swallow it
	assert.Equal(t, "https://www.tiktok.com/@u/video/1", args[len(args)-1])
}

func TestParseInfo(t *testing.T) {
	data := []byte(`{
		"title": "Test Video",
		"formats": [
			{"format_id": "sb0", "format_note": "storyboard"},
			{"format_id": "18", "resolution": "640x360", "format_note": "360p"},
			{"format_id": "22", "resolution": "1280x720", "format_note": "720p"},
			{"resolution": "audio only"}
		]
	}`)

	info, err := parseInfo(data)
	require.NoError(t, err)

	assert.Equal(t, "Test Video", info.Title)
	require.Len(t, info.Variants, 4)
	// Variants come back unfiltered; descriptor building drops the bad ones
	assert.Equal(t, domain.MediaVariant{ID: "sb0", QualityNote: "storyboard"}, info.Variants[0])
	assert.Equal(t, domain.MediaVariant{ID: "18", Resolution: "640x360", QualityNote: "360p"}, info.Variants[1])
	assert.Equal(t, domain.MediaVariant{ID: "", Resolution: "audio only"}, info.Variants[3])
}

func TestParseInfo_InvalidJSON(t *testing.T) {
	_, err := parseInfo([]byte("not json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse yt-dlp output")
}

func TestToolErrorLine(t *testing.T) {
	tests := []struct {
		name     string
		stderr   string
		expected string
	}{
		{
			name:     "single error line",
			stderr:   "ERROR: Unsupported URL: not-a-url",
			expected: "Unsupported URL: not-a-url",
		},
		{
			name:     "error after warnings",
			stderr:   "WARNING: unable to load cookies\nERROR: [youtube] abc: Video unavailable",
			expected: "[youtube] abc: Video unavailable",
		},
		{
			name:     "last error wins",
			stderr:   "ERROR: first failure\nERROR: second failure",
			expected: "second failure",
		},
		{
			name:     "no error line",
			stderr:   "WARNING: something minor",
			expected: "",
		},
		{
			name:     "empty output",
			stderr:   "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toolErrorLine([]byte(tt.stderr)))
		})
	}
}

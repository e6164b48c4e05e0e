//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yourusername/vidfetch-go/internal/app"
	"github.com/yourusername/vidfetch-go/internal/domain"
	"github.com/yourusername/vidfetch-go/internal/infrastructure"
)

// Fake extractor tools. Each is a tiny shell script installed in place of
// the real binary so the tests cover the exec plumbing end to end.
const fakeToolSuccess = `#!/bin/sh
while [ "$#" -gt 0 ]; do
  if [ "$1" = "-o" ]; then
    shift
    printf 'pipeline-media' > "$1"
    exit 0
  fi
  shift
done
exit 1
`

const fakeToolError = `#!/bin/sh
echo "ERROR: Unsupported URL: https://example.com/clip" >&2
exit 1
`

const fakeToolNoOutput = `#!/bin/sh
exit 0
`

const fakeToolInfo = `#!/bin/sh
printf '%s' '{"title":"Big Buck Bunny","formats":[{"format_id":"18","resolution":"640x360"},{"format_id":"22","format_note":"hd720"},{"format_id":"137"},{"resolution":"1280x720"}]}'
`

func writeFakeTool(t *testing.T, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake extractor tools need a POSIX shell")
	}

	dir, err := os.MkdirTemp("", "vidfetch-tool")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "yt-dlp")
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func newPipeline(t *testing.T, binary string) (*app.DownloadService, *app.InfoService, *infrastructure.MediaStore) {
	t.Helper()

	baseDir, err := os.MkdirTemp("", "vidfetch-pipeline-test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(baseDir) })

	log := zap.NewNop()
	store := infrastructure.NewMediaStore(baseDir)
	extractor := infrastructure.NewYTDLPExtractor(&domain.ExtractorConfig{Binary: binary}, log)
	notifier := infrastructure.NewNotificationService(&domain.NotificationConfig{}, log)

	downloads := app.NewDownloadService(store, extractor, notifier, log)
	info := app.NewInfoService(extractor, log)

	return downloads, info, store
}

func TestDownloadPipeline_Success(t *testing.T) {
	binary := writeFakeTool(t, fakeToolSuccess)
	downloads, _, store := newPipeline(t, binary)

	result := downloads.Download(context.Background(), domain.DownloadRequest{
		URL:      "https://www.youtube.com/watch?v=abc123",
		Platform: domain.PlatformYouTube,
	})

	require.True(t, result.Success, result.Error)
	assert.Equal(t, store.OutputPath(domain.PlatformYouTube), result.FilePath)

	content, err := os.ReadFile(result.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "pipeline-media", string(content))
}

func TestDownloadPipeline_ArgsForwarded(t *testing.T) {
	argsDir, err := os.MkdirTemp("", "vidfetch-args")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(argsDir) })
	argsFile := filepath.Join(argsDir, "args.txt")

	binary := writeFakeTool(t, `#!/bin/sh
printf '%s\n' "$@" > "`+argsFile+`"
while [ "$#" -gt 0 ]; do
  if [ "$1" = "-o" ]; then
    shift
    : > "$1"
    exit 0
  fi
  shift
done
exit 1
`)
	downloads, _, store := newPipeline(t, binary)

	result := downloads.Download(context.Background(), domain.DownloadRequest{
		URL:      "https://www.youtube.com/watch?v=abc123",
		Platform: domain.PlatformYouTube,
		FormatID: "22",
	})
	require.True(t, result.Success, result.Error)

	raw, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSpace(string(raw)), "\n")

	want := []string{
		"--no-warnings",
		"-f", "22",
		"-o", store.OutputPath(domain.PlatformYouTube),
		"--user-agent", domain.BrowserUserAgent,
		"https://www.youtube.com/watch?v=abc123",
	}
	assert.Equal(t, want, args)
}

func TestDownloadPipeline_ToolError(t *testing.T) {
	binary := writeFakeTool(t, fakeToolError)
	downloads, _, _ := newPipeline(t, binary)

	result := downloads.Download(context.Background(), domain.DownloadRequest{
		URL:      "https://example.com/clip",
		Platform: domain.PlatformX,
	})

	assert.False(t, result.Success)
	assert.Equal(t, "Download error: Unsupported URL: https://example.com/clip", result.Error)
	assert.Empty(t, result.FilePath)
}

func TestDownloadPipeline_NoFileProduced(t *testing.T) {
	binary := writeFakeTool(t, fakeToolNoOutput)
	downloads, _, store := newPipeline(t, binary)

	result := downloads.Download(context.Background(), domain.DownloadRequest{
		URL:      "https://www.instagram.com/reel/xyz",
		Platform: domain.PlatformInstagram,
	})

	assert.False(t, result.Success)
	want := fmt.Sprintf("Download error: no file produced at %s", store.OutputPath(domain.PlatformInstagram))
	assert.Equal(t, want, result.Error)
}

func TestDownloadPipeline_MissingBinary(t *testing.T) {
	downloads, _, _ := newPipeline(t, filepath.Join(os.TempDir(), "vidfetch-no-such-tool"))

	result := downloads.Download(context.Background(), domain.DownloadRequest{
		URL:      "https://www.tiktok.com/@user/video/1",
		Platform: domain.PlatformTikTok,
	})

	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Error, "Unexpected error: "), result.Error)
	assert.Contains(t, result.Error, "failed to run")
}

func TestInfoPipeline(t *testing.T) {
	binary := writeFakeTool(t, fakeToolInfo)
	_, info, _ := newPipeline(t, binary)

	details, err := info.FetchInfo(context.Background(), "https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)

	assert.Equal(t, "Big Buck Bunny", details.Title)
	require.Len(t, details.Formats, 3)
	assert.Equal(t, domain.FormatDescriptor{FormatID: "18", Resolution: "640x360"}, details.Formats[0])
	assert.Equal(t, domain.FormatDescriptor{FormatID: "22", Resolution: "hd720"}, details.Formats[1])
	assert.Equal(t, domain.FormatDescriptor{FormatID: "137", Resolution: "unknown"}, details.Formats[2])
}

func TestInfoPipeline_ToolError(t *testing.T) {
	binary := writeFakeTool(t, fakeToolError)
	_, info, _ := newPipeline(t, binary)

	_, err := info.FetchInfo(context.Background(), "https://example.com/clip")
	require.Error(t, err)
	assert.Equal(t, "Unsupported URL: https://example.com/clip", err.Error())
}

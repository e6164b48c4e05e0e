package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatformFolder(t *testing.T) {
	tests := []struct {
		platform Platform
		expected string
	}{
		{PlatformYouTube, "youtube_video"},
		{PlatformYouTubeShorts, "youtube_shorts"},
		{PlatformX, "x_video"},
		{PlatformFacebook, "facebook_video"},
		{PlatformInstagram, "instagram_video"},
		{PlatformTikTok, "tiktok_video"},
		{Platform("vimeo"), "downloads"},
		{Platform(""), "downloads"},
	}

	for _, tt := range tests {
		t.Run(string(tt.platform), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.platform.Folder())
		})
	}
}

func TestPlatformDisplayName(t *testing.T) {
	assert.Equal(t, "YouTube", PlatformYouTube.DisplayName())
	assert.Equal(t, "YouTube Shorts", PlatformYouTubeShorts.DisplayName())
	assert.Equal(t, "X", PlatformX.DisplayName())
	assert.Equal(t, "Facebook", PlatformFacebook.DisplayName())
	assert.Equal(t, "Instagram", PlatformInstagram.DisplayName())
	assert.Equal(t, "TikTok", PlatformTikTok.DisplayName())
	// Unknown platforms echo their raw value
	assert.Equal(t, "vimeo", Platform("vimeo").DisplayName())
}

func TestPlatformSupportsFormatChoice(t *testing.T) {
	assert.True(t, PlatformYouTube.SupportsFormatChoice())
	assert.True(t, PlatformYouTubeShorts.SupportsFormatChoice())
	assert.False(t, PlatformX.SupportsFormatChoice())
	assert.False(t, PlatformFacebook.SupportsFormatChoice())
	assert.False(t, PlatformInstagram.SupportsFormatChoice())
	assert.False(t, PlatformTikTok.SupportsFormatChoice())
}

func TestValidatePlatform(t *testing.T) {
	for _, p := range AllPlatforms() {
		assert.True(t, ValidatePlatform(p), "expected %s to be valid", p)
	}
	assert.False(t, ValidatePlatform(Platform("vimeo")))
	assert.False(t, ValidatePlatform(Platform("")))
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input    string
		expected Platform
		ok       bool
	}{
		{"youtube", PlatformYouTube, true},
		{"YouTube", PlatformYouTube, true},
		{"youtube_shorts", PlatformYouTubeShorts, true},
		{"YouTube Shorts", PlatformYouTubeShorts, true},
		{"x", PlatformX, true},
		{"X", PlatformX, true},
		{"TikTok", PlatformTikTok, true},
		{"  instagram  ", PlatformInstagram, true},
		{"vimeo", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, ok := ParsePlatform(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url      string
		expected Platform
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"https://youtu.be/dQw4w9WgXcQ", PlatformYouTube},
		{"https://www.youtube.com/shorts/abc123", PlatformYouTubeShorts},
		{"https://youtube.com/shorts/abc123", PlatformYouTubeShorts},
		{"https://x.com/user/status/123456", PlatformX},
		{"https://twitter.com/user/status/123456", PlatformX},
		{"https://www.facebook.com/watch/?v=123", PlatformFacebook},
		{"https://fb.watch/abc123/", PlatformFacebook},
		{"https://www.instagram.com/reel/abc123/", PlatformInstagram},
		{"https://www.tiktok.com/@user/video/123", PlatformTikTok},
		{"http://tiktok.com/@user/video/123", PlatformTikTok},
		{"https://example.com/video", ""},
		{"not-a-url", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectPlatform(tt.url))
		})
	}
}

package domain

import "strings"

// Platform represents the source platform for downloads
type Platform string

const (
	PlatformYouTube       Platform = "youtube"        // YouTube
	PlatformYouTubeShorts Platform = "youtube_shorts" // YouTube Shorts
	PlatformX             Platform = "x"              // X/Twitter
	PlatformFacebook      Platform = "facebook"       // Facebook
	PlatformInstagram     Platform = "instagram"      // Instagram
	PlatformTikTok        Platform = "tiktok"         // TikTok
)

// FallbackFolder is the storage folder for platforms outside the known set.
const FallbackFolder = "downloads"

// AllPlatforms returns the supported platforms in display order.
func AllPlatforms() []Platform {
	return []Platform{
		PlatformYouTube,
		PlatformYouTubeShorts,
		PlatformX,
		PlatformFacebook,
		PlatformInstagram,
		PlatformTikTok,
	}
}

// DisplayName returns the human-readable platform label.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformYouTubeShorts:
		return "YouTube Shorts"
	case PlatformX:
		return "X"
	case PlatformFacebook:
		return "Facebook"
	case PlatformInstagram:
		return "Instagram"
	case PlatformTikTok:
		return "TikTok"
	default:
		return string(p)
	}
}

// Folder returns the fixed storage folder name for the platform.
// Unknown platforms fall back to a shared generic folder.
func (p Platform) Folder() string {
	switch p {
	case PlatformYouTube:
		return "youtube_video"
	case PlatformYouTubeShorts:
		return "youtube_shorts"
	case PlatformX:
		return "x_video"
	case PlatformFacebook:
		return "facebook_video"
	case PlatformInstagram:
		return "instagram_video"
	case PlatformTikTok:
		return "tiktok_video"
	default:
		return FallbackFolder
	}
}

// SupportsFormatChoice reports whether the platform offers resolution
// selection. Only YouTube and YouTube Shorts expose selectable formats;
// every other platform always downloads the best available quality.
func (p Platform) SupportsFormatChoice() bool {
	return p == PlatformYouTube || p == PlatformYouTubeShorts
}

// ValidatePlatform checks if a platform is valid
func ValidatePlatform(platform Platform) bool {
	switch platform {
	case PlatformYouTube, PlatformYouTubeShorts, PlatformX,
		PlatformFacebook, PlatformInstagram, PlatformTikTok:
		return true
	default:
		return false
	}
}

// ParsePlatform resolves a platform from its code ("youtube_shorts") or
// display label ("YouTube Shorts"), case-insensitively.
func ParsePlatform(s string) (Platform, bool) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, p := range AllPlatforms() {
		if needle == string(p) || needle == strings.ToLower(p.DisplayName()) {
			return p, true
		}
	}
	return "", false
}

// DetectPlatform detects the platform from a URL
func DetectPlatform(url string) Platform {
	u := strings.ToLower(strings.TrimSpace(url))
	u = strings.TrimPrefix(u, "https://")
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "www.")

	switch {
	// Check shorts before the generic YouTube prefixes
	case strings.HasPrefix(u, "youtube.com/shorts/"):
		return PlatformYouTubeShorts
	case strings.HasPrefix(u, "youtube.com/"), strings.HasPrefix(u, "youtu.be/"):
		return PlatformYouTube
	case strings.HasPrefix(u, "x.com/"), strings.HasPrefix(u, "twitter.com/"):
		return PlatformX
	case strings.HasPrefix(u, "facebook.com/"), strings.HasPrefix(u, "fb.watch/"):
		return PlatformFacebook
	case strings.HasPrefix(u, "instagram.com/"):
		return PlatformInstagram
	case strings.HasPrefix(u, "tiktok.com/"):
		return PlatformTikTok
	default:
		return ""
	}
}

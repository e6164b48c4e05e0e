package domain

// FormatBest is the extractor's best-available-quality selector, used
// whenever no explicit format applies.
const FormatBest = "best"

// DefaultFileName is the fixed output file name. Every download writes to
// the same name inside its platform folder, so a new download for a
// platform overwrites the previous one.
const DefaultFileName = "Untitled.mp4"

// BrowserUserAgent is the simulated browser identity sent with every
// extractor invocation, for both metadata fetches and downloads.
const BrowserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

// ResolveFormat maps a numeric format identifier (itag) to the extractor
// format specifier. Only the three progressive MP4 itags are mapped;
// anything else resolves to FormatBest.
func ResolveFormat(itag int) string {
	switch itag {
	case 18: // 360p
		return "18"
	case 22: // 720p
		return "22"
	case 37: // 1080p
		return "37"
	default:
		return FormatBest
	}
}

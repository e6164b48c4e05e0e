package app

import (
	"context"

	"github.com/yourusername/vidfetch-go/internal/domain"
	"go.uber.org/zap"
)

// MediaDetails is the outcome of a metadata fetch: the title plus the
// selectable format descriptors.
type MediaDetails struct {
	Title   string
	Formats []domain.FormatDescriptor
}

// InfoService fetches video metadata through the extractor and shapes it
// for the resolution picker.
type InfoService struct {
	extractor domain.Extractor
	logger    *zap.Logger
}

// NewInfoService creates a new info service
func NewInfoService(extractor domain.Extractor, logger *zap.Logger) *InfoService {
	return &InfoService{
		extractor: extractor,
		logger:    logger,
	}
}

// FetchInfo probes the URL and builds the descriptor list. Variants
// without a format id are dropped; an empty list is still a success.
// Extraction failures come back as the error, message intact, never as a
// panic.
func (s *InfoService) FetchInfo(ctx context.Context, url string) (*MediaDetails, error) {
	info, err := s.extractor.FetchInfo(ctx, url)
	if err != nil {
		s.logger.Warn("Metadata fetch failed",
			zap.String("url", url),
			zap.Error(err))
		return nil, err
	}

	formats := make([]domain.FormatDescriptor, 0, len(info.Variants))
	for _, v := range info.Variants {
		if v.ID == "" {
			continue
		}
		formats = append(formats, domain.FormatDescriptor{
			FormatID:   v.ID,
			Resolution: displayResolution(v),
		})
	}

	s.logger.Debug("Metadata fetched",
		zap.String("url", url),
		zap.Int("formats", len(formats)))

	return &MediaDetails{Title: info.Title, Formats: formats}, nil
}

// displayResolution derives the label shown next to a format id: the
// explicit resolution, else the quality note, else "unknown".
func displayResolution(v domain.MediaVariant) string {
	if v.Resolution != "" {
		return v.Resolution
	}
	if v.QualityNote != "" {
		return v.QualityNote
	}
	return "unknown"
}

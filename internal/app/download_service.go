package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/yourusername/vidfetch-go/internal/domain"
	"github.com/yourusername/vidfetch-go/internal/infrastructure"
	"go.uber.org/zap"
)

// DownloadService orchestrates downloads: it provisions the platform
// folder, picks the format specifier, runs the extractor, and folds every
// outcome into a DownloadResult. It never returns an error or panics.
type DownloadService struct {
	store     *infrastructure.MediaStore
	extractor domain.Extractor
	notifier  *infrastructure.NotificationService
	logger    *zap.Logger
	// Per-folder semaphores (limit=1 each). Downloads of the same
	// platform share one fixed output file, so they must not overlap;
	// different platforms still run in parallel. Keyed by folder so
	// unknown platforms serialize on the shared fallback folder too.
	semaphores map[string]chan struct{}
	mu         sync.Mutex
}

// NewDownloadService creates a new download service
func NewDownloadService(
	store *infrastructure.MediaStore,
	extractor domain.Extractor,
	notifier *infrastructure.NotificationService,
	logger *zap.Logger,
) *DownloadService {
	return &DownloadService{
		store:      store,
		extractor:  extractor,
		notifier:   notifier,
		logger:     logger,
		semaphores: make(map[string]chan struct{}),
	}
}

// Download runs one download to completion and reports the outcome.
// Failures split into two categories: extractor-reported download
// failures and everything else; neither is re-raised.
func (s *DownloadService) Download(ctx context.Context, req domain.DownloadRequest) domain.DownloadResult {
	sem := s.semaphore(req.Platform)
	select {
	case sem <- struct{}{}:
		defer func() { <-sem }()
	case <-ctx.Done():
		return domain.FailureResult(fmt.Sprintf("Unexpected error: %v", ctx.Err()))
	}

	s.logger.Info("Processing download",
		zap.String("url", req.URL),
		zap.String("platform", string(req.Platform)))

	if _, err := s.store.Provision(req.Platform); err != nil {
		s.logger.Error("Folder provisioning failed",
			zap.String("platform", string(req.Platform)),
			zap.Error(err))
		return domain.FailureResult(fmt.Sprintf("Unexpected error: %v", err))
	}

	outputPath := s.store.OutputPath(req.Platform)
	format := s.selectFormat(req)

	err := s.extractor.Download(ctx, req.URL, domain.DownloadOptions{
		OutputPath: outputPath,
		Format:     format,
	})
	if err != nil {
		return s.failure(req, err)
	}

	s.logger.Info("Download completed",
		zap.String("url", req.URL),
		zap.String("file", outputPath))
	s.notifier.NotifyDownloadCompleted(req.URL, req.Platform)

	return domain.SuccessResult(outputPath)
}

// selectFormat picks the extractor format specifier for a request. The
// selector is honored only on platforms with format choice; every other
// case downloads the best available quality. Selectors that are not
// numeric format identifiers fall through to the best-quality sentinel.
func (s *DownloadService) selectFormat(req domain.DownloadRequest) string {
	if !req.Platform.SupportsFormatChoice() || req.FormatID == "" {
		return domain.FormatBest
	}
	itag, err := strconv.Atoi(req.FormatID)
	if err != nil {
		return domain.FormatBest
	}
	return domain.ResolveFormat(itag)
}

// failure logs, notifies, and converts an extractor error into the
// matching failure arm.
func (s *DownloadService) failure(req domain.DownloadRequest, err error) domain.DownloadResult {
	var message string
	var dlErr *domain.DownloadError
	if errors.As(err, &dlErr) {
		message = fmt.Sprintf("Download error: %s", dlErr.Message)
	} else {
		message = fmt.Sprintf("Unexpected error: %v", err)
	}

	s.logger.Error("Download failed",
		zap.String("url", req.URL),
		zap.String("platform", string(req.Platform)),
		zap.Error(err))
	s.notifier.NotifyDownloadFailed(req.URL, req.Platform)

	return domain.FailureResult(message)
}

// semaphore returns the capacity-1 semaphore guarding the platform's
// output folder, creating it on first use.
func (s *DownloadService) semaphore(platform domain.Platform) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	folder := platform.Folder()
	sem, ok := s.semaphores[folder]
	if !ok {
		sem = make(chan struct{}, 1)
		s.semaphores[folder] = sem
	}
	return sem
}

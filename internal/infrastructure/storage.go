package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/yourusername/vidfetch-go/internal/domain"
)

// MediaStore maps platforms to their storage folders under a base
// directory and provisions them on demand. Every platform has exactly one
// output file, so a store never grows beyond one file per folder.
type MediaStore struct {
	baseDir string
}

// NewMediaStore creates a media store rooted at baseDir.
func NewMediaStore(baseDir string) *MediaStore {
	return &MediaStore{baseDir: baseDir}
}

// Provision ensures the platform's folder exists and returns its path.
// Repeated calls are no-ops on an existing folder.
func (s *MediaStore) Provision(platform domain.Platform) (string, error) {
	dir := filepath.Join(s.baseDir, platform.Folder())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media folder %s: %w", dir, err)
	}
	return dir, nil
}

// OutputPath returns the fixed output file path for the platform. It does
// not create anything; callers provision first.
func (s *MediaStore) OutputPath(platform domain.Platform) string {
	return filepath.Join(s.baseDir, platform.Folder(), domain.DefaultFileName)
}

// CurrentFile returns the platform's output file path if a download has
// produced one, or an error wrapping os.ErrNotExist otherwise.
func (s *MediaStore) CurrentFile(platform domain.Platform) (string, error) {
	path := s.OutputPath(platform)
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("no media for platform %s: %w", platform, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("no media for platform %s: %w", platform, os.ErrNotExist)
	}
	return path, nil
}

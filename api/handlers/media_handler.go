package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/vidfetch-go/internal/domain"
	"github.com/yourusername/vidfetch-go/internal/infrastructure"
	"go.uber.org/zap"
)

// MediaHandler serves the downloaded media files for playback and export
type MediaHandler struct {
	store  *infrastructure.MediaStore
	logger *zap.Logger
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(store *infrastructure.MediaStore, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{
		store:  store,
		logger: logger,
	}
}

// GetMedia handles GET /media/:platform. The plain form streams the
// platform's current file for inline playback; ?download=1 sends it as an
// attachment named Untitled.mp4.
func (h *MediaHandler) GetMedia(c *gin.Context) {
	raw := c.Param("platform")
	platform, ok := domain.ParsePlatform(raw)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform: " + raw})
		return
	}

	path, err := h.store.CurrentFile(platform)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no downloaded media for platform: " + raw})
		return
	}

	if c.Query("download") != "" {
		c.FileAttachment(path, domain.DefaultFileName)
		return
	}

	c.Header("Content-Type", "video/mp4")
	c.File(path)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/vidfetch-go/internal/app"
	"github.com/yourusername/vidfetch-go/internal/domain"
	"go.uber.org/zap"
)

// DownloadHandler handles download-related HTTP requests
type DownloadHandler struct {
	downloads *app.DownloadService
	logger    *zap.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(downloads *app.DownloadService, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		downloads: downloads,
		logger:    logger,
	}
}

// DownloadRequest represents a request to download a video
type DownloadRequest struct {
	URL      string `json:"url" binding:"required"`
	Platform string `json:"platform,omitempty"`
	FormatID string `json:"format_id,omitempty"`
}

// Download handles POST /api/v1/downloads. The call is synchronous: the
// response body is the final outcome of the download.
func (h *DownloadHandler) Download(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var platform domain.Platform
	if req.Platform != "" {
		p, ok := domain.ParsePlatform(req.Platform)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown platform: " + req.Platform})
			return
		}
		platform = p
	} else {
		// Auto-detect platform if not provided
		platform = domain.DetectPlatform(req.URL)
		if platform == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported URL or platform"})
			return
		}
	}

	result := h.downloads.Download(c.Request.Context(), domain.DownloadRequest{
		URL:      req.URL,
		Platform: platform,
		FormatID: req.FormatID,
	})

	if !result.Success {
		c.JSON(http.StatusInternalServerError, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

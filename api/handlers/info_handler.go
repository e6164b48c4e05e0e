package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/vidfetch-go/internal/app"
	"github.com/yourusername/vidfetch-go/internal/domain"
	"go.uber.org/zap"
)

// InfoHandler handles metadata and platform listing requests
type InfoHandler struct {
	info   *app.InfoService
	logger *zap.Logger
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(info *app.InfoService, logger *zap.Logger) *InfoHandler {
	return &InfoHandler{
		info:   info,
		logger: logger,
	}
}

// InfoResponse is the payload for a successful metadata fetch
type InfoResponse struct {
	Success bool                      `json:"success"`
	Title   string                    `json:"title,omitempty"`
	Formats []domain.FormatDescriptor `json:"formats"`
}

// GetInfo handles GET /api/v1/info?url=...
func (h *InfoHandler) GetInfo(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url query parameter is required"})
		return
	}

	details, err := h.info.FetchInfo(c.Request.Context(), url)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, InfoResponse{
		Success: true,
		Title:   details.Title,
		Formats: details.Formats,
	})
}

// PlatformInfo describes one supported platform for clients
type PlatformInfo struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Folder         string `json:"folder"`
	SupportsFormat bool   `json:"supports_format_choice"`
}

// ListPlatforms handles GET /api/v1/platforms
func (h *InfoHandler) ListPlatforms(c *gin.Context) {
	platforms := make([]PlatformInfo, 0, len(domain.AllPlatforms()))
	for _, p := range domain.AllPlatforms() {
		platforms = append(platforms, PlatformInfo{
			ID:             string(p),
			Label:          p.DisplayName(),
			Folder:         p.Folder(),
			SupportsFormat: p.SupportsFormatChoice(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"platforms": platforms})
}

package handlers

import (
	"net/http"
	"os/exec"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/vidfetch-go/internal/domain"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	config *domain.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(config *domain.Config) *HealthHandler {
	return &HealthHandler{
		config: config,
	}
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Extractor string `json:"extractor"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   "1.0.0",
		Extractor: h.config.Extractor.Binary,
	})
}

// Ready handles GET /ready. The server is ready once the extractor
// binary can be resolved; without it every download would fail.
func (h *HealthHandler) Ready(c *gin.Context) {
	if _, err := exec.LookPath(h.config.Extractor.Binary); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "extractor binary not found: " + h.config.Extractor.Binary,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

package api

import (
	"io"
	"io/fs"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yourusername/vidfetch-go/api/handlers"
	"github.com/yourusername/vidfetch-go/api/middleware"
	"github.com/yourusername/vidfetch-go/internal/app"
	"github.com/yourusername/vidfetch-go/internal/domain"
	"github.com/yourusername/vidfetch-go/internal/infrastructure"
	"github.com/yourusername/vidfetch-go/web"
)

// SetupRouter wires the HTTP surface: the JSON API, the media endpoints,
// and the embedded single-page UI.
func SetupRouter(
	config *domain.Config,
	store *infrastructure.MediaStore,
	downloads *app.DownloadService,
	info *app.InfoService,
	log *zap.Logger,
) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(config)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		downloadHandler := handlers.NewDownloadHandler(downloads, log)
		v1.POST("/downloads", downloadHandler.Download)

		infoHandler := handlers.NewInfoHandler(info, log)
		v1.GET("/info", infoHandler.GetInfo)
		v1.GET("/platforms", infoHandler.ListPlatforms)
	}

	// Media playback and export
	mediaHandler := handlers.NewMediaHandler(store, log)
	router.GET("/media/:platform", mediaHandler.GetMedia)

	// Serve the embedded UI
	templatesFS := web.GetTemplatesFS()
	staticFS := web.GetStaticFS()

	router.GET("/", func(c *gin.Context) {
		serveFile(c, templatesFS, "index.html")
	})
	router.GET("/static/*filepath", func(c *gin.Context) {
		filePath := strings.TrimPrefix(c.Request.URL.Path, "/static/")
		serveFile(c, staticFS, filePath)
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(404, gin.H{"error": "not found"})
			return
		}
		// Anything else lands on the single page
		serveFile(c, templatesFS, "index.html")
	})

	return router
}

// serveFile serves a file from the embedded filesystem with proper content type
func serveFile(c *gin.Context, fsys fs.FS, filePath string) {
	file, err := fsys.Open(filePath)
	if err != nil {
		c.String(404, "File not found: %v", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.String(500, "Failed to read file: %v", err)
		return
	}

	// Determine content type based on file extension
	contentType := "application/octet-stream"
	if strings.HasSuffix(filePath, ".html") {
		contentType = "text/html; charset=utf-8"
	} else if strings.HasSuffix(filePath, ".css") {
		contentType = "text/css; charset=utf-8"
	} else if strings.HasSuffix(filePath, ".js") {
		contentType = "application/javascript; charset=utf-8"
	} else if strings.HasSuffix(filePath, ".svg") {
		contentType = "image/svg+xml"
	} else if strings.HasSuffix(filePath, ".png") {
		contentType = "image/png"
	}

	c.Data(200, contentType, content)
}

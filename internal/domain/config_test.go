package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.NotNil(t, config)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, ".", config.Download.BaseDir)
	assert.Equal(t, "yt-dlp", config.Extractor.Binary)
	assert.False(t, config.Notification.Enabled)
	assert.Equal(t, "osascript", config.Notification.Method)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.Equal(t, "stdout", config.Logging.OutputPath)
}

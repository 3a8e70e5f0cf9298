package handler

import (
	"time"

	"github.com/gin-gonic/gin"
)

// SystemHandler handles health and version endpoints
type SystemHandler struct {
	BaseHandler
	appName string
	version string
	started time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(appName, version string) *SystemHandler {
	return &SystemHandler{
		appName: appName,
		version: version,
		started: time.Now(),
	}
}

// Health reports liveness and uptime
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"app":     h.appName,
		"version": h.version,
		"uptime":  time.Since(h.started).Round(time.Second).String(),
	})
}

// RegisterRoutes registers the system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

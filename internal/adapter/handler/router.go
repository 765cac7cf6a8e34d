package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dtomeeting "github.com/lethanhdat/meeting-extractor/internal/adapter/dto/meeting"
	"github.com/lethanhdat/meeting-extractor/pkg/config"
)

// Version is the service version reported by the root endpoint.
const Version = "1.0.0"

// Router holds all handlers
type Router struct {
	cfg     *config.Config
	meeting *MeetingController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meeting *MeetingController) *Router {
	return &Router{
		cfg:     cfg,
		meeting: meeting,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/", rt.serviceInfo)
	e.GET("/health", rt.healthCheck)
	e.POST("/process-meeting", rt.meeting.ProcessMeeting)

	// Demo frontend; treated as an external collaborator of the core.
	e.Static("/demo", rt.cfg.Server.StaticDir)
}

// serviceInfo returns service metadata for the informational root endpoint
func (rt *Router) serviceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, dtomeeting.ServiceInfo{
		Name:    "meeting-extractor",
		Version: Version,
		Endpoints: map[string]string{
			"POST /process-meeting": "Extract summary, decisions and action items from meeting notes",
			"GET /health":           "Health check",
			"GET /demo":             "Demo frontend",
		},
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

// Package server exposes the session workflow over HTTP.
package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/learnloop/learnloop/internal/workflow"
)

// Handler handles HTTP requests for the session workflow.
type Handler struct {
	flow *workflow.Workflow
}

// NewHandler creates a new handler.
func NewHandler(flow *workflow.Workflow) *Handler {
	return &Handler{flow: flow}
}

// New builds an echo server with all routes registered.
func New(flow *workflow.Workflow) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	NewHandler(flow).RegisterRoutes(e)
	return e
}

// RegisterRoutes registers all routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/sessions", h.CreateSession)
	e.GET("/api/sessions/:session_id", h.GetSession)
	e.GET("/api/sessions/:session_id/assessment/next", h.NextQuestion)
	e.POST("/api/sessions/:session_id/assessment/answer", h.SubmitAnswer)
	e.POST("/api/sessions/:session_id/path/generate", h.GeneratePath)
	e.GET("/api/sessions/:session_id/path", h.GetPath)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "learnloop",
	})
}

// fail maps workflow errors to the documented status codes. Validation
// errors are 400, not-found sentinels 404, everything else a generic 500
// with a diagnostic message for operators.
func fail(c echo.Context, err error) error {
	if workflow.IsValidation(err) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	switch {
	case errors.Is(err, workflow.ErrSessionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Session not found"})
	case errors.Is(err, workflow.ErrQuestionNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Question not found"})
	case errors.Is(err, workflow.ErrPathNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Learning path not found. Please generate it first."})
	}

	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error":   "Internal Server Error",
		"message": err.Error(),
	})
}

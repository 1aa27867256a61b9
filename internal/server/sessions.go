package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type createSessionRequest struct {
	Goal string `json:"goal"`
}

// CreateSession starts a new learning session.
// POST /api/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Goal == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Goal is required"})
	}

	result, err := h.flow.CreateSession(c.Request().Context(), req.Goal)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"sessionId": result.SessionID,
		"phase":     result.Phase,
		"message":   result.Message,
	})
}

// GetSession returns session goal, phase, and progress.
// GET /api/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	view, err := h.flow.GetSession(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"session": view,
	})
}

// NextQuestion returns the current assessment question or completion.
// GET /api/sessions/:session_id/assessment/next
func (h *Handler) NextQuestion(c echo.Context) error {
	result, err := h.flow.NextQuestion(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return fail(c, err)
	}

	if result.Completed {
		return c.JSON(http.StatusOK, map[string]any{
			"success":   true,
			"completed": true,
			"message":   result.Message,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"question": result.Question,
		"progress": result.Progress,
	})
}

type submitAnswerRequest struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

// SubmitAnswer records one answer.
// POST /api/sessions/:session_id/assessment/answer
func (h *Handler) SubmitAnswer(c echo.Context) error {
	var req submitAnswerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.QuestionID == "" || req.Answer == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Question ID and answer are required"})
	}

	result, err := h.flow.SubmitAnswer(c.Request().Context(), c.Param("session_id"), req.QuestionID, req.Answer)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"completed": result.Completed,
		"message":   result.Message,
		"progress":  result.Progress,
	})
}

// GeneratePath generates and persists the learning path.
// POST /api/sessions/:session_id/path/generate
func (h *Handler) GeneratePath(c echo.Context) error {
	pathID, err := h.flow.GeneratePath(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Learning path generated successfully!",
		"pathId":  pathID,
	})
}

// GetPath returns the generated learning path.
// GET /api/sessions/:session_id/path
func (h *Handler) GetPath(c echo.Context) error {
	path, err := h.flow.GetPath(c.Request().Context(), c.Param("session_id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":      true,
		"learningPath": path,
	})
}

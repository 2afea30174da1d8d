package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"racing_analyzer/internal/domain"
)

var feedbackTypes = []string{"bug", "feature", "improvement", "other"}

const feedbackStatusNew = "new"

type createFeedbackRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

func (h *Handler) CreateFeedback(c echo.Context) error {
	var req createFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if !slices.Contains(feedbackTypes, req.Type) {
		return echo.NewHTTPError(http.StatusBadRequest, "type must be one of "+strings.Join(feedbackTypes, ", "))
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and description are required")
	}

	fb := &domain.Feedback{
		Name:        req.Name,
		Email:       req.Email,
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Status:      feedbackStatusNew,
	}
	if err := h.feedback.Create(c.Request().Context(), fb); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusCreated, fb)
}

func (h *Handler) ListFeedback(c echo.Context) error {
	items, err := h.feedback.List(c.Request().Context())
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

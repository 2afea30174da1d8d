package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"racing_analyzer/internal/domain"
)

type createCommentRequest struct {
	RaceID   int64  `json:"race_id"`
	HorseID  int64  `json:"horse_id"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

func (h *Handler) ListComments(c echo.Context) error {
	raceID, err := queryID(c, "race_id")
	if err != nil {
		return err
	}
	horseID, err := queryID(c, "horse_id")
	if err != nil {
		return err
	}

	comments, err := h.comments.List(c.Request().Context(), domain.CommentFilter{RaceID: raceID, HorseID: horseID})
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *Handler) CreateComment(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.RaceID <= 0 || req.HorseID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "race_id and horse_id are required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	comment := &domain.Comment{
		RaceID:   req.RaceID,
		HorseID:  req.HorseID,
		Content:  req.Content,
		IsPublic: req.IsPublic,
	}
	if err := h.comments.Create(c.Request().Context(), comment); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *Handler) GetComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	comment, err := h.comments.Get(c.Request().Context(), id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

// UpdateComment applies only the fields present in the body.
func (h *Handler) UpdateComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var patch domain.CommentPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content must not be empty")
	}

	comment, err := h.comments.Update(c.Request().Context(), id, patch)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.comments.Delete(c.Request().Context(), id); err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success", "message": "comment deleted"})
}

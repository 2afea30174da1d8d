package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"racing_analyzer/internal/scheduler"
)

type syncAccepted struct {
	Status  string `json:"status"`
	RunID   string `json:"run_id"`
	Message string `json:"message"`
}

// TriggerSync queues a sync and answers before it runs. The returned run_id
// can be polled at /sync/runs/:id.
func (h *Handler) TriggerSync(c echo.Context) error {
	date, err := queryDate(c, "target_date")
	if err != nil {
		return err
	}
	if date == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "target_date is required")
	}

	force := false
	if raw := c.QueryParam("force"); raw != "" {
		force, err = strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "force must be a boolean")
		}
	}

	run, err := h.runner.Submit(*date, force)
	switch {
	case errors.Is(err, scheduler.ErrQueueFull), errors.Is(err, scheduler.ErrRunnerStopped):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	case err != nil:
		return h.storeError(c, err)
	}

	return c.JSON(http.StatusAccepted, syncAccepted{
		Status:  string(run.Status),
		RunID:   run.ID,
		Message: "sync queued for " + run.TargetDate,
	})
}

func (h *Handler) GetSyncRun(c echo.Context) error {
	run, err := h.runner.Get(c.Param("id"))
	if errors.Is(err, scheduler.ErrRunNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, run)
}

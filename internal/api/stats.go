package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"racing_analyzer/internal/domain"
)

func (h *Handler) ListStats(c echo.Context) error {
	period, err := queryRange(c)
	if err != nil {
		return err
	}

	rows, err := h.stats.Stats(c.Request().Context(), domain.StatsFilter{
		Category:  c.QueryParam("category"),
		DateRange: period,
	})
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) KPI(c echo.Context) error {
	period, err := queryRange(c)
	if err != nil {
		return err
	}

	kpi, err := h.stats.KPI(c.Request().Context(), period)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, kpi)
}

func (h *Handler) Recommendations(c echo.Context) error {
	date, err := queryDate(c, "target_date")
	if err != nil {
		return err
	}
	if date == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "target_date is required")
	}

	recs, err := h.stats.Recommendations(c.Request().Context(), *date)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, recs)
}

package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"racing_analyzer/internal/domain"
)

const (
	Name    = "Horse Racing Analyzer API"
	Version = "0.1.0"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db       Pinger
	races    RaceStore
	horses   HorseStore
	comments CommentStore
	feedback FeedbackStore
	stats    StatsService
	runner   SyncRunner
	logger   *slog.Logger
}

type Deps struct {
	DB       Pinger
	Races    RaceStore
	Horses   HorseStore
	Comments CommentStore
	Feedback FeedbackStore
	Stats    StatsService
	Runner   SyncRunner
	Logger   *slog.Logger
}

func New(d Deps) *Handler {
	return &Handler{
		db:       d.DB,
		races:    d.Races,
		horses:   d.Horses,
		comments: d.Comments,
		feedback: d.Feedback,
		stats:    d.Stats,
		runner:   d.Runner,
		logger:   d.Logger,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": Name, "version": Version})
}

func (h *Handler) Health(c echo.Context) error {
	if err := h.db.PingContext(c.Request().Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// storeError maps domain errors to HTTP errors. Anything unrecognised is a 500
// and is logged, since its message is not shown to the client.
func (h *Handler) storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidReference):
		return echo.NewHTTPError(http.StatusBadRequest, "race or horse does not exist")
	}
	h.logger.Error("request failed", "path", c.Path(), "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseRaceDate(raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be YYYY-MM-DD")
	}
	return &d, nil
}

func queryID(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return &id, nil
}

func queryRange(c echo.Context) (domain.DateRange, error) {
	start, err := queryDate(c, "start_date")
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := queryDate(c, "end_date")
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{Start: start, End: end}, nil
}

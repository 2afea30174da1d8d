package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"racing_analyzer/internal/domain"
)

type raceDetailResponse struct {
	Race   *domain.Race   `json:"race"`
	Horses []domain.Horse `json:"horses"`
}

// ListRaces returns races filtered by race_date and venue.
func (h *Handler) ListRaces(c echo.Context) error {
	date, err := queryDate(c, "race_date")
	if err != nil {
		return err
	}

	races, err := h.races.List(c.Request().Context(), domain.RaceFilter{
		Date:  date,
		Venue: c.QueryParam("venue"),
	})
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, races)
}

// GetRace returns one race with its horses in horse number order.
func (h *Handler) GetRace(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	race, err := h.races.GetByID(ctx, id)
	if err != nil {
		return h.storeError(c, err)
	}

	horses, err := h.horses.ListByRace(ctx, id)
	if err != nil {
		return h.storeError(c, err)
	}
	return c.JSON(http.StatusOK, raceDetailResponse{Race: race, Horses: horses})
}

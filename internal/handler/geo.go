package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (h *Handler) LatestPositions(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.fleetSvc.LatestPositions(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) PositionHistory(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	registration := c.QueryParam("registration")
	if registration == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "registration is empty")
	}
	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid from date")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid to date")
	}

	items, err := h.fleetSvc.PositionHistory(c.Request().Context(), p, registration, from, to)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) RefreshPositions(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	inserted, err := h.fleetSvc.RefreshPositions(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true, "inserted": inserted})
}

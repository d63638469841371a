package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flotilla-app/fleet-service/internal/model"
)

func (h *Handler) ListMaintenance(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.fleetSvc.ListMaintenance(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) OpenMaintenance(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.OpenMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.fleetSvc.OpenMaintenance(c.Request().Context(), p, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) CloseMaintenance(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	var req model.CloseMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.fleetSvc.CloseMaintenance(c.Request().Context(), p, id, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, m)
}

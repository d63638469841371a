package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flotilla-app/fleet-service/internal/model"
)

func (h *Handler) ListFines(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.fleetSvc.ListFines(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateFine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f, err := h.fleetSvc.CreateFine(c.Request().Context(), p, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *Handler) UpdateFine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.UpdateFineRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f, err := h.fleetSvc.UpdateFine(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFine(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.fleetSvc.DeleteFine(c.Request().Context(), p, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListEmployees(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	items, err := h.fleetSvc.ListEmployees(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateEmployee(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	e, err := h.fleetSvc.CreateEmployee(c.Request().Context(), p, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, e)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flotilla-app/fleet-service/internal/model"
)

func (h *Handler) ListAnnouncements(c echo.Context) error {
	if _, err := principal(c); err != nil {
		return err
	}
	items, err := h.fleetSvc.ListAnnouncements(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateAnnouncement(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.fleetSvc.CreateAnnouncement(c.Request().Context(), p, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAnnouncement(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.UpdateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.fleetSvc.UpdateAnnouncement(c.Request().Context(), p, c.Param("id"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAnnouncement(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	if err := h.fleetSvc.DeleteAnnouncement(c.Request().Context(), p, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) AdminOverview(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	o, err := h.fleetSvc.AdminOverview(c.Request().Context(), p)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, o)
}

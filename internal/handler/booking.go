package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

// CheckAvailability is the advisory check: it answers 200 with a result value
// for every business outcome, so the UI can render the message directly.
// Only an unreachable store produces a 500, tagged server_error to keep the
// channel distinct from a legitimate conflict.
func (h *Handler) CheckAvailability(c echo.Context) error {
	var req model.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	excludeID := c.QueryParam("exclude_booking_id")

	res, err := h.fleetSvc.CheckAvailability(c.Request().Context(), req, excludeID)
	if err != nil {
		h.log.Error("check availability", zap.Error(err))
		return c.JSON(http.StatusInternalServerError,
			model.Unavailable(model.ReasonServerError, "error checking availability"))
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, res, err := h.fleetSvc.CreateBooking(c.Request().Context(), p, req)
	if err != nil {
		return httpError(err)
	}
	if !res.Available {
		status := http.StatusConflict
		if res.Reason != nil {
			switch *res.Reason {
			case model.ReasonInvalidParams, model.ReasonInvalidDate, model.ReasonInvalidRange:
				status = http.StatusBadRequest
			case model.ReasonNotFound:
				status = http.StatusNotFound
			}
		}
		return c.JSON(status, res)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *Handler) ListBookings(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	f := model.BookingFilter{
		EmployeeID: c.QueryParam("employee_id"),
		VehicleID:  c.QueryParam("vehicle_id"),
	}
	if s := c.QueryParam("start_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return httpError(errs.ErrInvalidDate)
		}
		f.From = &t
	}
	if s := c.QueryParam("end_date"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return httpError(errs.ErrInvalidDate)
		}
		f.To = &t
	}
	bookings, err := h.fleetSvc.ListBookings(c.Request().Context(), p, f)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id is empty")
	}
	b, err := h.fleetSvc.GetBooking(c.Request().Context(), p, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CancelBooking(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	b, err := h.fleetSvc.CancelBooking(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) CompleteBooking(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	b, err := h.fleetSvc.CompleteBooking(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, b)
}

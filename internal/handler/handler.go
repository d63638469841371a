package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/pkg/validate"
)

type Handler struct {
	fleetSvc FleetService
	log      *zap.Logger
}

func New(fleetSvc FleetService, log *zap.Logger) *Handler {
	return &Handler{
		fleetSvc: fleetSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig(h.log)),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		JwtAuthentication,
	)

	api.GET("/bookings/availability", h.CheckAvailability)
	api.POST("/bookings/availability", h.CheckAvailability)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:id", h.GetBooking)
	api.PATCH("/bookings/:id/cancel", h.CancelBooking)
	api.PATCH("/bookings/:id/complete", h.CompleteBooking)

	api.GET("/vehicles", h.ListVehicles)
	api.POST("/vehicles", h.CreateVehicle)
	api.GET("/vehicles/:id", h.GetVehicle)
	api.PUT("/vehicles/:id", h.UpdateVehicle)
	api.DELETE("/vehicles/:id", h.DeleteVehicle)

	api.GET("/maintenance", h.ListMaintenance)
	api.POST("/maintenance", h.OpenMaintenance)
	api.PATCH("/maintenance/:id/close", h.CloseMaintenance)

	api.GET("/fines", h.ListFines)
	api.POST("/fines", h.CreateFine)
	api.PATCH("/fines/:id", h.UpdateFine)
	api.DELETE("/fines/:id", h.DeleteFine)

	api.GET("/employees", h.ListEmployees)
	api.POST("/employees", h.CreateEmployee)

	api.GET("/announcements", h.ListAnnouncements)
	api.POST("/announcements", h.CreateAnnouncement)
	api.PATCH("/announcements/:id", h.UpdateAnnouncement)
	api.DELETE("/announcements/:id", h.DeleteAnnouncement)

	api.GET("/admin/overview", h.AdminOverview)

	api.GET("/geo/latest", h.LatestPositions)
	api.GET("/geo/history", h.PositionHistory)
	api.POST("/geo/refresh", h.RefreshPositions)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps service errors onto transport statuses. Anything unmapped is
// an infrastructure failure and stays a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrDuplicate),
		errors.Is(err, errs.ErrBadStatus),
		errors.Is(err, errs.ErrVehicleInUse):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidDate):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrFeedNotConfigured):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

// CreateBooking is the commit path. The validation stages run here; the
// vehicle gate and both conflict checks are re-applied by the repository
// inside the per-vehicle locked transaction, so the insert never trusts an
// earlier advisory answer. Denials come back as a negative result, the
// booking as a value on success.
func (s *Service) CreateBooking(ctx context.Context, p auth.Principal, req model.CreateBookingRequest) (model.Booking, model.AvailabilityResult, error) {
	w, denied := parseWindow(model.AvailabilityRequest{
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if denied != nil {
		return model.Booking{}, *denied, nil
	}

	employeeID := p.ID
	if p.Admin && req.EmployeeID != "" {
		employeeID = req.EmployeeID
	}

	b := model.Booking{
		ID:          uuid.NewString(),
		VehicleID:   req.VehicleID,
		EmployeeID:  employeeID,
		StartDate:   w.start,
		EndDate:     w.end,
		Purpose:     req.Purpose,
		Destination: req.Destination,
		Status:      model.BookingActive,
	}

	created, err := s.repo.CreateBooking(ctx, b)
	if err != nil {
		if res, ok := denialResult(err); ok {
			return model.Booking{}, res, nil
		}
		return model.Booking{}, model.AvailabilityResult{}, errors.Wrap(err, "create booking")
	}

	s.publish("booking.created", created)
	return created, model.Available(), nil
}

// denialResult translates commit-time denials raised by the repository into
// the same reason taxonomy the advisory check uses.
func denialResult(err error) (model.AvailabilityResult, bool) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return model.Unavailable(model.ReasonNotFound, "vehicle not found"), true
	case errors.Is(err, errs.ErrVehicleMaintenance):
		return model.Unavailable(model.ReasonMaintenance, "the vehicle is in the workshop and cannot be booked"), true
	case errors.Is(err, errs.ErrVehicleNotBookable):
		return model.Unavailable(model.ReasonVehicleStatus, "the vehicle is not available to book"), true
	case errors.Is(err, errs.ErrBookingConflict):
		return model.Unavailable(model.ReasonBookingConflict, "another booking exists for this vehicle in these dates"), true
	case errors.Is(err, errs.ErrMaintenanceConflict):
		return model.Unavailable(model.ReasonMaintenanceActive, "the vehicle has maintenance scheduled in these dates"), true
	}
	return model.AvailabilityResult{}, false
}

// ListBookings applies the visibility rule: admins see the whole calendar and
// may filter, employees only ever see their own bookings.
func (s *Service) ListBookings(ctx context.Context, p auth.Principal, f model.BookingFilter) ([]model.Booking, error) {
	if !p.Admin {
		f = model.BookingFilter{EmployeeID: p.ID}
	}
	return s.repo.ListBookings(ctx, f)
}

func (s *Service) GetBooking(ctx context.Context, p auth.Principal, id string) (model.Booking, error) {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	if !p.Admin && b.EmployeeID != p.ID {
		return model.Booking{}, errs.ErrForbidden
	}
	return b, nil
}

func (s *Service) CancelBooking(ctx context.Context, p auth.Principal, id string) (model.Booking, error) {
	if _, err := s.GetBooking(ctx, p, id); err != nil {
		return model.Booking{}, err
	}
	b, err := s.repo.SetBookingStatus(ctx, id,
		[]model.BookingStatus{model.BookingPending, model.BookingActive}, model.BookingCancelled)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish("booking.cancelled", b)
	return b, nil
}

func (s *Service) CompleteBooking(ctx context.Context, p auth.Principal, id string) (model.Booking, error) {
	if _, err := s.GetBooking(ctx, p, id); err != nil {
		return model.Booking{}, err
	}
	b, err := s.repo.SetBookingStatus(ctx, id,
		[]model.BookingStatus{model.BookingActive}, model.BookingCompleted)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish("booking.completed", b)
	return b, nil
}

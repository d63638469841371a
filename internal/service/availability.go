package service

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

// Overlaps reports whether two half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching endpoints do not count: back-to-back
// bookings are legal. Callers guarantee start < end on both sides.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	time.DateOnly,
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// window is a validated request range.
type window struct {
	start, end time.Time
}

// parseWindow runs the cheap, deterministic stages of the pipeline. A nil
// result means the window is valid.
func parseWindow(req model.AvailabilityRequest) (window, *model.AvailabilityResult) {
	if req.VehicleID == "" || req.StartDate == "" || req.EndDate == "" {
		res := model.Unavailable(model.ReasonInvalidParams, "vehicle_id, start_date and end_date are required")
		return window{}, &res
	}
	start, okS := parseDate(req.StartDate)
	end, okE := parseDate(req.EndDate)
	if !okS || !okE {
		res := model.Unavailable(model.ReasonInvalidDate, "the selected dates are not in a valid format")
		return window{}, &res
	}
	if !end.After(start) {
		res := model.Unavailable(model.ReasonInvalidRange, "the end date must be after the start date")
		return window{}, &res
	}
	return window{start: start, end: end}, nil
}

// gateVehicle maps the stored vehicle status to an admission decision.
// It runs before any calendar scan: a vehicle outside available status is
// never bookable regardless of calendar gaps.
func gateVehicle(status model.VehicleStatus) *model.AvailabilityResult {
	switch status {
	case model.VehicleAvailable:
		return nil
	case model.VehicleMaintenance:
		res := model.Unavailable(model.ReasonMaintenance, "the vehicle is in the workshop and cannot be booked")
		return &res
	default:
		res := model.Unavailable(model.ReasonVehicleStatus, "the vehicle is not available to book")
		return &res
	}
}

// CheckAvailability is the advisory resolver: side-effect free, idempotent,
// safe to call repeatedly while a user edits a date range. Business outcomes
// come back as a result value; only infrastructure failures return an error.
func (s *Service) CheckAvailability(ctx context.Context, req model.AvailabilityRequest, excludeBookingID string) (model.AvailabilityResult, error) {
	w, denied := parseWindow(req)
	if denied != nil {
		return *denied, nil
	}

	vehicle, err := s.repo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Unavailable(model.ReasonNotFound, "vehicle not found"), nil
		}
		return model.AvailabilityResult{}, errors.Wrap(err, "get vehicle")
	}
	if denied := gateVehicle(vehicle.Status); denied != nil {
		return *denied, nil
	}

	conflict, err := s.repo.HasBookingConflict(ctx, req.VehicleID, w.start, w.end, excludeBookingID)
	if err != nil {
		return model.AvailabilityResult{}, errors.Wrap(err, "booking conflict")
	}
	if conflict {
		return model.Unavailable(model.ReasonBookingConflict, "another booking exists for this vehicle in these dates"), nil
	}

	conflict, err = s.repo.HasMaintenanceConflict(ctx, req.VehicleID, w.start, w.end)
	if err != nil {
		return model.AvailabilityResult{}, errors.Wrap(err, "maintenance conflict")
	}
	if conflict {
		return model.Unavailable(model.ReasonMaintenanceActive, "the vehicle has maintenance scheduled in these dates"), nil
	}

	return model.Available(), nil
}

package errs

import (
	"errors"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadStatus    = errors.New("invalid status")
	ErrInvalidDate  = errors.New("invalid date")
	ErrVehicleInUse = errors.New("vehicle referenced by bookings")
	ErrDuplicate    = errors.New("already exists")

	ErrFeedNotConfigured = errors.New("telemetry feed not configured")

	// commit-time denials, re-raised by the transactional re-check
	ErrVehicleMaintenance  = errors.New("vehicle currently in the workshop")
	ErrVehicleNotBookable  = errors.New("vehicle not available to book")
	ErrBookingConflict     = errors.New("overlapping booking exists")
	ErrMaintenanceConflict = errors.New("overlapping maintenance exists")
)

package model

// Reason is the denial taxonomy consumed by clients. The advisory check and
// the commit path share it.
type Reason string

const (
	ReasonInvalidParams     Reason = "invalid_params"
	ReasonInvalidDate       Reason = "invalid_date"
	ReasonInvalidRange      Reason = "invalid_range"
	ReasonNotFound          Reason = "not_found"
	ReasonMaintenance       Reason = "maintenance"
	ReasonVehicleStatus     Reason = "vehicle_status"
	ReasonBookingConflict   Reason = "booking_conflict"
	ReasonMaintenanceActive Reason = "maintenance_active"
	ReasonServerError       Reason = "server_error"
)

// AvailabilityResult is a value, not an error: every business outcome of the
// resolver lands here. Only infrastructure failures surface as Go errors.
type AvailabilityResult struct {
	Available bool    `json:"available"`
	Reason    *Reason `json:"reason"`
	Message   string  `json:"message"`
}

func Available() AvailabilityResult {
	return AvailabilityResult{
		Available: true,
		Message:   "vehicle is available for the requested window",
	}
}

func Unavailable(reason Reason, message string) AvailabilityResult {
	r := reason
	return AvailabilityResult{Available: false, Reason: &r, Message: message}
}

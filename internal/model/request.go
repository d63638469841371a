package model

import "time"

// AvailabilityRequest carries raw, unvalidated input: date parsing is part of
// the resolver pipeline so malformed dates produce invalid_date, not a bind error.
type AvailabilityRequest struct {
	VehicleID string `json:"vehicle_id" query:"vehicle_id"`
	StartDate string `json:"start_date" query:"start_date"`
	EndDate   string `json:"end_date" query:"end_date"`
}

type CreateBookingRequest struct {
	VehicleID   string  `json:"vehicle_id"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Purpose     *string `json:"purpose"`
	Destination *string `json:"destination"`
	// EmployeeID is honored for admins booking on behalf of someone else;
	// for everyone else the booking is forced onto the caller.
	EmployeeID string `json:"employee_id"`
}

type BookingFilter struct {
	EmployeeID string     `query:"employee_id"`
	VehicleID  string     `query:"vehicle_id"`
	From       *time.Time `query:"-"`
	To         *time.Time `query:"-"`
}

type CreateVehicleRequest struct {
	LicensePlate string  `json:"license_plate" validate:"required"`
	Brand        string  `json:"brand" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	Year         int     `json:"year"`
	Color        *string `json:"color"`
	VehicleType  string  `json:"vehicle_type" validate:"required,oneof=car van truck tractor trailer machinery"`
	Status       string  `json:"status"`
	FuelType     *string `json:"fuel_type"`
	Seats        *int    `json:"seats"`
	Notes        *string `json:"notes"`
}

type UpdateVehicleRequest struct {
	Brand       *string `json:"brand"`
	Model       *string `json:"model"`
	Year        *int    `json:"year"`
	Color       *string `json:"color"`
	VehicleType *string `json:"vehicle_type"`
	Status      *string `json:"status"`
	FuelType    *string `json:"fuel_type"`
	Seats       *int    `json:"seats"`
	Notes       *string `json:"notes"`
}

type OpenMaintenanceRequest struct {
	VehicleID    string  `json:"vehicle_id" validate:"required"`
	Type         string  `json:"maintenance_type" validate:"omitempty,oneof=workshop itv repair service"`
	Description  *string `json:"description"`
	Notes        *string `json:"notes"`
	WorkshopName *string `json:"workshop_name"`
	StartDate    string  `json:"start_date"`
}

type CloseMaintenanceRequest struct {
	EndDate string   `json:"end_date"`
	Cost    *float64 `json:"cost"`
	Notes   *string  `json:"notes"`
}

type CreateFineRequest struct {
	VehicleID   string  `json:"vehicle_id" validate:"required"`
	EmployeeID  *string `json:"employee_id"`
	BookingID   *string `json:"booking_id"`
	FineDate    string  `json:"fine_date" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	Location    *string `json:"location"`
	Notes       *string `json:"notes"`
}

type UpdateFineRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending paid appealed"`
	Notes  *string `json:"notes"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type UpdateAnnouncementRequest struct {
	Title   *string `json:"title"`
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

type CreateEmployeeRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	FullName   string  `json:"full_name" validate:"required"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	IsAdmin    bool    `json:"is_admin"`
}

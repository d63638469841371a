package model

import (
	"strings"
	"time"
)

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleUnavailable VehicleStatus = "unavailable"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

type FineStatus string

const (
	FinePending  FineStatus = "pending"
	FinePaid     FineStatus = "paid"
	FineAppealed FineStatus = "appealed"
)

type AnnouncementStatus string

const (
	AnnouncementOpen   AnnouncementStatus = "open"
	AnnouncementClosed AnnouncementStatus = "closed"
)

// Normalization happens once, at the boundary. The legacy data set carries
// Spanish synonyms ("disponible", "taller", "planificado"); business logic
// only ever sees the canonical values.
var vehicleStatusSynonyms = map[string]VehicleStatus{
	"available":     VehicleAvailable,
	"disponible":    VehicleAvailable,
	"in_use":        VehicleInUse,
	"en_uso":        VehicleInUse,
	"maintenance":   VehicleMaintenance,
	"mantenimiento": VehicleMaintenance,
	"taller":        VehicleMaintenance,
	"unavailable":   VehicleUnavailable,
	"no_disponible": VehicleUnavailable,
	"bloqueado":     VehicleUnavailable,
}

func ParseVehicleStatus(s string) (VehicleStatus, bool) {
	st, ok := vehicleStatusSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

var maintenanceStatusSynonyms = map[string]MaintenanceStatus{
	"scheduled":   MaintenanceScheduled,
	"planned":     MaintenanceScheduled,
	"planificado": MaintenanceScheduled,
	"in_progress": MaintenanceInProgress,
	"en_curso":    MaintenanceInProgress,
	"completed":   MaintenanceCompleted,
	"completado":  MaintenanceCompleted,
	"finalizado":  MaintenanceCompleted,
}

func ParseMaintenanceStatus(s string) (MaintenanceStatus, bool) {
	st, ok := maintenanceStatusSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

var bookingStatusSynonyms = map[string]BookingStatus{
	"pending":    BookingPending,
	"pendiente":  BookingPending,
	"active":     BookingActive,
	"activa":     BookingActive,
	"completed":  BookingCompleted,
	"completada": BookingCompleted,
	"cancelled":  BookingCancelled,
	"canceled":   BookingCancelled,
	"cancelada":  BookingCancelled,
}

func ParseBookingStatus(s string) (BookingStatus, bool) {
	st, ok := bookingStatusSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

var announcementStatusSynonyms = map[string]AnnouncementStatus{
	"open":    AnnouncementOpen,
	"abierto": AnnouncementOpen,
	"closed":  AnnouncementClosed,
	"cerrado": AnnouncementClosed,
}

func ParseAnnouncementStatus(s string) (AnnouncementStatus, bool) {
	st, ok := announcementStatusSynonyms[strings.ToLower(strings.TrimSpace(s))]
	return st, ok
}

type Vehicle struct {
	ID           string        `json:"id" db:"id"`
	LicensePlate string        `json:"licensePlate" db:"license_plate"`
	Brand        string        `json:"brand" db:"brand"`
	Model        string        `json:"model" db:"model"`
	Year         int           `json:"year" db:"year"`
	Color        *string       `json:"color" db:"color"`
	VehicleType  string        `json:"vehicleType" db:"vehicle_type"`
	Status       VehicleStatus `json:"status" db:"status"`
	FuelType     *string       `json:"fuelType" db:"fuel_type"`
	Seats        *int          `json:"seats" db:"seats"`
	Notes        *string       `json:"notes" db:"notes"`
	LastLat      *float64      `json:"lastLat" db:"last_lat"`
	LastLon      *float64      `json:"lastLon" db:"last_lon"`
	LastPosAt    *time.Time    `json:"lastPositionAt" db:"last_position_at"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

type Booking struct {
	ID          string        `json:"id" db:"id"`
	VehicleID   string        `json:"vehicleId" db:"vehicle_id"`
	EmployeeID  string        `json:"employeeId" db:"employee_id"`
	StartDate   time.Time     `json:"startDate" db:"start_date"`
	EndDate     time.Time     `json:"endDate" db:"end_date"`
	Purpose     *string       `json:"purpose" db:"purpose"`
	Destination *string       `json:"destination" db:"destination"`
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

type Maintenance struct {
	ID           string            `json:"id" db:"id"`
	VehicleID    string            `json:"vehicleId" db:"vehicle_id"`
	Type         string            `json:"maintenanceType" db:"maintenance_type"`
	Description  *string           `json:"description" db:"description"`
	Notes        *string           `json:"notes" db:"notes"`
	WorkshopName *string           `json:"workshopName" db:"workshop_name"`
	Cost         *float64          `json:"cost" db:"cost"`
	Status       MaintenanceStatus `json:"status" db:"status"`
	StartDate    time.Time         `json:"startDate" db:"start_date"`
	EndDate      *time.Time        `json:"endDate" db:"end_date"`
	CreatedAt    time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time         `json:"updatedAt" db:"updated_at"`
}

type Fine struct {
	ID          string     `json:"id" db:"id"`
	VehicleID   string     `json:"vehicleId" db:"vehicle_id"`
	EmployeeID  *string    `json:"employeeId" db:"employee_id"`
	BookingID   *string    `json:"bookingId" db:"booking_id"`
	FineDate    time.Time  `json:"fineDate" db:"fine_date"`
	Amount      float64    `json:"amount" db:"amount"`
	Description string     `json:"description" db:"description"`
	Location    *string    `json:"location" db:"location"`
	Status      FineStatus `json:"status" db:"status"`
	Notes       *string    `json:"notes" db:"notes"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

type Employee struct {
	ID         string    `json:"id" db:"id"`
	Email      string    `json:"email" db:"email"`
	FullName   string    `json:"fullName" db:"full_name"`
	Department *string   `json:"department" db:"department"`
	Phone      *string   `json:"phone" db:"phone"`
	IsAdmin    bool      `json:"isAdmin" db:"is_admin"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type Announcement struct {
	ID        string             `json:"id" db:"id"`
	Title     string             `json:"title" db:"title"`
	Message   string             `json:"message" db:"message"`
	Status    AnnouncementStatus `json:"status" db:"status"`
	CreatedBy *string            `json:"createdBy" db:"created_by"`
	CreatedAt time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" db:"updated_at"`
}

// Overview is the admin dashboard aggregate: headline metrics plus the next
// few bookings on the calendar.
type Overview struct {
	Metrics  OverviewMetrics `json:"metrics"`
	Upcoming []Booking       `json:"upcoming"`
}

type OverviewMetrics struct {
	ActiveCount       int `json:"activeCount"`
	AvailableVehicles int `json:"availableVehicles"`
}

type VehiclePosition struct {
	ID           int64     `json:"-" db:"id"`
	DeviceID     *int64    `json:"deviceId" db:"device_id"`
	Registration string    `json:"registration" db:"registration"`
	Lat          float64   `json:"lat" db:"lat"`
	Lon          float64   `json:"lon" db:"lon"`
	Speed        *float64  `json:"speed" db:"speed"`
	Direction    *float64  `json:"direction" db:"direction"`
	Ignition     *string   `json:"ignition" db:"ignition"`
	Street       *string   `json:"street" db:"street"`
	Town         *string   `json:"town" db:"town"`
	PostCode     *string   `json:"postCode" db:"post_code"`
	Country      *string   `json:"country" db:"country"`
	RecordedAt   time.Time `json:"recordedAt" db:"recorded_at"`
}

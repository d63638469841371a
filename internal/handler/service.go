package handler

import (
	"context"
	"time"

	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/internal/service"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type FleetService interface {
	CheckAvailability(ctx context.Context, req model.AvailabilityRequest, excludeBookingID string) (model.AvailabilityResult, error)
	CreateBooking(ctx context.Context, p auth.Principal, req model.CreateBookingRequest) (model.Booking, model.AvailabilityResult, error)
	ListBookings(ctx context.Context, p auth.Principal, f model.BookingFilter) ([]model.Booking, error)
	GetBooking(ctx context.Context, p auth.Principal, id string) (model.Booking, error)
	CancelBooking(ctx context.Context, p auth.Principal, id string) (model.Booking, error)
	CompleteBooking(ctx context.Context, p auth.Principal, id string) (model.Booking, error)

	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	GetVehicle(ctx context.Context, id string) (model.Vehicle, error)
	CreateVehicle(ctx context.Context, p auth.Principal, req model.CreateVehicleRequest) (model.Vehicle, error)
	UpdateVehicle(ctx context.Context, p auth.Principal, id string, req model.UpdateVehicleRequest) (model.Vehicle, error)
	DeleteVehicle(ctx context.Context, p auth.Principal, id string) error

	ListMaintenance(ctx context.Context, p auth.Principal) ([]model.Maintenance, error)
	OpenMaintenance(ctx context.Context, p auth.Principal, req model.OpenMaintenanceRequest) (model.Maintenance, error)
	CloseMaintenance(ctx context.Context, p auth.Principal, id string, req model.CloseMaintenanceRequest) (model.Maintenance, error)

	ListFines(ctx context.Context, p auth.Principal) ([]model.Fine, error)
	CreateFine(ctx context.Context, p auth.Principal, req model.CreateFineRequest) (model.Fine, error)
	UpdateFine(ctx context.Context, p auth.Principal, id string, req model.UpdateFineRequest) (model.Fine, error)
	DeleteFine(ctx context.Context, p auth.Principal, id string) error

	ListEmployees(ctx context.Context, p auth.Principal) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, p auth.Principal, req model.CreateEmployeeRequest) (model.Employee, error)

	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, p auth.Principal, req model.CreateAnnouncementRequest) (model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, p auth.Principal, id string, req model.UpdateAnnouncementRequest) (model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, p auth.Principal, id string) error

	AdminOverview(ctx context.Context, p auth.Principal) (model.Overview, error)

	LatestPositions(ctx context.Context, p auth.Principal) ([]model.VehiclePosition, error)
	PositionHistory(ctx context.Context, p auth.Principal, registration string, from, to time.Time) ([]model.VehiclePosition, error)
	RefreshPositions(ctx context.Context, p auth.Principal) (int, error)
}

var _ FleetService = (*service.Service)(nil)

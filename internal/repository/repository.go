package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/model"
)

type Repository interface {
	GetVehicle(ctx context.Context, id string) (model.Vehicle, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
	CreateVehicle(ctx context.Context, v model.Vehicle) (model.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, req model.UpdateVehicleRequest) (model.Vehicle, error)
	DeleteVehicle(ctx context.Context, id string) error

	GetBooking(ctx context.Context, id string) (model.Booking, error)
	ListBookings(ctx context.Context, f model.BookingFilter) ([]model.Booking, error)
	HasBookingConflict(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) (bool, error)
	HasMaintenanceConflict(ctx context.Context, vehicleID string, start, end time.Time) (bool, error)
	CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error)
	SetBookingStatus(ctx context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (model.Booking, error)

	ListMaintenance(ctx context.Context) ([]model.Maintenance, error)
	OpenMaintenance(ctx context.Context, m model.Maintenance) (model.Maintenance, error)
	CloseMaintenance(ctx context.Context, id string, endDate time.Time, cost *float64, notes *string) (model.Maintenance, error)

	ListFines(ctx context.Context) ([]model.Fine, error)
	CreateFine(ctx context.Context, f model.Fine) (model.Fine, error)
	UpdateFine(ctx context.Context, id string, req model.UpdateFineRequest) (model.Fine, error)
	DeleteFine(ctx context.Context, id string) error

	ListEmployees(ctx context.Context) ([]model.Employee, error)
	CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error)

	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error)
	UpdateAnnouncement(ctx context.Context, id string, req model.UpdateAnnouncementRequest) (model.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error

	Overview(ctx context.Context, now time.Time) (model.Overview, error)

	LatestPositions(ctx context.Context, limit int) ([]model.VehiclePosition, error)
	PositionHistory(ctx context.Context, registration string, from, to time.Time) ([]model.VehiclePosition, error)
	UpsertPositions(ctx context.Context, positions []model.VehiclePosition) (int, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	vehicleTableName      = `vehicles`
	bookingTableName      = `bookings`
	maintenanceTableName  = `maintenance`
	fineTableName         = `fines`
	employeeTableName     = `employees`
	positionTableName     = `vehicle_positions`
	announcementTableName = `announcements`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// lockVehicle serializes every writer that touches one vehicle's calendar or
// status. The lock is transaction-scoped and released on commit/rollback.
func lockVehicle(ctx context.Context, tx *sqlx.Tx, vehicleID string) error {
	if _, err := tx.ExecContext(ctx, `select pg_advisory_xact_lock(hashtextextended($1, 0))`, vehicleID); err != nil {
		return errors.Wrap(err, "advisory lock")
	}
	return nil
}

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

const bookingColumns = `id, vehicle_id, employee_id, start_date, end_date, purpose, destination, status, created_at, updated_at`

func (r *repository) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	q := fmt.Sprintf(`select %s from %s where id = $1`, bookingColumns, bookingTableName)
	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *repository) ListBookings(ctx context.Context, f model.BookingFilter) ([]model.Booking, error) {
	b := qb.Select("id", "vehicle_id", "employee_id", "start_date", "end_date",
		"purpose", "destination", "status", "created_at", "updated_at").
		From(bookingTableName).
		OrderBy("start_date desc")

	if f.EmployeeID != "" {
		b = b.Where(sq.Eq{"employee_id": f.EmployeeID})
	}
	if f.VehicleID != "" {
		b = b.Where(sq.Eq{"vehicle_id": f.VehicleID})
	}
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"start_date": *f.From})
	}
	if f.To != nil {
		b = b.Where(sq.LtOrEq{"end_date": *f.To})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// overlap predicate over half-open windows: touching endpoints do not conflict.
const (
	bookingConflictQuery = `
	select exists (
		select 1 from bookings
		where vehicle_id = $1
		  and status in ('active', 'pending')
		  and start_date < $3
		  and end_date > $2
		  and ($4 = '' or id::text <> $4)
	)`

	maintenanceConflictQuery = `
	select exists (
		select 1 from maintenance
		where vehicle_id = $1
		  and status in ('scheduled', 'in_progress')
		  and start_date < $3
		  and coalesce(end_date, 'infinity'::timestamptz) > $2
	)`
)

func (r *repository) HasBookingConflict(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) (bool, error) {
	var conflict bool
	if err := r.db.QueryRowContext(ctx, bookingConflictQuery, vehicleID, start, end, excludeID).Scan(&conflict); err != nil {
		return false, err
	}
	return conflict, nil
}

func (r *repository) HasMaintenanceConflict(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	var conflict bool
	if err := r.db.QueryRowContext(ctx, maintenanceConflictQuery, vehicleID, start, end).Scan(&conflict); err != nil {
		return false, err
	}
	return conflict, nil
}

// CreateBooking re-checks availability and inserts inside one transaction,
// serialized per vehicle by an advisory lock. The exclusion constraint on
// bookings backstops the same invariant if anything slips past the lock.
func (r *repository) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	var created model.Booking
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockVehicle(ctx, tx, b.VehicleID); err != nil {
			return err
		}

		var status model.VehicleStatus
		err := tx.QueryRowContext(ctx,
			fmt.Sprintf(`select status from %s where id = $1`, vehicleTableName), b.VehicleID).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		switch status {
		case model.VehicleAvailable:
		case model.VehicleMaintenance:
			return errs.ErrVehicleMaintenance
		default:
			return errs.ErrVehicleNotBookable
		}

		var conflict bool
		if err := tx.QueryRowContext(ctx, bookingConflictQuery, b.VehicleID, b.StartDate, b.EndDate, "").Scan(&conflict); err != nil {
			return err
		}
		if conflict {
			return errs.ErrBookingConflict
		}
		if err := tx.QueryRowContext(ctx, maintenanceConflictQuery, b.VehicleID, b.StartDate, b.EndDate).Scan(&conflict); err != nil {
			return err
		}
		if conflict {
			return errs.ErrMaintenanceConflict
		}

		query, args, err := qb.Insert(bookingTableName).
			Columns("id", "vehicle_id", "employee_id", "start_date", "end_date", "purpose", "destination", "status").
			Values(b.ID, b.VehicleID, b.EmployeeID, b.StartDate, b.EndDate, b.Purpose, b.Destination, b.Status).
			Suffix("returning " + bookingColumns).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, query, args...); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ExclusionViolation {
				return errs.ErrBookingConflict
			}
			r.log.Error("CreateBooking", zap.String("q", query), zap.Any("args", args))
			return err
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return created, nil
}

// SetBookingStatus moves a booking to a new status iff its current status is
// one of from. History is never deleted, cancellation is a status change.
func (r *repository) SetBookingStatus(ctx context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (model.Booking, error) {
	var updated model.Booking
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var vehicleID string
		err := tx.QueryRowContext(ctx,
			fmt.Sprintf(`select vehicle_id from %s where id = $1`, bookingTableName), id).Scan(&vehicleID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if err := lockVehicle(ctx, tx, vehicleID); err != nil {
			return err
		}

		query, args, err := qb.Update(bookingTableName).
			Set("status", to).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Where(sq.Eq{"status": from}).
			Suffix("returning " + bookingColumns).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &updated, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrBadStatus
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return updated, nil
}

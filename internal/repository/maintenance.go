package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

const maintenanceColumns = `id, vehicle_id, maintenance_type, description, notes, workshop_name, cost, status, start_date, end_date, created_at, updated_at`

func (r *repository) ListMaintenance(ctx context.Context) ([]model.Maintenance, error) {
	q := fmt.Sprintf(`select %s from %s order by created_at desc`, maintenanceColumns, maintenanceTableName)
	var items []model.Maintenance
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

// OpenMaintenance records the vehicle entering the shop. Forcing the vehicle
// to maintenance status is part of the contract, and it happens in the same
// advisory-locked transaction as the insert so a concurrent booking cannot
// observe the vehicle half-transitioned.
func (r *repository) OpenMaintenance(ctx context.Context, m model.Maintenance) (model.Maintenance, error) {
	var created model.Maintenance
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := lockVehicle(ctx, tx, m.VehicleID); err != nil {
			return err
		}

		var exists bool
		if err := tx.QueryRowContext(ctx,
			fmt.Sprintf(`select exists(select 1 from %s where id = $1)`, vehicleTableName), m.VehicleID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return errs.ErrNotFound
		}

		query, args, err := qb.Insert(maintenanceTableName).
			Columns("id", "vehicle_id", "maintenance_type", "description", "notes",
				"workshop_name", "status", "start_date").
			Values(m.ID, m.VehicleID, m.Type, m.Description, m.Notes,
				m.WorkshopName, m.Status, m.StartDate).
			Suffix("returning " + maintenanceColumns).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, query, args...); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`update %s set status = $2, updated_at = now() where id = $1`, vehicleTableName),
			m.VehicleID, model.VehicleMaintenance)
		return err
	})
	if err != nil {
		return model.Maintenance{}, err
	}
	return created, nil
}

// CloseMaintenance records the vehicle leaving the shop and restores it to
// available in the same transaction.
func (r *repository) CloseMaintenance(ctx context.Context, id string, endDate time.Time, cost *float64, notes *string) (model.Maintenance, error) {
	var updated model.Maintenance
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		var vehicleID string
		err := tx.QueryRowContext(ctx,
			fmt.Sprintf(`select vehicle_id from %s where id = $1`, maintenanceTableName), id).Scan(&vehicleID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if err := lockVehicle(ctx, tx, vehicleID); err != nil {
			return err
		}

		b := qb.Update(maintenanceTableName).
			Set("status", model.MaintenanceCompleted).
			Set("end_date", endDate).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": id}).
			Where(sq.Eq{"status": []model.MaintenanceStatus{model.MaintenanceScheduled, model.MaintenanceInProgress}})
		if cost != nil {
			b = b.Set("cost", *cost)
		}
		if notes != nil {
			b = b.Set("notes", *notes)
		}
		query, args, err := b.Suffix("returning " + maintenanceColumns).ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &updated, query, args...); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrBadStatus
			}
			return err
		}

		_, err = tx.ExecContext(ctx,
			fmt.Sprintf(`update %s set status = $2, updated_at = now() where id = $1`, vehicleTableName),
			vehicleID, model.VehicleAvailable)
		return err
	})
	if err != nil {
		return model.Maintenance{}, err
	}
	return updated, nil
}

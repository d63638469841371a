package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

func (r *repository) GetVehicle(ctx context.Context, id string) (model.Vehicle, error) {
	query, args, err := qb.Select("id", "license_plate", "brand", "model", "year", "color",
		"vehicle_type", "status", "fuel_type", "seats", "notes",
		"last_lat", "last_lon", "last_position_at", "created_at", "updated_at").
		From(vehicleTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Vehicle{}, err
	}

	var v model.Vehicle
	if err := r.db.GetContext(ctx, &v, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vehicle{}, errs.ErrNotFound
		}
		return model.Vehicle{}, err
	}
	return v, nil
}

func (r *repository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	query, args, err := qb.Select("id", "license_plate", "brand", "model", "year", "color",
		"vehicle_type", "status", "fuel_type", "seats", "notes",
		"last_lat", "last_lon", "last_position_at", "created_at", "updated_at").
		From(vehicleTableName).
		OrderBy("license_plate asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Vehicle
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateVehicle(ctx context.Context, v model.Vehicle) (model.Vehicle, error) {
	query, args, err := qb.Insert(vehicleTableName).
		Columns("id", "license_plate", "brand", "model", "year", "color", "vehicle_type",
			"status", "fuel_type", "seats", "notes").
		Values(v.ID, v.LicensePlate, v.Brand, v.Model, v.Year, v.Color, v.VehicleType,
			v.Status, v.FuelType, v.Seats, v.Notes).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Vehicle{}, err
	}
	var res model.Vehicle
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Vehicle{}, errs.ErrDuplicate
		}
		r.log.Error("CreateVehicle", zap.String("q", query), zap.Any("args", args))
		return model.Vehicle{}, err
	}
	return res, nil
}

func (r *repository) UpdateVehicle(ctx context.Context, id string, req model.UpdateVehicleRequest) (model.Vehicle, error) {
	b := qb.Update(vehicleTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	if req.Brand != nil {
		b = b.Set("brand", *req.Brand)
	}
	if req.Model != nil {
		b = b.Set("model", *req.Model)
	}
	if req.Year != nil {
		b = b.Set("year", *req.Year)
	}
	if req.Color != nil {
		b = b.Set("color", *req.Color)
	}
	if req.VehicleType != nil {
		b = b.Set("vehicle_type", *req.VehicleType)
	}
	if req.Status != nil {
		b = b.Set("status", *req.Status)
	}
	if req.FuelType != nil {
		b = b.Set("fuel_type", *req.FuelType)
	}
	if req.Seats != nil {
		b = b.Set("seats", *req.Seats)
	}
	if req.Notes != nil {
		b = b.Set("notes", *req.Notes)
	}

	query, args, err := b.Suffix("returning *").ToSql()
	if err != nil {
		return model.Vehicle{}, err
	}
	var res model.Vehicle
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Vehicle{}, errs.ErrNotFound
		}
		return model.Vehicle{}, err
	}
	return res, nil
}

func (r *repository) DeleteVehicle(ctx context.Context, id string) error {
	q := fmt.Sprintf(`delete from %s where id = $1`, vehicleTableName)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return errs.ErrVehicleInUse
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/flotilla-app/fleet-service/internal/model"
)

const positionColumns = `id, device_id, registration, lat, lon, speed, direction, ignition, street, town, post_code, country, recorded_at`

// LatestPositions returns the newest snapshot per vehicle registration.
func (r *repository) LatestPositions(ctx context.Context, limit int) ([]model.VehiclePosition, error) {
	q := fmt.Sprintf(`
	select distinct on (registration) %s
	from %s
	order by registration, recorded_at desc
	limit $1`, positionColumns, positionTableName)

	var items []model.VehiclePosition
	if err := r.db.SelectContext(ctx, &items, q, limit); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) PositionHistory(ctx context.Context, registration string, from, to time.Time) ([]model.VehiclePosition, error) {
	q := fmt.Sprintf(`
	select %s from %s
	where registration = $1 and recorded_at >= $2 and recorded_at <= $3
	order by recorded_at asc`, positionColumns, positionTableName)

	var items []model.VehiclePosition
	if err := r.db.SelectContext(ctx, &items, q, registration, from, to); err != nil {
		return nil, err
	}
	return items, nil
}

// UpsertPositions inserts a polled batch; duplicate (registration, recorded_at)
// rows from repeated polls are dropped on conflict. The newest position per
// registration is stamped onto the matching vehicle row in the same
// transaction, so /vehicles always carries a last-known location.
func (r *repository) UpsertPositions(ctx context.Context, positions []model.VehiclePosition) (int, error) {
	if len(positions) == 0 {
		return 0, nil
	}
	inserted := 0
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		const q = `
		insert into vehicle_positions
			(device_id, registration, lat, lon, speed, direction, ignition, street, town, post_code, country, recorded_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		on conflict (registration, recorded_at) do nothing`
		for _, p := range positions {
			res, err := tx.ExecContext(ctx, q,
				p.DeviceID, p.Registration, p.Lat, p.Lon, p.Speed, p.Direction,
				p.Ignition, p.Street, p.Town, p.PostCode, p.Country, p.RecordedAt)
			if err != nil {
				return err
			}
			if n, err := res.RowsAffected(); err == nil && n > 0 {
				inserted++
			}
		}

		const stamp = `
		update vehicles
		set last_lat = $2, last_lon = $3, last_position_at = $4, updated_at = now()
		where license_plate = $1
		  and (last_position_at is null or last_position_at < $4)`
		for reg, p := range newestByRegistration(positions) {
			if _, err := tx.ExecContext(ctx, stamp, reg, p.Lat, p.Lon, p.RecordedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

func newestByRegistration(positions []model.VehiclePosition) map[string]model.VehiclePosition {
	newest := make(map[string]model.VehiclePosition, len(positions))
	for _, p := range positions {
		if cur, ok := newest[p.Registration]; !ok || p.RecordedAt.After(cur.RecordedAt) {
			newest[p.Registration] = p
		}
	}
	return newest
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

const announcementColumns = `id, title, message, status, created_by, created_at, updated_at`

func (r *repository) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	q := fmt.Sprintf(`select %s from %s order by created_at desc`, announcementColumns, announcementTableName)
	var items []model.Announcement
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	query, args, err := qb.Insert(announcementTableName).
		Columns("id", "title", "message", "status", "created_by").
		Values(a.ID, a.Title, a.Message, a.Status, a.CreatedBy).
		Suffix("returning " + announcementColumns).
		ToSql()
	if err != nil {
		return model.Announcement{}, err
	}
	var created model.Announcement
	if err := r.db.GetContext(ctx, &created, query, args...); err != nil {
		return model.Announcement{}, err
	}
	return created, nil
}

func (r *repository) UpdateAnnouncement(ctx context.Context, id string, req model.UpdateAnnouncementRequest) (model.Announcement, error) {
	b := qb.Update(announcementTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.Title != nil {
		b = b.Set("title", *req.Title)
	}
	if req.Message != nil {
		b = b.Set("message", *req.Message)
	}
	if req.Status != nil {
		b = b.Set("status", *req.Status)
	}
	query, args, err := b.Suffix("returning " + announcementColumns).ToSql()
	if err != nil {
		return model.Announcement{}, err
	}
	var updated model.Announcement
	if err := r.db.GetContext(ctx, &updated, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Announcement{}, errs.ErrNotFound
		}
		return model.Announcement{}, err
	}
	return updated, nil
}

func (r *repository) DeleteAnnouncement(ctx context.Context, id string) error {
	q := fmt.Sprintf(`delete from %s where id = $1`, announcementTableName)
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
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

// Overview gathers the dashboard aggregate in one round of queries: bookings
// running right now, vehicles free to book, and the next windows on the calendar.
func (r *repository) Overview(ctx context.Context, now time.Time) (model.Overview, error) {
	var o model.Overview

	err := r.db.QueryRowContext(ctx, `
	select count(*) from bookings
	where start_date <= $1 and end_date > $1 and status <> 'cancelled'`, now).
		Scan(&o.Metrics.ActiveCount)
	if err != nil {
		return model.Overview{}, errors.Wrap(err, "active bookings")
	}

	err = r.db.QueryRowContext(ctx,
		`select count(*) from vehicles where status = 'available'`).
		Scan(&o.Metrics.AvailableVehicles)
	if err != nil {
		return model.Overview{}, errors.Wrap(err, "available vehicles")
	}

	q := fmt.Sprintf(`
	select %s from %s
	where start_date >= $1
	order by start_date asc
	limit 8`, bookingColumns, bookingTableName)
	if err := r.db.SelectContext(ctx, &o.Upcoming, q, now); err != nil {
		return model.Overview{}, errors.Wrap(err, "upcoming bookings")
	}
	return o, nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

const fineColumns = `id, vehicle_id, employee_id, booking_id, fine_date, amount, description, location, status, notes, created_at, updated_at`

func (r *repository) ListFines(ctx context.Context) ([]model.Fine, error) {
	q := fmt.Sprintf(`select %s from %s order by fine_date desc`, fineColumns, fineTableName)
	var items []model.Fine
	if err := r.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateFine(ctx context.Context, f model.Fine) (model.Fine, error) {
	query, args, err := qb.Insert(fineTableName).
		Columns("id", "vehicle_id", "employee_id", "booking_id", "fine_date",
			"amount", "description", "location", "status", "notes").
		Values(f.ID, f.VehicleID, f.EmployeeID, f.BookingID, f.FineDate,
			f.Amount, f.Description, f.Location, f.Status, f.Notes).
		Suffix("returning " + fineColumns).
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var res model.Fine
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	return res, nil
}

func (r *repository) UpdateFine(ctx context.Context, id string, req model.UpdateFineRequest) (model.Fine, error) {
	b := qb.Update(fineTableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	if req.Status != nil {
		b = b.Set("status", *req.Status)
	}
	if req.Notes != nil {
		b = b.Set("notes", *req.Notes)
	}
	query, args, err := b.Suffix("returning " + fineColumns).ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var res model.Fine
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}
	return res, nil
}

func (r *repository) DeleteFine(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`delete from %s where id = $1`, fineTableName), id)
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

func (r *repository) ListEmployees(ctx context.Context) ([]model.Employee, error) {
	query, args, err := qb.Select("id", "email", "full_name", "department", "phone", "is_admin", "created_at").
		From(employeeTableName).
		OrderBy("full_name asc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Employee
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateEmployee(ctx context.Context, e model.Employee) (model.Employee, error) {
	query, args, err := qb.Insert(employeeTableName).
		Columns("id", "email", "full_name", "department", "phone", "is_admin").
		Values(e.ID, e.Email, e.FullName, e.Department, e.Phone, e.IsAdmin).
		Suffix("returning id, email, full_name, department, phone, is_admin, created_at").
		ToSql()
	if err != nil {
		return model.Employee{}, err
	}
	var res model.Employee
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return model.Employee{}, errs.ErrDuplicate
		}
		return model.Employee{}, err
	}
	return res, nil
}

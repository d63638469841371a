package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

func (s *Service) ListFines(ctx context.Context, p auth.Principal) ([]model.Fine, error) {
	if !p.Admin {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListFines(ctx)
}

func (s *Service) CreateFine(ctx context.Context, p auth.Principal, req model.CreateFineRequest) (model.Fine, error) {
	if !p.Admin {
		return model.Fine{}, errs.ErrForbidden
	}
	fineDate, ok := parseDate(req.FineDate)
	if !ok {
		return model.Fine{}, errs.ErrInvalidDate
	}
	f := model.Fine{
		ID:          uuid.NewString(),
		VehicleID:   req.VehicleID,
		EmployeeID:  req.EmployeeID,
		BookingID:   req.BookingID,
		FineDate:    fineDate,
		Amount:      req.Amount,
		Description: req.Description,
		Location:    req.Location,
		Status:      model.FinePending,
		Notes:       req.Notes,
	}
	return s.repo.CreateFine(ctx, f)
}

func (s *Service) UpdateFine(ctx context.Context, p auth.Principal, id string, req model.UpdateFineRequest) (model.Fine, error) {
	if !p.Admin {
		return model.Fine{}, errs.ErrForbidden
	}
	return s.repo.UpdateFine(ctx, id, req)
}

func (s *Service) DeleteFine(ctx context.Context, p auth.Principal, id string) error {
	if !p.Admin {
		return errs.ErrForbidden
	}
	return s.repo.DeleteFine(ctx, id)
}

func (s *Service) ListEmployees(ctx context.Context, p auth.Principal) ([]model.Employee, error) {
	if !p.Admin {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListEmployees(ctx)
}

func (s *Service) CreateEmployee(ctx context.Context, p auth.Principal, req model.CreateEmployeeRequest) (model.Employee, error) {
	if !p.Admin {
		return model.Employee{}, errs.ErrForbidden
	}
	e := model.Employee{
		ID:         uuid.NewString(),
		Email:      req.Email,
		FullName:   req.FullName,
		Department: req.Department,
		Phone:      req.Phone,
		IsAdmin:    req.IsAdmin,
	}
	return s.repo.CreateEmployee(ctx, e)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

func (s *Service) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.repo.ListVehicles(ctx)
}

func (s *Service) GetVehicle(ctx context.Context, id string) (model.Vehicle, error) {
	return s.repo.GetVehicle(ctx, id)
}

func (s *Service) CreateVehicle(ctx context.Context, p auth.Principal, req model.CreateVehicleRequest) (model.Vehicle, error) {
	if !p.Admin {
		return model.Vehicle{}, errs.ErrForbidden
	}

	status := model.VehicleAvailable
	if req.Status != "" {
		st, ok := model.ParseVehicleStatus(req.Status)
		if !ok {
			return model.Vehicle{}, errs.ErrBadStatus
		}
		status = st
	}
	year := req.Year
	if year == 0 {
		year = model.DeduceYearFromPlate(req.LicensePlate, time.Now())
	}

	v := model.Vehicle{
		ID:           uuid.NewString(),
		LicensePlate: req.LicensePlate,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         year,
		Color:        req.Color,
		VehicleType:  req.VehicleType,
		Status:       status,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		Notes:        req.Notes,
	}
	return s.repo.CreateVehicle(ctx, v)
}

func (s *Service) UpdateVehicle(ctx context.Context, p auth.Principal, id string, req model.UpdateVehicleRequest) (model.Vehicle, error) {
	if !p.Admin {
		return model.Vehicle{}, errs.ErrForbidden
	}
	if req.Status != nil {
		st, ok := model.ParseVehicleStatus(*req.Status)
		if !ok {
			return model.Vehicle{}, errs.ErrBadStatus
		}
		canonical := string(st)
		req.Status = &canonical
	}
	return s.repo.UpdateVehicle(ctx, id, req)
}

func (s *Service) DeleteVehicle(ctx context.Context, p auth.Principal, id string) error {
	if !p.Admin {
		return errs.ErrForbidden
	}
	return s.repo.DeleteVehicle(ctx, id)
}

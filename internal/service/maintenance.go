package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

func (s *Service) ListMaintenance(ctx context.Context, p auth.Principal) ([]model.Maintenance, error) {
	if !p.Admin {
		return nil, errs.ErrForbidden
	}
	return s.repo.ListMaintenance(ctx)
}

// OpenMaintenance is the "enters the shop" action: inserts the record and
// forces the vehicle to maintenance status as one transaction.
func (s *Service) OpenMaintenance(ctx context.Context, p auth.Principal, req model.OpenMaintenanceRequest) (model.Maintenance, error) {
	if !p.Admin {
		return model.Maintenance{}, errs.ErrForbidden
	}

	start := time.Now().UTC()
	if req.StartDate != "" {
		t, ok := parseDate(req.StartDate)
		if !ok {
			return model.Maintenance{}, errs.ErrInvalidDate
		}
		start = t
	}
	mType := req.Type
	if mType == "" {
		mType = "workshop"
	}
	status := model.MaintenanceInProgress
	if start.After(time.Now().UTC()) {
		status = model.MaintenanceScheduled
	}

	m := model.Maintenance{
		ID:           uuid.NewString(),
		VehicleID:    req.VehicleID,
		Type:         mType,
		Description:  req.Description,
		Notes:        req.Notes,
		WorkshopName: req.WorkshopName,
		Status:       status,
		StartDate:    start,
	}
	created, err := s.repo.OpenMaintenance(ctx, m)
	if err != nil {
		return model.Maintenance{}, err
	}
	s.publish("maintenance.opened", created)
	return created, nil
}

// CloseMaintenance is the "leaves the shop" action: completes the record and
// restores the vehicle to available.
func (s *Service) CloseMaintenance(ctx context.Context, p auth.Principal, id string, req model.CloseMaintenanceRequest) (model.Maintenance, error) {
	if !p.Admin {
		return model.Maintenance{}, errs.ErrForbidden
	}

	end := time.Now().UTC()
	if req.EndDate != "" {
		t, ok := parseDate(req.EndDate)
		if !ok {
			return model.Maintenance{}, errs.ErrInvalidDate
		}
		end = t
	}
	closed, err := s.repo.CloseMaintenance(ctx, id, end, req.Cost, req.Notes)
	if err != nil {
		return model.Maintenance{}, err
	}
	s.publish("maintenance.closed", closed)
	return closed, nil
}

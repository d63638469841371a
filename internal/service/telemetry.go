package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

// PositionFeed is the external live-position collaborator.
type PositionFeed interface {
	LivePositions(ctx context.Context) ([]model.VehiclePosition, error)
}

// telemetry state lives on the Service so concurrent refresh requests from
// several admin dashboards collapse into one upstream poll.
type telemetryState struct {
	feed  PositionFeed
	group singleflight.Group
}

func (s *Service) SetPositionFeed(feed PositionFeed) {
	s.telemetry.feed = feed
}

func (s *Service) LatestPositions(ctx context.Context, p auth.Principal) ([]model.VehiclePosition, error) {
	if !p.Admin {
		return nil, errs.ErrForbidden
	}
	return s.repo.LatestPositions(ctx, 100)
}

func (s *Service) PositionHistory(ctx context.Context, p auth.Principal, registration string, from, to time.Time) ([]model.VehiclePosition, error) {
	if !p.Admin {
		return nil, errs.ErrForbidden
	}
	return s.repo.PositionHistory(ctx, registration, from, to)
}

// RefreshPositions polls the external feed and persists the snapshot,
// returning how many new rows were stored.
func (s *Service) RefreshPositions(ctx context.Context, p auth.Principal) (int, error) {
	if !p.Admin {
		return 0, errs.ErrForbidden
	}
	if s.telemetry.feed == nil {
		return 0, errs.ErrFeedNotConfigured
	}

	v, err, _ := s.telemetry.group.Do("refresh", func() (any, error) {
		positions, err := s.telemetry.feed.LivePositions(ctx)
		if err != nil {
			return 0, err
		}
		return s.repo.UpsertPositions(ctx, positions)
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

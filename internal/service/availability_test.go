package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/internal/repository"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "2025-01-10T09:00:00Z", "2025-01-10T17:00:00Z", "2025-01-10T09:00:00Z", "2025-01-10T17:00:00Z", true},
		{"contained", "2025-01-10T00:00:00Z", "2025-01-10T10:00:00Z", "2025-01-10T02:00:00Z", "2025-01-10T04:00:00Z", true},
		{"partial", "2025-01-10T09:00:00Z", "2025-01-10T12:00:00Z", "2025-01-10T11:00:00Z", "2025-01-10T14:00:00Z", true},
		{"adjacent is not overlap", "2025-01-10T00:00:00Z", "2025-01-10T10:00:00Z", "2025-01-10T10:00:00Z", "2025-01-10T20:00:00Z", false},
		{"disjoint", "2025-01-10T00:00:00Z", "2025-01-10T01:00:00Z", "2025-01-10T02:00:00Z", "2025-01-10T03:00:00Z", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Overlaps(ts(tt.aStart), ts(tt.aEnd), ts(tt.bStart), ts(tt.bEnd))
			require.Equal(t, tt.want, got)
			// symmetry
			require.Equal(t, got, Overlaps(ts(tt.bStart), ts(tt.bEnd), ts(tt.aStart), ts(tt.aEnd)))
		})
	}
}

// fakeRepo stubs only the calls a given test needs; anything else panics via
// the embedded nil interface.
type fakeRepo struct {
	repository.Repository
	getVehicle             func(ctx context.Context, id string) (model.Vehicle, error)
	hasBookingConflict     func(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) (bool, error)
	hasMaintenanceConflict func(ctx context.Context, vehicleID string, start, end time.Time) (bool, error)
}

func (f *fakeRepo) GetVehicle(ctx context.Context, id string) (model.Vehicle, error) {
	return f.getVehicle(ctx, id)
}

func (f *fakeRepo) HasBookingConflict(ctx context.Context, vehicleID string, start, end time.Time, excludeID string) (bool, error) {
	return f.hasBookingConflict(ctx, vehicleID, start, end, excludeID)
}

func (f *fakeRepo) HasMaintenanceConflict(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	return f.hasMaintenanceConflict(ctx, vehicleID, start, end)
}

func newTestService(repo repository.Repository) *Service {
	return NewService(repo, nil, zap.NewNop())
}

func availableVehicle(status model.VehicleStatus) func(ctx context.Context, id string) (model.Vehicle, error) {
	return func(context.Context, string) (model.Vehicle, error) {
		return model.Vehicle{ID: "v1", Status: status}, nil
	}
}

func noConflicts(f *fakeRepo) {
	f.hasBookingConflict = func(context.Context, string, time.Time, time.Time, string) (bool, error) {
		return false, nil
	}
	f.hasMaintenanceConflict = func(context.Context, string, time.Time, time.Time) (bool, error) {
		return false, nil
	}
}

func reasonOf(t *testing.T, res model.AvailabilityResult) model.Reason {
	t.Helper()
	require.False(t, res.Available)
	require.NotNil(t, res.Reason)
	return *res.Reason
}

func TestCheckAvailability_Validation(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeRepo{})

	tests := []struct {
		name string
		req  model.AvailabilityRequest
		want model.Reason
	}{
		{
			name: "missing params",
			req:  model.AvailabilityRequest{VehicleID: "", StartDate: "", EndDate: ""},
			want: model.ReasonInvalidParams,
		},
		{
			name: "garbage dates",
			req:  model.AvailabilityRequest{VehicleID: "v1", StartDate: "not-a-date", EndDate: "2025-01-10T17:00:00Z"},
			want: model.ReasonInvalidDate,
		},
		{
			name: "end before start",
			req:  model.AvailabilityRequest{VehicleID: "v1", StartDate: "2025-01-10T17:00:00Z", EndDate: "2025-01-10T09:00:00Z"},
			want: model.ReasonInvalidRange,
		},
		{
			name: "zero duration",
			req:  model.AvailabilityRequest{VehicleID: "v1", StartDate: "2025-01-10T09:00:00Z", EndDate: "2025-01-10T09:00:00Z"},
			want: model.ReasonInvalidRange,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := svc.CheckAvailability(context.Background(), tt.req, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, reasonOf(t, res))
		})
	}
}

func validRequest() model.AvailabilityRequest {
	return model.AvailabilityRequest{
		VehicleID: "v1",
		StartDate: "2025-01-10T09:00:00Z",
		EndDate:   "2025-01-10T17:00:00Z",
	}
}

func TestCheckAvailability_VehicleNotFound(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		getVehicle: func(context.Context, string) (model.Vehicle, error) {
			return model.Vehicle{}, errs.ErrNotFound
		},
	}
	res, err := newTestService(repo).CheckAvailability(context.Background(), validRequest(), "")
	require.NoError(t, err)
	require.Equal(t, model.ReasonNotFound, reasonOf(t, res))
}

func TestCheckAvailability_StatusGateIsAuthoritative(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status model.VehicleStatus
		want   model.Reason
	}{
		{model.VehicleMaintenance, model.ReasonMaintenance},
		{model.VehicleInUse, model.ReasonVehicleStatus},
		{model.VehicleUnavailable, model.ReasonVehicleStatus},
		{model.VehicleStatus("weird"), model.ReasonVehicleStatus},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			// calendar is empty, yet the gate must deny before any scan:
			// conflict lookups are not even stubbed
			repo := &fakeRepo{getVehicle: availableVehicle(tt.status)}
			res, err := newTestService(repo).CheckAvailability(context.Background(), validRequest(), "")
			require.NoError(t, err)
			require.Equal(t, tt.want, reasonOf(t, res))
		})
	}
}

func TestCheckAvailability_BookingConflictBeforeMaintenance(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{getVehicle: availableVehicle(model.VehicleAvailable)}
	repo.hasBookingConflict = func(context.Context, string, time.Time, time.Time, string) (bool, error) {
		return true, nil
	}
	repo.hasMaintenanceConflict = func(context.Context, string, time.Time, time.Time) (bool, error) {
		t.Fatal("maintenance check must not run after a booking conflict")
		return false, nil
	}
	res, err := newTestService(repo).CheckAvailability(context.Background(), validRequest(), "")
	require.NoError(t, err)
	require.Equal(t, model.ReasonBookingConflict, reasonOf(t, res))
}

func TestCheckAvailability_MaintenanceConflict(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{getVehicle: availableVehicle(model.VehicleAvailable)}
	noConflicts(repo)
	repo.hasMaintenanceConflict = func(context.Context, string, time.Time, time.Time) (bool, error) {
		return true, nil
	}
	res, err := newTestService(repo).CheckAvailability(context.Background(), validRequest(), "")
	require.NoError(t, err)
	require.Equal(t, model.ReasonMaintenanceActive, reasonOf(t, res))
}

func TestCheckAvailability_Available(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{getVehicle: availableVehicle(model.VehicleAvailable)}
	noConflicts(repo)
	svc := newTestService(repo)

	res, err := svc.CheckAvailability(context.Background(), validRequest(), "")
	require.NoError(t, err)
	require.True(t, res.Available)
	require.Nil(t, res.Reason)

	// idempotent: a second identical call yields the identical result
	res2, err := svc.CheckAvailability(context.Background(), validRequest(), "")
	require.NoError(t, err)
	require.Equal(t, res, res2)
}

func TestCheckAvailability_ExclusionOnEdit(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{getVehicle: availableVehicle(model.VehicleAvailable)}
	noConflicts(repo)
	var gotExclude string
	repo.hasBookingConflict = func(_ context.Context, _ string, _, _ time.Time, excludeID string) (bool, error) {
		gotExclude = excludeID
		return false, nil
	}
	_, err := newTestService(repo).CheckAvailability(context.Background(), validRequest(), "b42")
	require.NoError(t, err)
	require.Equal(t, "b42", gotExclude)
}

func TestCheckAvailability_InfrastructureErrorIsNotADenial(t *testing.T) {
	t.Parallel()
	repo := &fakeRepo{
		getVehicle: func(context.Context, string) (model.Vehicle, error) {
			return model.Vehicle{}, errors.New("connection refused")
		},
	}
	res, err := newTestService(repo).CheckAvailability(context.Background(), validRequest(), "")
	require.Error(t, err)
	require.False(t, res.Available)
	require.Nil(t, res.Reason)
}

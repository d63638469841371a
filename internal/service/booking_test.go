package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

type bookingRepo struct {
	fakeRepo
	createBooking    func(ctx context.Context, b model.Booking) (model.Booking, error)
	getBooking       func(ctx context.Context, id string) (model.Booking, error)
	setBookingStatus func(ctx context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (model.Booking, error)
	listBookings     func(ctx context.Context, f model.BookingFilter) ([]model.Booking, error)
}

func (r *bookingRepo) CreateBooking(ctx context.Context, b model.Booking) (model.Booking, error) {
	return r.createBooking(ctx, b)
}

func (r *bookingRepo) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	return r.getBooking(ctx, id)
}

func (r *bookingRepo) SetBookingStatus(ctx context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (model.Booking, error) {
	return r.setBookingStatus(ctx, id, from, to)
}

func (r *bookingRepo) ListBookings(ctx context.Context, f model.BookingFilter) ([]model.Booking, error) {
	return r.listBookings(ctx, f)
}

var (
	employee = auth.Principal{ID: "e1", Name: "Ana", Admin: false}
	admin    = auth.Principal{ID: "a1", Name: "Root", Admin: true}
)

func createReq() model.CreateBookingRequest {
	return model.CreateBookingRequest{
		VehicleID: "v1",
		StartDate: "2025-01-10T09:00:00Z",
		EndDate:   "2025-01-10T17:00:00Z",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	t.Parallel()
	var inserted model.Booking
	repo := &bookingRepo{
		createBooking: func(_ context.Context, b model.Booking) (model.Booking, error) {
			inserted = b
			return b, nil
		},
	}
	created, res, err := newTestService(repo).CreateBooking(context.Background(), employee, createReq())
	require.NoError(t, err)
	require.True(t, res.Available)
	require.Equal(t, inserted, created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "e1", created.EmployeeID)
	require.Equal(t, model.BookingActive, created.Status)
	require.Equal(t, ts("2025-01-10T09:00:00Z"), created.StartDate)
	require.Equal(t, ts("2025-01-10T17:00:00Z"), created.EndDate)
}

func TestCreateBooking_EmployeeCannotBookForOthers(t *testing.T) {
	t.Parallel()
	repo := &bookingRepo{
		createBooking: func(_ context.Context, b model.Booking) (model.Booking, error) { return b, nil },
	}
	req := createReq()
	req.EmployeeID = "someone-else"
	created, _, err := newTestService(repo).CreateBooking(context.Background(), employee, req)
	require.NoError(t, err)
	require.Equal(t, "e1", created.EmployeeID)
}

func TestCreateBooking_AdminBooksOnBehalf(t *testing.T) {
	t.Parallel()
	repo := &bookingRepo{
		createBooking: func(_ context.Context, b model.Booking) (model.Booking, error) { return b, nil },
	}
	req := createReq()
	req.EmployeeID = "e7"
	created, _, err := newTestService(repo).CreateBooking(context.Background(), admin, req)
	require.NoError(t, err)
	require.Equal(t, "e7", created.EmployeeID)
}

func TestCreateBooking_DenialTaxonomy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		repoErr error
		want    model.Reason
	}{
		{"vehicle missing", errs.ErrNotFound, model.ReasonNotFound},
		{"in workshop", errs.ErrVehicleMaintenance, model.ReasonMaintenance},
		{"not bookable", errs.ErrVehicleNotBookable, model.ReasonVehicleStatus},
		{"booking overlap", errs.ErrBookingConflict, model.ReasonBookingConflict},
		{"maintenance overlap", errs.ErrMaintenanceConflict, model.ReasonMaintenanceActive},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &bookingRepo{
				createBooking: func(context.Context, model.Booking) (model.Booking, error) {
					return model.Booking{}, tt.repoErr
				},
			}
			booking, res, err := newTestService(repo).CreateBooking(context.Background(), employee, createReq())
			require.NoError(t, err)
			require.Empty(t, booking.ID)
			require.Equal(t, tt.want, reasonOf(t, res))
		})
	}
}

func TestCreateBooking_ValidationShortCircuitsRepo(t *testing.T) {
	t.Parallel()
	repo := &bookingRepo{
		createBooking: func(context.Context, model.Booking) (model.Booking, error) {
			t.Fatal("repo must not be called for an invalid window")
			return model.Booking{}, nil
		},
	}
	req := createReq()
	req.EndDate = req.StartDate
	_, res, err := newTestService(repo).CreateBooking(context.Background(), employee, req)
	require.NoError(t, err)
	require.Equal(t, model.ReasonInvalidRange, reasonOf(t, res))
}

func TestCreateBooking_InfrastructureError(t *testing.T) {
	t.Parallel()
	repo := &bookingRepo{
		createBooking: func(context.Context, model.Booking) (model.Booking, error) {
			return model.Booking{}, errors.New("connection reset")
		},
	}
	_, _, err := newTestService(repo).CreateBooking(context.Background(), employee, createReq())
	require.Error(t, err)
}

func TestListBookings_EmployeeSeesOnlyOwn(t *testing.T) {
	t.Parallel()
	var gotFilter model.BookingFilter
	repo := &bookingRepo{
		listBookings: func(_ context.Context, f model.BookingFilter) ([]model.Booking, error) {
			gotFilter = f
			return nil, nil
		},
	}
	// the employee's filters are ignored wholesale
	_, err := newTestService(repo).ListBookings(context.Background(), employee, model.BookingFilter{
		EmployeeID: "someone-else", VehicleID: "v9",
	})
	require.NoError(t, err)
	require.Equal(t, model.BookingFilter{EmployeeID: "e1"}, gotFilter)
}

func TestCancelBooking_OwnerOnly(t *testing.T) {
	t.Parallel()
	repo := &bookingRepo{
		getBooking: func(context.Context, string) (model.Booking, error) {
			return model.Booking{ID: "b1", EmployeeID: "someone-else", Status: model.BookingActive}, nil
		},
	}
	_, err := newTestService(repo).CancelBooking(context.Background(), employee, "b1")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCompleteBooking_Transition(t *testing.T) {
	t.Parallel()
	repo := &bookingRepo{
		getBooking: func(context.Context, string) (model.Booking, error) {
			return model.Booking{ID: "b1", EmployeeID: "e1", Status: model.BookingActive}, nil
		},
		setBookingStatus: func(_ context.Context, id string, from []model.BookingStatus, to model.BookingStatus) (model.Booking, error) {
			require.Equal(t, []model.BookingStatus{model.BookingActive}, from)
			require.Equal(t, model.BookingCompleted, to)
			return model.Booking{ID: id, EmployeeID: "e1", Status: to}, nil
		},
	}
	b, err := newTestService(repo).CompleteBooking(context.Background(), employee, "b1")
	require.NoError(t, err)
	require.Equal(t, model.BookingCompleted, b.Status)
}

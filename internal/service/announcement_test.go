package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
)

type announcementRepo struct {
	fakeRepo
	createAnnouncement func(ctx context.Context, a model.Announcement) (model.Announcement, error)
	updateAnnouncement func(ctx context.Context, id string, req model.UpdateAnnouncementRequest) (model.Announcement, error)
	deleteAnnouncement func(ctx context.Context, id string) error
	overview           func(ctx context.Context, now time.Time) (model.Overview, error)
}

func (r *announcementRepo) CreateAnnouncement(ctx context.Context, a model.Announcement) (model.Announcement, error) {
	return r.createAnnouncement(ctx, a)
}

func (r *announcementRepo) UpdateAnnouncement(ctx context.Context, id string, req model.UpdateAnnouncementRequest) (model.Announcement, error) {
	return r.updateAnnouncement(ctx, id, req)
}

func (r *announcementRepo) DeleteAnnouncement(ctx context.Context, id string) error {
	return r.deleteAnnouncement(ctx, id)
}

func (r *announcementRepo) Overview(ctx context.Context, now time.Time) (model.Overview, error) {
	return r.overview(ctx, now)
}

func TestCreateAnnouncement_AuthorIsCaller(t *testing.T) {
	t.Parallel()
	var inserted model.Announcement
	repo := &announcementRepo{
		createAnnouncement: func(_ context.Context, a model.Announcement) (model.Announcement, error) {
			inserted = a
			return a, nil
		},
	}
	a, err := newTestService(repo).CreateAnnouncement(context.Background(), employee, model.CreateAnnouncementRequest{
		Title: "Parking closed", Message: "Use the north lot this week",
	})
	require.NoError(t, err)
	require.Equal(t, inserted, a)
	require.NotEmpty(t, a.ID)
	require.Equal(t, model.AnnouncementOpen, a.Status)
	require.NotNil(t, a.CreatedBy)
	require.Equal(t, "e1", *a.CreatedBy)
}

func TestUpdateAnnouncement_AdminOnly(t *testing.T) {
	t.Parallel()
	repo := &announcementRepo{
		updateAnnouncement: func(context.Context, string, model.UpdateAnnouncementRequest) (model.Announcement, error) {
			t.Fatal("repo must not be called for a non-admin")
			return model.Announcement{}, nil
		},
	}
	_, err := newTestService(repo).UpdateAnnouncement(context.Background(), employee, "a1", model.UpdateAnnouncementRequest{})
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestUpdateAnnouncement_CanonicalizesStatus(t *testing.T) {
	t.Parallel()
	var got model.UpdateAnnouncementRequest
	repo := &announcementRepo{
		updateAnnouncement: func(_ context.Context, _ string, req model.UpdateAnnouncementRequest) (model.Announcement, error) {
			got = req
			return model.Announcement{}, nil
		},
	}
	status := "Cerrado"
	_, err := newTestService(repo).UpdateAnnouncement(context.Background(), admin, "a1", model.UpdateAnnouncementRequest{
		Status: &status,
	})
	require.NoError(t, err)
	require.NotNil(t, got.Status)
	require.Equal(t, "closed", *got.Status)
}

func TestUpdateAnnouncement_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()
	repo := &announcementRepo{
		updateAnnouncement: func(context.Context, string, model.UpdateAnnouncementRequest) (model.Announcement, error) {
			t.Fatal("repo must not be called for an unknown status")
			return model.Announcement{}, nil
		},
	}
	status := "archived"
	_, err := newTestService(repo).UpdateAnnouncement(context.Background(), admin, "a1", model.UpdateAnnouncementRequest{
		Status: &status,
	})
	require.ErrorIs(t, err, errs.ErrBadStatus)
}

func TestDeleteAnnouncement_AdminOnly(t *testing.T) {
	t.Parallel()
	repo := &announcementRepo{
		deleteAnnouncement: func(context.Context, string) error {
			t.Fatal("repo must not be called for a non-admin")
			return nil
		},
	}
	err := newTestService(repo).DeleteAnnouncement(context.Background(), employee, "a1")
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAdminOverview_AdminOnly(t *testing.T) {
	t.Parallel()
	repo := &announcementRepo{
		overview: func(context.Context, time.Time) (model.Overview, error) {
			t.Fatal("repo must not be called for a non-admin")
			return model.Overview{}, nil
		},
	}
	_, err := newTestService(repo).AdminOverview(context.Background(), employee)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAdminOverview_PassesCurrentTime(t *testing.T) {
	t.Parallel()
	repo := &announcementRepo{
		overview: func(_ context.Context, now time.Time) (model.Overview, error) {
			require.WithinDuration(t, time.Now().UTC(), now, time.Minute)
			return model.Overview{Metrics: model.OverviewMetrics{ActiveCount: 3, AvailableVehicles: 5}}, nil
		},
	}
	ov, err := newTestService(repo).AdminOverview(context.Background(), admin)
	require.NoError(t, err)
	require.Equal(t, 3, ov.Metrics.ActiveCount)
	require.Equal(t, 5, ov.Metrics.AvailableVehicles)
}

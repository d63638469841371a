package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flotilla-app/fleet-service/internal/errs"
	"github.com/flotilla-app/fleet-service/internal/model"
	"github.com/flotilla-app/fleet-service/pkg/auth"
)

// Announcements are the company noticeboard: every employee reads and posts,
// only admins edit or close.
func (s *Service) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return s.repo.ListAnnouncements(ctx)
}

func (s *Service) CreateAnnouncement(ctx context.Context, p auth.Principal, req model.CreateAnnouncementRequest) (model.Announcement, error) {
	createdBy := p.ID
	a := model.Announcement{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Message:   req.Message,
		Status:    model.AnnouncementOpen,
		CreatedBy: &createdBy,
	}
	return s.repo.CreateAnnouncement(ctx, a)
}

func (s *Service) UpdateAnnouncement(ctx context.Context, p auth.Principal, id string, req model.UpdateAnnouncementRequest) (model.Announcement, error) {
	if !p.Admin {
		return model.Announcement{}, errs.ErrForbidden
	}
	if req.Status != nil {
		st, ok := model.ParseAnnouncementStatus(*req.Status)
		if !ok {
			return model.Announcement{}, errs.ErrBadStatus
		}
		canonical := string(st)
		req.Status = &canonical
	}
	return s.repo.UpdateAnnouncement(ctx, id, req)
}

func (s *Service) DeleteAnnouncement(ctx context.Context, p auth.Principal, id string) error {
	if !p.Admin {
		return errs.ErrForbidden
	}
	return s.repo.DeleteAnnouncement(ctx, id)
}

func (s *Service) AdminOverview(ctx context.Context, p auth.Principal) (model.Overview, error) {
	if !p.Admin {
		return model.Overview{}, errs.ErrForbidden
	}
	return s.repo.Overview(ctx, time.Now().UTC())
}

package service

import (
	"go.uber.org/zap"

	"github.com/flotilla-app/fleet-service/internal/repository"
)

// Publisher pushes domain events to the message bus. Publishing is best
// effort: a broker outage never fails the originating request.
type Publisher interface {
	Publish(topic string, v any) error
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	events    Publisher
	telemetry telemetryState
}

func NewService(repo repository.Repository, events Publisher, log *zap.Logger) *Service {
	return &Service{
		log:    log,
		repo:   repo,
		events: events,
	}
}

const eventsTopic = "fleet-events"

func (s *Service) publish(event string, v any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(eventsTopic, map[string]any{"event": event, "payload": v}); err != nil {
		s.log.Warn("publish event", zap.String("event", event), zap.Error(err))
	}
}

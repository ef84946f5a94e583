package service

import (
	"context"
	"time"

	"github.com/vimco/vimco-api/internal/modules/model"
	"github.com/vimco/vimco-api/internal/modules/repo"
	"go.uber.org/zap"
)

const (
	EventLeadCreated = "lead.created"

	notifyTimeout = 5 * time.Second
)

// EventPublisher is satisfied by mq.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v interface{}) error
}

// Notifier is satisfied by httpclient.WebhookClient.
type Notifier interface {
	PostEvent(ctx context.Context, event string, data interface{}) error
}

type contactService struct {
	CrudService[model.ContactSubmission]
	pub  EventPublisher
	hook Notifier
	log  *zap.Logger
}

// NewContactService announces every new lead through pub and hook; either may be nil.
func NewContactService(r repo.CrudRepo[model.ContactSubmission], pub EventPublisher, hook Notifier, log *zap.Logger) CrudService[model.ContactSubmission] {
	return &contactService{
		CrudService: NewCrudService(r, repo.ByNewest),
		pub:         pub,
		hook:        hook,
		log:         log,
	}
}

func (s *contactService) Create(ctx context.Context, m *model.ContactSubmission) error {
	if err := s.CrudService.Create(ctx, m); err != nil {
		return err
	}
	s.announce(ctx, m)
	return nil
}

// announce never fails the request; the lead is already stored.
func (s *contactService) announce(ctx context.Context, m *model.ContactSubmission) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	defer cancel()

	if s.pub != nil {
		if err := s.pub.PublishJSON(ctx, EventLeadCreated, m); err != nil {
			s.log.Warn("publish lead event", zap.String("lead_id", m.ID.String()), zap.Error(err))
		}
	}
	if s.hook != nil {
		if err := s.hook.PostEvent(ctx, EventLeadCreated, m); err != nil {
			s.log.Warn("post lead webhook", zap.String("lead_id", m.ID.String()), zap.Error(err))
		}
	}
}

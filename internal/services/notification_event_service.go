package services

import (
	"context"
	"log/slog"

	"github.com/edublog/blog-service/internal/events"
	"github.com/edublog/blog-service/internal/models"
)

type notificationEventService struct {
	publisher events.EventPublisher
	topic     string
	logger    *slog.Logger
}

func NewNotificationEventService(publisher events.EventPublisher, topic string, logger *slog.Logger) NotificationEventService {
	return &notificationEventService{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}
}

type userEventPayload struct {
	UserID   uint            `json:"user_id"`
	Nome     string          `json:"nome"`
	UserType models.UserType `json:"user_type"`
}

type postEventPayload struct {
	PostID  uint   `json:"post_id"`
	Title   string `json:"title,omitempty"`
	ActorID uint   `json:"actor_id"`
}

func (s *notificationEventService) UserRegistered(ctx context.Context, user *models.User) {
	s.publish(ctx, events.NewEvent(events.EventUserRegistered, userEventPayload{
		UserID:   user.ID,
		Nome:     user.Nome,
		UserType: user.UserType,
	}))
}

func (s *notificationEventService) PostCreated(ctx context.Context, post *models.Post) {
	s.publish(ctx, events.NewEvent(events.EventPostCreated, postEventPayload{
		PostID:  post.ID,
		Title:   post.Title,
		ActorID: post.CreatedByID,
	}))
}

func (s *notificationEventService) PostUpdated(ctx context.Context, post *models.Post) {
	actorID := post.CreatedByID
	if post.EditedByID != nil {
		actorID = *post.EditedByID
	}
	s.publish(ctx, events.NewEvent(events.EventPostUpdated, postEventPayload{
		PostID:  post.ID,
		Title:   post.Title,
		ActorID: actorID,
	}))
}

func (s *notificationEventService) PostDeleted(ctx context.Context, postID uint, actorID uint) {
	s.publish(ctx, events.NewEvent(events.EventPostDeleted, postEventPayload{
		PostID:  postID,
		ActorID: actorID,
	}))
}

// publish is best-effort: a broker outage must not fail the request that
// triggered the event.
func (s *notificationEventService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, s.topic, event); err != nil {
		s.logger.Error("failed to publish event", "type", event.Type, "error", err)
	}
}

func (s *notificationEventService) Close() error {
	return s.publisher.Close()
}

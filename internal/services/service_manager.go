package services

import (
	"context"
	"log/slog"

	"github.com/edublog/blog-service/internal/auth"
	"github.com/edublog/blog-service/internal/events"
	"github.com/edublog/blog-service/internal/repositories"
	"github.com/edublog/blog-service/internal/validator"
)

// ServiceManager hands out the domain services.
type ServiceManager interface {
	Auth() AuthService
	User() UserService
	Post() PostService
	Notification() NotificationEventService
	Report() ReportService
	Shutdown(ctx context.Context) error
}

type DefaultServiceManager struct {
	auth         AuthService
	user         UserService
	post         PostService
	notification NotificationEventService
	report       ReportService
}

// NewDefaultServiceManager wires every service against the shared
// repository, validator and event publisher.
func NewDefaultServiceManager(
	repo repositories.Repository,
	tokens *auth.TokenService,
	v *validator.Validator,
	publisher events.EventPublisher,
	eventsTopic string,
	logger *slog.Logger,
) *DefaultServiceManager {
	notification := NewNotificationEventService(publisher, eventsTopic, logger)

	return &DefaultServiceManager{
		auth:         NewAuthService(repo, tokens, logger),
		user:         NewUserService(repo, v, notification, logger),
		post:         NewPostService(repo, v, notification, logger),
		notification: notification,
		report:       NewReportService(repo, logger),
	}
}

func (m *DefaultServiceManager) Auth() AuthService                      { return m.auth }
func (m *DefaultServiceManager) User() UserService                      { return m.user }
func (m *DefaultServiceManager) Post() PostService                      { return m.post }
func (m *DefaultServiceManager) Notification() NotificationEventService { return m.notification }
func (m *DefaultServiceManager) Report() ReportService                  { return m.report }

// Shutdown releases service-held resources, currently the event publisher.
func (m *DefaultServiceManager) Shutdown(_ context.Context) error {
	return m.notification.Close()
}

package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
)

// NotificationService handles recipient-scoped notification access
type NotificationService struct {
	notifications NotificationStore
	logger        zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifications NotificationStore, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        logger,
	}
}

// List returns the caller's notifications, optionally unread only
func (s *NotificationService) List(ctx context.Context, callerProfileID string, unreadOnly bool) ([]*models.Notification, error) {
	notifications, err := s.notifications.ListByRecipient(ctx, callerProfileID)
	if err != nil {
		return nil, err
	}
	if !unreadOnly {
		return notifications, nil
	}

	unread := []*models.Notification{}
	for _, n := range notifications {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

// Create writes a manually authored notification (admin and faculty only,
// enforced at the route)
func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// MarkRead flips the read flag on the caller's notifications. Ids
// belonging to other recipients are ignored by the recipient-scoped
// update rather than rejected.
func (s *NotificationService) MarkRead(ctx context.Context, callerProfileID string, req *dto.MarkNotificationsRequest) (int64, error) {
	return s.notifications.MarkRead(ctx, callerProfileID, req.NotificationIDs, req.MarkAsRead)
}

package dto

import "github.com/placemate/placemate/internal/app/models"

// CreateNotificationRequest represents a manually authored notification
// (admin and faculty only)
type CreateNotificationRequest struct {
	UserID  string                  `json:"userId" binding:"required,uuid"`
	Title   string                  `json:"title" binding:"required"`
	Message string                  `json:"message" binding:"required"`
	Type    models.NotificationType `json:"type,omitempty"`
}

// MarkNotificationsRequest flips the read flag on a batch of the
// caller's notifications
type MarkNotificationsRequest struct {
	NotificationIDs []string `json:"notificationIds" binding:"required,min=1"`
	MarkAsRead      bool     `json:"markAsRead"`
}

// NotificationListResponse wraps the recipient's notifications
type NotificationListResponse struct {
	Notifications []*models.Notification `json:"notifications"`
}

package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
)

func newTestNotificationService() (*NotificationService, *fakeNotificationStore) {
	store := &fakeNotificationStore{}
	return NewNotificationService(store, zerolog.Nop()), store
}

func TestNotificationListUnreadOnly(t *testing.T) {
	svc, store := newTestNotificationService()
	store.created = []*models.Notification{
		{ID: "n1", UserID: "u1", Title: "Account Approved", IsRead: true},
		{ID: "n2", UserID: "u1", Title: "New job posted"},
		{ID: "n3", UserID: "u2", Title: "Account Rejected"},
	}

	all, err := svc.List(context.Background(), "u1", false)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 notifications for u1, got %d", len(all))
	}

	unread, err := svc.List(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(unread) != 1 || unread[0].ID != "n2" {
		t.Errorf("expected only the unread notification, got %+v", unread)
	}
}

func TestNotificationMarkReadScopedToRecipient(t *testing.T) {
	svc, store := newTestNotificationService()
	store.created = []*models.Notification{
		{ID: "n1", UserID: "u1"},
		{ID: "n2", UserID: "u2"},
	}

	count, err := svc.MarkRead(context.Background(), "u1", &dto.MarkNotificationsRequest{
		NotificationIDs: []string{"n1", "n2"},
		MarkAsRead:      true,
	})
	if err != nil {
		t.Fatalf("MarkRead returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("only the caller's notifications may flip, got %d", count)
	}
	if !store.created[0].IsRead || store.created[1].IsRead {
		t.Error("read flags out of sync with the recipient scope")
	}
}

func TestNotificationCreate(t *testing.T) {
	svc, store := newTestNotificationService()

	notification, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		UserID:  "u1",
		Title:   "Placement drive",
		Message: "Acme Systems visits campus on Friday.",
		Type:    models.NotificationInfo,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if notification.UserID != "u1" || len(store.created) != 1 {
		t.Errorf("notification not stored, got %+v", notification)
	}
}

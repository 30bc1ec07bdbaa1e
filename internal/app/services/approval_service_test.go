package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// fakeNotificationStore records created notifications
type fakeNotificationStore struct {
	created    []*models.Notification
	failCreate error
}

func (f *fakeNotificationStore) Create(_ context.Context, n *models.Notification) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationStore) ListByRecipient(_ context.Context, userID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, userID string, ids []string, read bool) (int64, error) {
	var count int64
	for _, n := range f.created {
		if n.UserID != userID {
			continue
		}
		for _, id := range ids {
			if n.ID == id {
				n.IsRead = read
				count++
			}
		}
	}
	return count, nil
}

func newTestApprovalService() (*ApprovalService, *fakeProfileStore, *fakeNotificationStore) {
	profiles := newFakeProfileStore()
	notifications := &fakeNotificationStore{}
	svc := NewApprovalService(profiles, notifications, zerolog.Nop())
	return svc, profiles, notifications
}

func pendingProfile(id string, role models.Role) *models.Profile {
	return &models.Profile{
		ID:           id,
		Email:        id + "@campus.edu",
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
		ReviewStatus: models.ReviewPending,
	}
}

func TestReviewApprovesPendingCompany(t *testing.T) {
	svc, profiles, notifications := newTestApprovalService()
	profiles.profiles["c1"] = pendingProfile("c1", models.RoleCompany)

	resp, err := svc.Review(context.Background(), "admin-1", "c1", models.RoleCompany, "approve", "")
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if resp.Message != "Company approved successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}

	profile := profiles.profiles["c1"]
	if profile.ReviewStatus != models.ReviewApproved {
		t.Errorf("expected approved status, got %s", profile.ReviewStatus)
	}
	if profile.ApprovedBy == nil || *profile.ApprovedBy != "admin-1" {
		t.Error("reviewer id not recorded")
	}

	if len(notifications.created) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications.created))
	}
	n := notifications.created[0]
	if n.UserID != "c1" || n.Title != "Account Approved" {
		t.Errorf("unexpected notification %+v", n)
	}
	if n.Message != "Your company account has been approved. You can now post jobs and manage applications." {
		t.Errorf("unexpected notification message %q", n.Message)
	}
	if n.Type != models.NotificationSuccess {
		t.Errorf("expected success type, got %s", n.Type)
	}
}

func TestReviewRejectUsesNotes(t *testing.T) {
	svc, profiles, notifications := newTestApprovalService()
	profiles.profiles["s1"] = pendingProfile("s1", models.RoleStudent)

	resp, err := svc.Review(context.Background(), "fac-1", "s1", models.RoleStudent, "reject", "Roll number could not be verified.")
	if err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if resp.Message != "Student rejectd successfully" {
		t.Errorf("unexpected message %q", resp.Message)
	}
	if profiles.profiles["s1"].ReviewStatus != models.ReviewRejected {
		t.Error("profile not marked rejected")
	}

	n := notifications.created[0]
	if n.Title != "Account Rejected" || n.Type != models.NotificationError {
		t.Errorf("unexpected notification %+v", n)
	}
	if n.Message != "Your student account has been rejected. Roll number could not be verified." {
		t.Errorf("unexpected notification message %q", n.Message)
	}
}

func TestReviewRejectDefaultNotes(t *testing.T) {
	svc, profiles, notifications := newTestApprovalService()
	profiles.profiles["f1"] = pendingProfile("f1", models.RoleFaculty)

	if _, err := svc.Review(context.Background(), "admin-1", "f1", models.RoleFaculty, "reject", ""); err != nil {
		t.Fatalf("Review returned error: %v", err)
	}
	if got := notifications.created[0].Message; got != "Your faculty account has been rejected. Please contact admin for more details." {
		t.Errorf("unexpected notification message %q", got)
	}
}

func TestReviewAlreadyReviewedConflict(t *testing.T) {
	svc, profiles, notifications := newTestApprovalService()
	profile := pendingProfile("c1", models.RoleCompany)
	profile.ReviewStatus = models.ReviewApproved
	profiles.profiles["c1"] = profile

	_, err := svc.Review(context.Background(), "admin-1", "c1", models.RoleCompany, "reject", "changed my mind")
	if !errors.Is(err, apperrors.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if profiles.profiles["c1"].ReviewStatus != models.ReviewApproved {
		t.Error("committed decision must not be overwritten")
	}
	if len(notifications.created) != 0 {
		t.Error("no notification may be written for a lost review")
	}
}

func TestReviewRoleMismatchIsNotFound(t *testing.T) {
	svc, profiles, _ := newTestApprovalService()
	profiles.profiles["s1"] = pendingProfile("s1", models.RoleStudent)

	_, err := svc.Review(context.Background(), "admin-1", "s1", models.RoleCompany, "approve", "")
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found for role mismatch, got %v", err)
	}
	if profiles.profiles["s1"].ReviewStatus != models.ReviewPending {
		t.Error("mismatched review must not change the profile")
	}
}

func TestReviewUnknownTarget(t *testing.T) {
	svc, _, _ := newTestApprovalService()

	_, err := svc.Review(context.Background(), "admin-1", "missing", models.RoleStudent, "approve", "")
	if !errors.Is(err, apperrors.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestReviewNotificationFailureDoesNotUndoDecision(t *testing.T) {
	svc, profiles, notifications := newTestApprovalService()
	profiles.profiles["c1"] = pendingProfile("c1", models.RoleCompany)
	notifications.failCreate = errors.New("insert failed")

	if _, err := svc.Review(context.Background(), "admin-1", "c1", models.RoleCompany, "approve", ""); err != nil {
		t.Fatalf("notification failure must not surface, got %v", err)
	}
	if profiles.profiles["c1"].ReviewStatus != models.ReviewApproved {
		t.Error("decision must stand even when the notification write fails")
	}
}

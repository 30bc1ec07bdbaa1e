package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/placemate/placemate/internal/app/models"
	"github.com/placemate/placemate/internal/app/models/dto"
	"github.com/placemate/placemate/internal/pkg/apperrors"
)

// approvalMessages holds the notification copy per role
var approvalMessages = map[models.Role]string{
	models.RoleStudent: "Your student account has been approved. You can now apply for jobs.",
	models.RoleFaculty: "Your faculty account has been approved. You can now access the TPO portal.",
	models.RoleCompany: "Your company account has been approved. You can now post jobs and manage applications.",
}

// ApprovalService applies approve/reject decisions to pending profiles
type ApprovalService struct {
	profileRepo   ProfileStore
	notifications NotificationStore
	logger        zerolog.Logger
}

// NewApprovalService creates a new ApprovalService
func NewApprovalService(profileRepo ProfileStore, notifications NotificationStore, logger zerolog.Logger) *ApprovalService {
	return &ApprovalService{
		profileRepo:   profileRepo,
		notifications: notifications,
		logger:        logger,
	}
}

// Review applies an approve or reject decision to a pending profile of
// the expected role. The transition is a conditional update on the
// pending state, so a decision that raced another reviewer reports a
// conflict instead of silently overwriting. The recipient notification
// is written after the transition commits and is best effort.
func (s *ApprovalService) Review(ctx context.Context, reviewerID, targetID string, targetRole models.Role, action, notes string) (*dto.ApprovalResponse, error) {
	profile, err := s.profileRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if profile.Role != targetRole {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s profile not found", targetRole))
	}

	status := models.ReviewApproved
	if action == "reject" {
		status = models.ReviewRejected
	}

	applied, err := s.profileRepo.Review(ctx, targetID, reviewerID, status, time.Now())
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, apperrors.ErrAlreadyReviewed
	}

	s.notifyReviewed(ctx, profile, action, notes)

	return &dto.ApprovalResponse{
		Message: fmt.Sprintf("%s %sd successfully", titleCaseRole(targetRole), action),
		Profile: dto.ReviewedProfile{
			ID:     profile.ID,
			Email:  profile.Email,
			Name:   profile.FullName(),
			Action: action,
		},
	}, nil
}

// notifyReviewed writes the decision notification for the target.
// Failures are logged, never surfaced; the decision already committed.
func (s *ApprovalService) notifyReviewed(ctx context.Context, profile *models.Profile, action, notes string) {
	notification := &models.Notification{
		UserID: profile.ID,
	}
	if action == "approve" {
		notification.Title = "Account Approved"
		notification.Message = approvalMessages[profile.Role]
		notification.Type = models.NotificationSuccess
	} else {
		if notes == "" {
			notes = "Please contact admin for more details."
		}
		notification.Title = "Account Rejected"
		notification.Message = fmt.Sprintf("Your %s account has been rejected. %s", profile.Role, notes)
		notification.Type = models.NotificationError
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.Warn().Err(err).Str("profileId", profile.ID).Msg("Could not write review notification")
	}
}

func titleCaseRole(role models.Role) string {
	switch role {
	case models.RoleStudent:
		return "Student"
	case models.RoleFaculty:
		return "Faculty"
	case models.RoleCompany:
		return "Company"
	}
	return string(role)
}

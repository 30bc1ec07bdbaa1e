package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/placemate/placemate/internal/app/models"
)

// NotificationRepository handles notification database operations
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{
		db: db,
	}
}

// Create inserts a notification for a recipient profile
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.Type == "" {
		notification.Type = models.NotificationInfo
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (id, user_id, title, message, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`,
		notification.ID, notification.UserID, notification.Title, notification.Message,
		notification.Type).Scan(&notification.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// ListByRecipient retrieves a profile's notifications, newest first
func (r *NotificationRepository) ListByRecipient(ctx context.Context, userID string) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n := &models.Notification{}
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

// MarkRead flips the read flag on the given notifications, scoped to
// the recipient so one profile cannot mutate another's rows
func (r *NotificationRepository) MarkRead(ctx context.Context, userID string, ids []string, read bool) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications
		SET is_read = $1
		WHERE user_id = $2 AND id = ANY($3)`,
		read, userID, ids)

	if err != nil {
		return 0, fmt.Errorf("error marking notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}

package models

import "time"

// Notification defines a message for a recipient profile, based on the
// 'notifications' table. Written as a side effect of workflow actions;
// only the recipient may flip the read flag.
type Notification struct {
	ID        string           `json:"id" db:"id"`
	UserID    string           `json:"userId" db:"user_id"` // Recipient profile id
	Title     string           `json:"title" db:"title" example:"Account Approved"`
	Message   string           `json:"message" db:"message"`
	Type      NotificationType `json:"type" db:"type" example:"success"`
	IsRead    bool             `json:"isRead" db:"is_read"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`
}

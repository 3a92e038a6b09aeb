package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/socops/soc-schedule/internal/domain/contract"
	"github.com/socops/soc-schedule/internal/domain/entity"
)

type notificationRepo struct {
	db dbConn
}

func newNotificationRepo(db dbConn) contract.NotificationRepo {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	query := `
		INSERT INTO notifications (id, recipient_id, type, title, message, related_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		notification.ID.String(),
		notification.RecipientID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.RelatedID,
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (r *notificationRepo) GetUnreadByRecipient(analystID int64) ([]*entity.Notification, error) {
	query := `
		SELECT id, recipient_id, type, title, message, related_id, is_read, created_at
		FROM notifications
		WHERE recipient_id = ? AND is_read = 0
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, analystID)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		notification := &entity.Notification{}
		var id string
		err := rows.Scan(
			&id,
			&notification.RecipientID,
			&notification.Type,
			&notification.Title,
			&notification.Message,
			&notification.RelatedID,
			&notification.IsRead,
			&notification.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		notification.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("failed to parse notification id: %w", err)
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (r *notificationRepo) MarkRead(id uuid.UUID) error {
	query := `UPDATE notifications SET is_read = 1 WHERE id = ?`

	_, err := r.db.Exec(query, id.String())
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

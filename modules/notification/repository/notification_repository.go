package repository

import (
	"context"
	"time"

	"campus-events-api/core/database"
	"campus-events-api/core/logger"
	"campus-events-api/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
}

type NotificationRepository struct {
	db database.IDatabase
}

func NewNotificationRepository(db database.IDatabase) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, data, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, false, $6)
		RETURNING id
	`
	n.CreatedAt = time.Now()

	dataValue, err := n.Data.Value()
	if err != nil {
		logger.Error("NotificationRepository:Create:DataValue:Error:", err)
		return err
	}

	row := r.db.QueryRowContext(ctx, query,
		n.UserID, n.Title, n.Message, n.Type, dataValue, n.CreatedAt)
	if err := row.Scan(&n.ID); err != nil {
		logger.Error("NotificationRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, data, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var notifications []entity.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		logger.Error("NotificationRepository:ListByUser:Error:", err)
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		logger.Error("NotificationRepository:CountUnread:Error:", err)
		return 0, err
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`
	if err := r.db.ExecContext(ctx, query, id, userID); err != nil {
		logger.Error("NotificationRepository:MarkRead:Error:", err)
		return err
	}
	return nil
}

package service

import (
	"context"

	"campus-events-api/core/errors"
	"campus-events-api/core/logger"
	"campus-events-api/modules/notification/dto"
	"campus-events-api/modules/notification/entity"
	"campus-events-api/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	n := &entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Data:    entity.Data(req.Data),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		logger.Error("NotificationService:Create:Error:", err)
		return err
	}
	return nil
}

func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, *errors.AppError) {
	notifications, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to list notifications", err)
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "failed to count unread notifications", err)
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "failed to mark notification read", err)
	}
	return nil
}

package usecase

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type notificationUsecase struct {
	repo domain.NotificationRepository
}

func NewNotificationUsecase(repo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{repo: repo}
}

func (u *notificationUsecase) GetInbox(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only read your own notifications")
	}

	if limit < 1 || limit > domain.DefaultNotificationLimit {
		limit = domain.DefaultNotificationLimit
	}

	notifications, err := u.repo.FetchByUserID(ctx, userID, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return notifications, nil
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID != userID {
		return 0, apperror.Forbidden("You can only read your own notifications")
	}

	count, err := u.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID string, id int64) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID != userID {
		return apperror.Forbidden("You can only update your own notifications")
	}

	if err := u.repo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID != userID {
		return apperror.Forbidden("You can only update your own notifications")
	}

	if err := u.repo.MarkAllRead(ctx, userID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

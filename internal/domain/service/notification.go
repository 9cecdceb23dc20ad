package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
	"github.com/collegevents/backend/pkg/logger/types"
)

type NotificationStorage interface {
	Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	CreateBatch(ctx context.Context, notifications []entity.Notification) error
	Get(ctx context.Context, id string) (*entity.Notification, error)
	Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error)
	GetRecentByUserID(ctx context.Context, userID string, limit int) ([]entity.Notification, error)
	DeleteRead(ctx context.Context, userID string) (int64, error)
}

// NotificationService owns every Notification write. Fan-out is
// best-effort and at-least-once: a failed insert never rolls back the
// action that triggered it.
type NotificationService struct {
	logger  *types.Logger
	storage NotificationStorage
}

const (
	recentLimit        = 50
	broadcastChunkSize = 500
)

func NewNotificationService(logger *types.Logger, storage NotificationStorage) *NotificationService {
	return &NotificationService{
		logger:  logger,
		storage: storage,
	}
}

// Single creates exactly one notification.
func (s *NotificationService) Single(ctx context.Context, recipientID, message, link string) (*entity.Notification, error) {
	return s.storage.Create(ctx, &entity.Notification{
		UserID:  recipientID,
		Message: message,
		Link:    link,
	})
}

// Broadcast creates one notification per recipient via chunked batch
// inserts and reports a per-recipient tally. A failed chunk is counted,
// logged and skipped; there is no rollback and no dedup key.
func (s *NotificationService) Broadcast(ctx context.Context, recipientIDs []string, message, link string) dto.BroadcastResult {
	result := dto.BroadcastResult{Requested: len(recipientIDs)}

	for start := 0; start < len(recipientIDs); start += broadcastChunkSize {
		end := start + broadcastChunkSize
		if end > len(recipientIDs) {
			end = len(recipientIDs)
		}

		chunk := make([]entity.Notification, 0, end-start)
		for _, id := range recipientIDs[start:end] {
			chunk = append(chunk, entity.Notification{
				UserID:  id,
				Message: message,
				Link:    link,
			})
		}

		if err := s.storage.CreateBatch(ctx, chunk); err != nil {
			s.logger.Errorf("failed to insert notification batch (%d recipients): %v", len(chunk), err)
			result.Failed += len(chunk)
			continue
		}
		result.Created += len(chunk)
	}

	return result
}

// MarkRead sets the read flag on the caller's own notification. Setting
// an already-set flag is a no-op. A foreign notification is
// indistinguishable from a missing one.
func (s *NotificationService) MarkRead(ctx context.Context, callerID, id string, isRead bool) (*entity.Notification, error) {
	notification, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	if notification.UserID != callerID {
		return nil, errorz.NotFound
	}

	if notification.IsRead == isRead {
		return notification, nil
	}

	notification.IsRead = isRead
	return s.storage.Update(ctx, notification)
}

// DeleteAllRead removes the user's read notifications and returns how
// many were deleted.
func (s *NotificationService) DeleteAllRead(ctx context.Context, userID string) (int64, error) {
	return s.storage.DeleteRead(ctx, userID)
}

// ListRecent returns the user's newest notifications, capped at 50.
func (s *NotificationService) ListRecent(ctx context.Context, userID string) ([]entity.Notification, error) {
	return s.storage.GetRecentByUserID(ctx, userID, recentLimit)
}

package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
)

type NotificationStorage struct {
	db *gorm.DB
}

func NewNotificationStorage(db *gorm.DB) *NotificationStorage {
	return &NotificationStorage{
		db: db,
	}
}

// Create is a function that creates a new notification in the database.
func (s *NotificationStorage) Create(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Create(&notification).Error
	return notification, err
}

// CreateBatch inserts a set of notifications in one statement.
func (s *NotificationStorage) CreateBatch(ctx context.Context, notifications []entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&notifications).Error
}

// Get is a function that gets a notification from the database by id.
func (s *NotificationStorage) Get(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	return &notification, err
}

// Update is a function that updates a notification in the database.
func (s *NotificationStorage) Update(ctx context.Context, notification *entity.Notification) (*entity.Notification, error) {
	err := s.db.WithContext(ctx).Save(&notification).Error
	return notification, err
}

// GetRecentByUserID returns the newest notifications for a user.
func (s *NotificationStorage) GetRecentByUserID(ctx context.Context, userID string, limit int) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// DeleteRead deletes the user's read notifications and reports how many
// rows went away. Other users' rows are never touched.
func (s *NotificationStorage) DeleteRead(ctx context.Context, userID string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND is_read = ?", userID, true).
		Delete(&entity.Notification{})
	return res.RowsAffected, res.Error
}

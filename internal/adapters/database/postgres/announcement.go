package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
)

type AnnouncementStorage struct {
	db *gorm.DB
}

func NewAnnouncementStorage(db *gorm.DB) *AnnouncementStorage {
	return &AnnouncementStorage{
		db: db,
	}
}

// Create is a function that creates a new announcement in the database.
func (s *AnnouncementStorage) Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error) {
	err := s.db.WithContext(ctx).Create(&announcement).Error
	return announcement, err
}

// GetAll is a function that gets all announcements, newest first.
func (s *AnnouncementStorage) GetAll(ctx context.Context) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&announcements).Error
	return announcements, err
}

package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
)

type EventStorage struct {
	db *gorm.DB
}

func NewEventStorage(db *gorm.DB) *EventStorage {
	return &EventStorage{
		db: db,
	}
}

// Create is a function that creates a new event in the database.
func (s *EventStorage) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Create(&event).Error
	return event, err
}

// Get is a function that gets an event from the database by id.
func (s *EventStorage) Get(ctx context.Context, id string) (*entity.Event, error) {
	var event entity.Event
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	return &event, err
}

// GetMany is a function that gets events from the database by ids.
func (s *EventStorage) GetMany(ctx context.Context, ids []string) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&events).Error
	return events, err
}

// GetAll is a function that gets all events from the database.
func (s *EventStorage) GetAll(ctx context.Context) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Find(&events).Error
	return events, err
}

// GetBySocietyID is a function that gets all events owned by a society.
func (s *EventStorage) GetBySocietyID(ctx context.Context, societyID string) ([]entity.Event, error) {
	var events []entity.Event
	err := s.db.WithContext(ctx).Where("society_id = ?", societyID).Find(&events).Error
	return events, err
}

// Update is a function that updates an event in the database.
func (s *EventStorage) Update(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	err := s.db.WithContext(ctx).Save(&event).Error
	return event, err
}

// Delete is a function that deletes an event from the database.
func (s *EventStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Event{}).Error
}

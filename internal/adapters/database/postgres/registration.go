package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
)

type RegistrationStorage struct {
	db *gorm.DB
}

func NewRegistrationStorage(db *gorm.DB) *RegistrationStorage {
	return &RegistrationStorage{
		db: db,
	}
}

// Create inserts a registration. The composite unique index on
// (user_id, event_id) makes a concurrent duplicate surface as
// gorm.ErrDuplicatedKey, which the ledger translates to a domain conflict.
func (s *RegistrationStorage) Create(ctx context.Context, registration *entity.Registration) (*entity.Registration, error) {
	err := s.db.WithContext(ctx).Create(&registration).Error
	return registration, err
}

// Get is a function that gets a registration by its (user, event) pair.
func (s *RegistrationStorage) Get(ctx context.Context, userID, eventID string) (*entity.Registration, error) {
	var registration entity.Registration
	err := s.db.WithContext(ctx).Where("user_id = ? AND event_id = ?", userID, eventID).First(&registration).Error
	return &registration, err
}

// GetByUserID is a function that gets all registrations owned by a user.
func (s *RegistrationStorage) GetByUserID(ctx context.Context, userID string) ([]entity.Registration, error) {
	var registrations []entity.Registration
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&registrations).Error
	return registrations, err
}

// GetByEventID is a function that gets all registrations for an event.
func (s *RegistrationStorage) GetByEventID(ctx context.Context, eventID string) ([]entity.Registration, error) {
	var registrations []entity.Registration
	err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&registrations).Error
	return registrations, err
}

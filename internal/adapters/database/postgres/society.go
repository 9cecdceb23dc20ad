package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
)

type SocietyStorage struct {
	db *gorm.DB
}

func NewSocietyStorage(db *gorm.DB) *SocietyStorage {
	return &SocietyStorage{
		db: db,
	}
}

// Create is a function that creates a new society in the database.
func (s *SocietyStorage) Create(ctx context.Context, society *entity.Society) (*entity.Society, error) {
	err := s.db.WithContext(ctx).Create(&society).Error
	return society, err
}

// Get is a function that gets a society from the database by id.
func (s *SocietyStorage) Get(ctx context.Context, id string) (*entity.Society, error) {
	var society entity.Society
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&society).Error
	return &society, err
}

// GetByPresidentID is a function that gets a society by its president.
func (s *SocietyStorage) GetByPresidentID(ctx context.Context, presidentID string) (*entity.Society, error) {
	var society entity.Society
	err := s.db.WithContext(ctx).Where("president_id = ?", presidentID).First(&society).Error
	return &society, err
}

// GetPending is a function that gets all pending society requests.
func (s *SocietyStorage) GetPending(ctx context.Context) ([]entity.Society, error) {
	var societies []entity.Society
	err := s.db.WithContext(ctx).Where("request_status = ?", entity.SocietyPending).Find(&societies).Error
	return societies, err
}

// Update is a function that updates a society in the database.
func (s *SocietyStorage) Update(ctx context.Context, society *entity.Society) (*entity.Society, error) {
	err := s.db.WithContext(ctx).Save(&society).Error
	return society, err
}

// Decide persists the decided society and its president in one
// transaction, so an approval never leaves the role flip half-applied.
func (s *SocietyStorage) Decide(ctx context.Context, society *entity.Society, president *entity.User) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(society).Error; err != nil {
			return err
		}
		return tx.Save(president).Error
	})
}

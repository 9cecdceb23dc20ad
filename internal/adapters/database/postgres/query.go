package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
)

type QueryStorage struct {
	db *gorm.DB
}

func NewQueryStorage(db *gorm.DB) *QueryStorage {
	return &QueryStorage{
		db: db,
	}
}

// Create is a function that creates a new query in the database.
func (s *QueryStorage) Create(ctx context.Context, query *entity.Query) (*entity.Query, error) {
	err := s.db.WithContext(ctx).Create(&query).Error
	return query, err
}

// Get is a function that gets a query from the database by id.
func (s *QueryStorage) Get(ctx context.Context, id string) (*entity.Query, error) {
	var query entity.Query
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&query).Error
	return &query, err
}

// GetByUserID is a function that gets a user's queries, newest first.
func (s *QueryStorage) GetByUserID(ctx context.Context, userID string) ([]entity.Query, error) {
	var queries []entity.Query
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&queries).Error
	return queries, err
}

// GetAll is a function that gets all queries, newest first.
func (s *QueryStorage) GetAll(ctx context.Context) ([]entity.Query, error) {
	var queries []entity.Query
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&queries).Error
	return queries, err
}

// Update is a function that updates a query in the database.
func (s *QueryStorage) Update(ctx context.Context, query *entity.Query) (*entity.Query, error) {
	err := s.db.WithContext(ctx).Save(&query).Error
	return query, err
}

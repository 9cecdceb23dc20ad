package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
	"github.com/collegevents/backend/internal/domain/policy"
	"github.com/collegevents/backend/pkg/logger/types"
)

type QueryStorage interface {
	Create(ctx context.Context, query *entity.Query) (*entity.Query, error)
	Get(ctx context.Context, id string) (*entity.Query, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Query, error)
	GetAll(ctx context.Context) ([]entity.Query, error)
	Update(ctx context.Context, query *entity.Query) (*entity.Query, error)
}

type queryUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type QueryService struct {
	logger *types.Logger

	storage     QueryStorage
	userStorage queryUserStorage
}

func NewQueryService(logger *types.Logger, storage QueryStorage, userStorage queryUserStorage) *QueryService {
	return &QueryService{
		logger: logger,

		storage:     storage,
		userStorage: userStorage,
	}
}

// Create files a support query for the caller. Name and email are
// snapshotted so admins can answer without another lookup.
func (s *QueryService) Create(ctx context.Context, callerID string, req dto.CreateQueryRequest) (*entity.Query, error) {
	user, err := s.userStorage.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}

	return s.storage.Create(ctx, &entity.Query{
		UserID:  user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Message: req.Message,
	})
}

// ListMine returns the caller's own queries.
func (s *QueryService) ListMine(ctx context.Context, callerID string) ([]dto.Query, error) {
	queries, err := s.storage.GetByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	return dto.NewQueriesFromEntities(queries), nil
}

// ListAll returns every query for the admin inbox.
func (s *QueryService) ListAll(ctx context.Context, role entity.Role) ([]dto.Query, error) {
	if !policy.Allowed(role, policy.ManageQueries, false) {
		return nil, errorz.Forbidden
	}

	queries, err := s.storage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewQueriesFromEntities(queries), nil
}

// Reply records an admin answer on a query.
func (s *QueryService) Reply(ctx context.Context, role entity.Role, queryID string, req dto.ReplyQueryRequest) (*entity.Query, error) {
	if !policy.Allowed(role, policy.ManageQueries, false) {
		return nil, errorz.Forbidden
	}

	query, err := s.storage.Get(ctx, queryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: query not found", errorz.NotFound)
		}
		return nil, err
	}

	query.Reply = req.Reply
	return s.storage.Update(ctx, query)
}

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

type AnnouncementStorage interface {
	Create(ctx context.Context, announcement *entity.Announcement) (*entity.Announcement, error)
	GetAll(ctx context.Context) ([]entity.Announcement, error)
}

type announcementUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
}

type AnnouncementService struct {
	logger *types.Logger

	storage     AnnouncementStorage
	userStorage announcementUserStorage
}

func NewAnnouncementService(logger *types.Logger, storage AnnouncementStorage, userStorage announcementUserStorage) *AnnouncementService {
	return &AnnouncementService{
		logger: logger,

		storage:     storage,
		userStorage: userStorage,
	}
}

// Create posts an announcement on behalf of a society account. Admins
// may post for any society; the target must still hold the society role.
func (s *AnnouncementService) Create(ctx context.Context, callerID string, role entity.Role, req dto.CreateAnnouncementRequest) (*entity.Announcement, error) {
	if !policy.Allowed(role, policy.CreateAnnouncement, false) {
		return nil, errorz.Forbidden
	}

	authorID := callerID
	if role == entity.Admin && req.SocietyID != "" {
		authorID = req.SocietyID
	}

	author, err := s.userStorage.Get(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: society not found", errorz.NotFound)
		}
		return nil, err
	}
	if author.Role != entity.RoleSociety {
		return nil, fmt.Errorf("%w: society not found", errorz.NotFound)
	}

	return s.storage.Create(ctx, &entity.Announcement{
		Title:      req.Title,
		Message:    req.Message,
		AuthorID:   author.ID,
		AuthorRole: entity.RoleSociety,
	})
}

// List returns all announcements, newest first.
func (s *AnnouncementService) List(ctx context.Context) ([]dto.Announcement, error) {
	announcements, err := s.storage.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.Announcement, 0, len(announcements))
	for _, a := range announcements {
		out = append(out, dto.NewAnnouncementFromEntity(a))
	}
	return out, nil
}

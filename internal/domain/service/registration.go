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

type RegistrationStorage interface {
	Create(ctx context.Context, registration *entity.Registration) (*entity.Registration, error)
	Get(ctx context.Context, userID, eventID string) (*entity.Registration, error)
	GetByUserID(ctx context.Context, userID string) ([]entity.Registration, error)
	GetByEventID(ctx context.Context, eventID string) ([]entity.Registration, error)
}

type registrationEventStorage interface {
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetMany(ctx context.Context, ids []string) ([]entity.Event, error)
}

type registrationUserStorage interface {
	GetMany(ctx context.Context, ids []string) ([]entity.User, error)
}

type registrationNotifier interface {
	Single(ctx context.Context, recipientID, message, link string) (*entity.Notification, error)
}

// RegistrationService is the ledger enforcing at-most-one registration
// per (user, event). The pre-check catches the common duplicate; the
// store's unique index is what actually holds under concurrency.
type RegistrationService struct {
	logger *types.Logger

	storage      RegistrationStorage
	eventStorage registrationEventStorage
	userStorage  registrationUserStorage
	notifier     registrationNotifier
}

func NewRegistrationService(
	logger *types.Logger,
	storage RegistrationStorage,
	eventStorage registrationEventStorage,
	userStorage registrationUserStorage,
	notifier registrationNotifier,
) *RegistrationService {
	return &RegistrationService{
		logger: logger,

		storage:      storage,
		eventStorage: eventStorage,
		userStorage:  userStorage,
		notifier:     notifier,
	}
}

// Register creates the registration row and fans out the confirmation
// notification. The notification is best-effort: its failure is logged
// and the registration stands.
func (s *RegistrationService) Register(ctx context.Context, userID string, role entity.Role, eventID string) (*dto.RegistrationResult, error) {
	if !policy.Allowed(role, policy.RegisterForEvent, false) {
		return nil, errorz.Forbidden
	}

	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}

	if _, err = s.storage.Get(ctx, userID, eventID); err == nil {
		return nil, fmt.Errorf("%w: already registered for this event", errorz.Conflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	registration, err := s.storage.Create(ctx, &entity.Registration{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		// A concurrent insert for the same pair loses against the unique
		// index and must surface as the same conflict as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: already registered for this event", errorz.Conflict)
		}
		return nil, err
	}

	result := &dto.RegistrationResult{Registration: dto.NewRegistrationFromEntity(*registration)}

	notification, err := s.notifier.Single(ctx, userID,
		fmt.Sprintf("You have successfully registered for %q.", event.Title),
		event.Link(),
	)
	if err != nil {
		s.logger.Errorf("registration %s saved but notification failed: %v", registration.ID, err)
		return result, nil
	}

	n := dto.NewNotificationFromEntity(*notification)
	result.Notification = &n
	return result, nil
}

// ListForUser returns the events the user registered for, dropping
// registrations whose event no longer exists.
func (s *RegistrationService) ListForUser(ctx context.Context, userID string) ([]dto.Event, error) {
	registrations, err := s.storage.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(registrations) == 0 {
		return []dto.Event{}, nil
	}

	ids := make([]string, 0, len(registrations))
	for _, r := range registrations {
		ids = append(ids, r.EventID)
	}

	events, err := s.eventStorage.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	return dto.NewEventsFromEntities(events), nil
}

// ListForEvent returns the registrants of an event joined to minimal user
// identity, gated to admins and the owning society.
func (s *RegistrationService) ListForEvent(ctx context.Context, callerID string, role entity.Role, eventID string) ([]dto.EventRegistrant, error) {
	event, err := s.eventStorage.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}

	owns := event.SocietyID != "" && event.SocietyID == callerID
	if !policy.Allowed(role, policy.ViewEventRegistrations, owns) {
		return nil, errorz.Forbidden
	}

	registrations, err := s.storage.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if len(registrations) == 0 {
		return []dto.EventRegistrant{}, nil
	}

	userIDs := make([]string, 0, len(registrations))
	for _, r := range registrations {
		userIDs = append(userIDs, r.UserID)
	}
	users, err := s.userStorage.GetMany(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	registrants := make([]dto.EventRegistrant, 0, len(registrations))
	for _, r := range registrations {
		u := byID[r.UserID]
		registrants = append(registrants, dto.EventRegistrant{
			RegistrationID: r.ID,
			UserID:         r.UserID,
			Name:           u.Name,
			Email:          u.Email,
			RegisteredAt:   r.CreatedAt,
		})
	}
	return registrants, nil
}

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

type SocietyStorage interface {
	Create(ctx context.Context, society *entity.RoleSociety) (*entity.RoleSociety, error)
	Get(ctx context.Context, id string) (*entity.RoleSociety, error)
	GetByPresidentID(ctx context.Context, presidentID string) (*entity.RoleSociety, error)
	GetPending(ctx context.Context) ([]entity.RoleSociety, error)
	Update(ctx context.Context, society *entity.RoleSociety) (*entity.RoleSociety, error)
	Decide(ctx context.Context, society *entity.RoleSociety, president *entity.User) error
}

type societyUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	GetMany(ctx context.Context, ids []string) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type societyEventStorage interface {
	GetAll(ctx context.Context) ([]entity.Event, error)
	GetBySocietyID(ctx context.Context, societyID string) ([]entity.Event, error)
}

type societyRegistrationStorage interface {
	GetByEventID(ctx context.Context, eventID string) ([]entity.Registration, error)
}

type societyNotifier interface {
	Single(ctx context.Context, recipientID, message, link string) (*entity.Notification, error)
}

type societyMailer interface {
	SendDecisionMail(to string, societyName string, approved bool)
}

// SocietyService runs the society request state machine. requestStatus
// moves pending to approved or rejected exactly once; a second decision
// on the same request is a conflict, and an approval's role flip commits
// in the same transaction as the society row.
type SocietyService struct {
	logger *types.Logger

	storage             SocietyStorage
	userStorage         societyUserStorage
	eventStorage        societyEventStorage
	registrationStorage societyRegistrationStorage
	notifier            societyNotifier
	mailer              societyMailer // nil unless smtp is enabled
}

func NewSocietyService(
	logger *types.Logger,
	storage SocietyStorage,
	userStorage societyUserStorage,
	eventStorage societyEventStorage,
	registrationStorage societyRegistrationStorage,
	notifier societyNotifier,
	mailer societyMailer,
) *SocietyService {
	return &SocietyService{
		logger: logger,

		storage:             storage,
		userStorage:         userStorage,
		eventStorage:        eventStorage,
		registrationStorage: registrationStorage,
		notifier:            notifier,
		mailer:              mailer,
	}
}

// Request files a pending society request for the caller and marks their
// account pending. Each call files a fresh request; duplicates are left
// for the admin queue to arbitrate.
func (s *SocietyService) Request(ctx context.Context, callerID string, req dto.SocietyRequestRequest) (*entity.RoleSociety, error) {
	user, err := s.userStorage.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}

	society, err := s.storage.Create(ctx, &entity.RoleSociety{
		Name:          req.Name,
		Description:   req.Description,
		Email:         req.Email,
		Phone:         req.Phone,
		PresidentID:   user.ID,
		RequestStatus: entity.SocietyPending,
	})
	if err != nil {
		return nil, err
	}

	user.SocietyRequestStatus = entity.RequestPending
	if _, err = s.userStorage.Update(ctx, user); err != nil {
		return nil, err
	}

	return society, nil
}

// ListPending returns pending requests joined to president identity.
func (s *SocietyService) ListPending(ctx context.Context) ([]dto.SocietyRequest, error) {
	societies, err := s.storage.GetPending(ctx)
	if err != nil {
		return nil, err
	}
	if len(societies) == 0 {
		return []dto.SocietyRequest{}, nil
	}

	ids := make([]string, 0, len(societies))
	for _, soc := range societies {
		ids = append(ids, soc.PresidentID)
	}
	presidents, err := s.userStorage.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.User, len(presidents))
	for _, p := range presidents {
		byID[p.ID] = p
	}

	requests := make([]dto.SocietyRequest, 0, len(societies))
	for _, soc := range societies {
		requests = append(requests, dto.NewSocietyRequest(soc, byID[soc.PresidentID]))
	}
	return requests, nil
}

// Decide resolves a pending request. Approval promotes the president to
// the society role; the promotion is permanent, there is no downgrade.
// Re-deciding an already-terminal request fails with a conflict rather
// than silently re-running the side effects.
func (s *SocietyService) Decide(ctx context.Context, societyID string, decision entity.SocietyStatus) (*dto.DecisionResult, error) {
	if decision != entity.SocietyApproved && decision != entity.SocietyRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", errorz.Validation)
	}

	society, err := s.storage.Get(ctx, societyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: society not found", errorz.NotFound)
		}
		return nil, err
	}
	if society.RequestStatus.Terminal() {
		return nil, fmt.Errorf("%w: request already decided", errorz.Conflict)
	}

	president, err := s.userStorage.Get(ctx, society.PresidentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: president not found", errorz.NotFound)
		}
		return nil, err
	}

	society.RequestStatus = decision
	if decision == entity.SocietyApproved {
		president.Role = entity.RoleSociety
		president.SocietyRequestStatus = entity.RequestApproved
	} else {
		president.SocietyRequestStatus = entity.RequestRejected
	}

	if err = s.storage.Decide(ctx, society, president); err != nil {
		return nil, err
	}

	var message string
	if decision == entity.SocietyApproved {
		message = fmt.Sprintf("Your society request for %q has been approved.", society.Name)
	} else {
		message = fmt.Sprintf("Your society request for %q has been rejected.", society.Name)
	}

	result := &dto.DecisionResult{
		Message: fmt.Sprintf("Society request %s successfully.", decision),
	}

	notification, err := s.notifier.Single(ctx, president.ID, message, "")
	if err != nil {
		s.logger.Errorf("society %s decided but notification failed: %v", society.ID, err)
	} else {
		n := dto.NewNotificationFromEntity(*notification)
		result.Notification = &n
	}

	if s.mailer != nil {
		s.mailer.SendDecisionMail(president.Email, society.Name, decision == entity.SocietyApproved)
	}

	return result, nil
}

// Profile returns the caller's society record.
func (s *SocietyService) Profile(ctx context.Context, callerID string, role entity.Role) (*dto.SocietyRequest, error) {
	if role != entity.RoleSociety {
		return nil, errorz.Forbidden
	}

	society, err := s.storage.GetByPresidentID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: society not found", errorz.NotFound)
		}
		return nil, err
	}

	president, err := s.userStorage.Get(ctx, society.PresidentID)
	if err != nil {
		return nil, err
	}

	profile := dto.NewSocietyRequest(*society, *president)
	return &profile, nil
}

// UpdateProfile updates the caller's society contact fields.
func (s *SocietyService) UpdateProfile(ctx context.Context, callerID string, role entity.Role, req dto.UpdateSocietyRequest) (*dto.SocietyRequest, error) {
	if role != entity.RoleSociety {
		return nil, errorz.Forbidden
	}

	society, err := s.storage.GetByPresidentID(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: society not found", errorz.NotFound)
		}
		return nil, err
	}

	if req.Name != nil {
		society.Name = *req.Name
	}
	if req.Description != nil {
		society.Description = *req.Description
	}
	if req.Email != nil {
		society.Email = *req.Email
	}
	if req.Phone != nil {
		society.Phone = *req.Phone
	}

	updated, err := s.storage.Update(ctx, society)
	if err != nil {
		return nil, err
	}

	president, err := s.userStorage.Get(ctx, updated.PresidentID)
	if err != nil {
		return nil, err
	}

	profile := dto.NewSocietyRequest(*updated, *president)
	return &profile, nil
}

// OwnedEvents returns the caller's events joined to registrant lists.
// Admins see every event.
func (s *SocietyService) OwnedEvents(ctx context.Context, callerID string, role entity.Role) ([]dto.OwnedEvent, error) {
	if !policy.Allowed(role, policy.ViewOwnedEvents, false) {
		return nil, errorz.Forbidden
	}

	var (
		events []entity.Event
		err    error
	)
	if role == entity.Admin {
		events, err = s.eventStorage.GetAll(ctx)
	} else {
		events, err = s.eventStorage.GetBySocietyID(ctx, callerID)
	}
	if err != nil {
		return nil, err
	}

	owned := make([]dto.OwnedEvent, 0, len(events))
	for _, event := range events {
		registrations, regErr := s.registrationStorage.GetByEventID(ctx, event.ID)
		if regErr != nil {
			return nil, regErr
		}

		registrants, joinErr := s.joinRegistrants(ctx, registrations)
		if joinErr != nil {
			return nil, joinErr
		}

		owned = append(owned, dto.OwnedEvent{
			Event:         dto.NewEventFromEntity(event),
			Registrations: registrants,
		})
	}
	return owned, nil
}

func (s *SocietyService) joinRegistrants(ctx context.Context, registrations []entity.Registration) ([]dto.EventRegistrant, error) {
	if len(registrations) == 0 {
		return []dto.EventRegistrant{}, nil
	}

	ids := make([]string, 0, len(registrations))
	for _, r := range registrations {
		ids = append(ids, r.UserID)
	}
	users, err := s.userStorage.GetMany(ctx, ids)
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

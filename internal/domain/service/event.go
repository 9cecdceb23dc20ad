package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/adapters/database/redis/events"
	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
	"github.com/collegevents/backend/internal/domain/policy"
	"github.com/collegevents/backend/pkg/logger/types"
)

type EventStorage interface {
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Get(ctx context.Context, id string) (*entity.Event, error)
	GetAll(ctx context.Context) ([]entity.Event, error)
	Update(ctx context.Context, event *entity.Event) (*entity.Event, error)
	Delete(ctx context.Context, id string) error
}

type eventUserStorage interface {
	Get(ctx context.Context, id string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
}

type eventBroadcaster interface {
	Broadcast(ctx context.Context, recipientIDs []string, message, link string) dto.BroadcastResult
}

type eventCache interface {
	Get(ctx context.Context, key string) ([]entity.Event, bool)
	Set(ctx context.Context, key string, events []entity.Event, expiration time.Duration)
	Clear(ctx context.Context)
}

type eventMailer interface {
	SendEventAnnouncement(to string, eventTitle string, link string)
}

const listingCacheTTL = time.Minute

// EventService is the catalog. Classification into upcoming/past is never
// stored; every listing recomputes it from the normalized start timestamp
// against the current time.
type EventService struct {
	logger *types.Logger

	storage     EventStorage
	userStorage eventUserStorage
	broadcaster eventBroadcaster
	cache       eventCache
	mailer      eventMailer // nil unless smtp is enabled
}

func NewEventService(
	logger *types.Logger,
	storage EventStorage,
	userStorage eventUserStorage,
	broadcaster eventBroadcaster,
	cache eventCache,
	mailer eventMailer,
) *EventService {
	return &EventService{
		logger: logger,

		storage:     storage,
		userStorage: userStorage,
		broadcaster: broadcaster,
		cache:       cache,
		mailer:      mailer,
	}
}

// parseStartsAt combines the wire date and time fields into the stored
// timestamp. Unparseable input is a validation failure, never a row with
// a garbage timestamp.
func parseStartsAt(date, timeOfDay string) (time.Time, error) {
	startsAt, err := time.Parse(dto.DateLayout+" "+dto.TimeLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD and time HH:MM", errorz.Validation)
	}
	return startsAt, nil
}

// Create persists the event, then fans out a notification to every user.
// The fan-out is deliberately outside any transaction: the event stands
// even if part of the broadcast fails, and the tally reports the damage.
func (s *EventService) Create(ctx context.Context, role entity.Role, req dto.CreateEventRequest) (*entity.Event, dto.BroadcastResult, error) {
	if !policy.Allowed(role, policy.CreateEvent, false) {
		return nil, dto.BroadcastResult{}, errorz.Forbidden
	}

	startsAt, err := parseStartsAt(req.Date, req.Time)
	if err != nil {
		return nil, dto.BroadcastResult{}, err
	}

	society, err := s.userStorage.Get(ctx, req.SocietyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, dto.BroadcastResult{}, fmt.Errorf("%w: society not found", errorz.NotFound)
		}
		return nil, dto.BroadcastResult{}, err
	}
	if society.Role != entity.RoleSociety {
		return nil, dto.BroadcastResult{}, fmt.Errorf("%w: society not found", errorz.NotFound)
	}

	event, err := s.storage.Create(ctx, &entity.Event{
		Title:              req.Title,
		StartsAt:           startsAt,
		Location:           req.Location,
		Description:        req.Description,
		Guest:              req.Guest,
		RegistrationStatus: req.RegistrationStatus,
		CoverImageURL:      req.CoverImageURL,
		Category:           req.Category,
		SocietyID:          society.ID,
	})
	if err != nil {
		return nil, dto.BroadcastResult{}, err
	}
	s.cache.Clear(ctx)

	users, err := s.userStorage.GetAll(ctx)
	if err != nil {
		s.logger.Errorf("event %s saved but recipient lookup failed: %v", event.ID, err)
		return event, dto.BroadcastResult{}, nil
	}

	recipientIDs := make([]string, 0, len(users))
	for _, u := range users {
		recipientIDs = append(recipientIDs, u.ID)
	}

	result := s.broadcaster.Broadcast(ctx, recipientIDs,
		fmt.Sprintf("New event %q has been added!", event.Title),
		event.Link(),
	)
	if result.Failed > 0 {
		s.logger.Warnf("event %s broadcast incomplete: %d/%d notifications created", event.ID, result.Created, result.Requested)
	}

	if s.mailer != nil {
		for _, u := range users {
			s.mailer.SendEventAnnouncement(u.Email, event.Title, event.Link())
		}
	}

	return event, result, nil
}

// Get is a function that gets a single event by id.
func (s *EventService) Get(ctx context.Context, id string) (*entity.Event, error) {
	event, err := s.storage.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	return event, nil
}

// List returns future events, soonest first. The default listing and the
// upcoming listing classify identically.
func (s *EventService) List(ctx context.Context) ([]dto.Event, error) {
	return s.ListUpcoming(ctx)
}

// ListUpcoming returns events strictly in the future, ascending by start.
func (s *EventService) ListUpcoming(ctx context.Context) ([]dto.Event, error) {
	all, err := s.cachedAll(ctx)
	if err != nil {
		return nil, err
	}

	upcoming, _ := classify(all, time.Now())
	return dto.NewEventsFromEntities(upcoming), nil
}

// ListPast returns events strictly in the past, most recent first.
func (s *EventService) ListPast(ctx context.Context) ([]dto.Event, error) {
	all, err := s.cachedAll(ctx)
	if err != nil {
		return nil, err
	}

	_, past := classify(all, time.Now())
	return dto.NewEventsFromEntities(past), nil
}

// Update applies the allow-listed mutable fields. Ownership (SocietyID)
// is not on the allow-list and can never change after creation.
func (s *EventService) Update(ctx context.Context, callerID string, role entity.Role, eventID string, req dto.UpdateEventRequest) (*entity.Event, error) {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}

	owns := event.SocietyID != "" && event.SocietyID == callerID
	if !policy.Allowed(role, policy.MutateEvent, owns) {
		return nil, errorz.Forbidden
	}

	if req.Date != nil || req.Time != nil {
		date := event.StartsAt.Format(dto.DateLayout)
		timeOfDay := event.StartsAt.Format(dto.TimeLayout)
		if req.Date != nil {
			date = *req.Date
		}
		if req.Time != nil {
			timeOfDay = *req.Time
		}
		startsAt, parseErr := parseStartsAt(date, timeOfDay)
		if parseErr != nil {
			return nil, parseErr
		}
		event.StartsAt = startsAt
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Guest != nil {
		event.Guest = *req.Guest
	}
	if req.RegistrationStatus != nil {
		event.RegistrationStatus = *req.RegistrationStatus
	}
	if req.CoverImageURL != nil {
		event.CoverImageURL = *req.CoverImageURL
	}
	if req.Category != nil {
		event.Category = *req.Category
	}

	updated, err := s.storage.Update(ctx, event)
	if err != nil {
		return nil, err
	}
	s.cache.Clear(ctx)
	return updated, nil
}

// Delete removes an event, gated to admins and the owning society.
func (s *EventService) Delete(ctx context.Context, callerID string, role entity.Role, eventID string) error {
	event, err := s.storage.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.NotFound
		}
		return err
	}

	owns := event.SocietyID != "" && event.SocietyID == callerID
	if !policy.Allowed(role, policy.MutateEvent, owns) {
		return errorz.Forbidden
	}

	if err = s.storage.Delete(ctx, eventID); err != nil {
		return err
	}
	s.cache.Clear(ctx)
	return nil
}

func (s *EventService) cachedAll(ctx context.Context) ([]entity.Event, error) {
	if cached, ok := s.cache.Get(ctx, events.KeyAll); ok {
		return cached, nil
	}

	all, err := s.storage.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, events.KeyAll, all, listingCacheTTL)
	return all, nil
}

// classify splits events around now: upcoming ascending by start, past
// descending. An event starting exactly at now counts as upcoming.
func classify(all []entity.Event, now time.Time) (upcoming, past []entity.Event) {
	for _, e := range all {
		if e.IsPast(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].StartsAt.Before(upcoming[j].StartsAt)
	})
	sort.Slice(past, func(i, j int) bool {
		return past[i].StartsAt.After(past[j].StartsAt)
	})
	return upcoming, past
}

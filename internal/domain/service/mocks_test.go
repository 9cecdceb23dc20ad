package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/entity"
	"github.com/collegevents/backend/pkg/logger/types"
)

func testLogger() *types.Logger {
	return &types.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type fakeUserStore struct {
	users   map[string]*entity.User
	lastSeq int
}

func newFakeUserStore(users ...*entity.User) *fakeUserStore {
	s := &fakeUserStore{users: map[string]*entity.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	s.lastSeq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", s.lastSeq)
	}
	if user.SocietyRequestStatus == "" {
		user.SocietyRequestStatus = entity.RequestNone
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) Get(_ context.Context, id string) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeUserStore) GetAll(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

func (s *fakeUserStore) GetMany(_ context.Context, ids []string) ([]entity.User, error) {
	out := make([]entity.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (s *fakeUserStore) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	if _, ok := s.users[user.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.users[user.ID] = user
	return user, nil
}

type fakeEventStore struct {
	events  map[string]*entity.Event
	lastSeq int
}

func newFakeEventStore(events ...*entity.Event) *fakeEventStore {
	s := &fakeEventStore{events: map[string]*entity.Event{}}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

func (s *fakeEventStore) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	s.lastSeq++
	if event.ID == "" {
		event.ID = fmt.Sprintf("event-%d", s.lastSeq)
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *fakeEventStore) Get(_ context.Context, id string) (*entity.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (s *fakeEventStore) GetMany(_ context.Context, ids []string) ([]entity.Event, error) {
	out := make([]entity.Event, 0, len(ids))
	for _, id := range ids {
		if e, ok := s.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeEventStore) GetAll(_ context.Context) ([]entity.Event, error) {
	out := make([]entity.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeEventStore) GetBySocietyID(_ context.Context, societyID string) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range s.events {
		if e.SocietyID == societyID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *fakeEventStore) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	if _, ok := s.events[event.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.events[event.ID] = event
	return event, nil
}

func (s *fakeEventStore) Delete(_ context.Context, id string) error {
	delete(s.events, id)
	return nil
}

type fakeRegistrationStore struct {
	registrations map[string]*entity.Registration
	lastSeq       int
	// forceDuplicate makes Create fail the way a concurrent insert loses
	// against the unique index even when the pre-check saw nothing.
	forceDuplicate bool
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{registrations: map[string]*entity.Registration{}}
}

func pairKey(userID, eventID string) string {
	return userID + "/" + eventID
}

func (s *fakeRegistrationStore) Create(_ context.Context, registration *entity.Registration) (*entity.Registration, error) {
	key := pairKey(registration.UserID, registration.EventID)
	if s.forceDuplicate {
		return nil, gorm.ErrDuplicatedKey
	}
	if _, ok := s.registrations[key]; ok {
		return nil, gorm.ErrDuplicatedKey
	}
	s.lastSeq++
	registration.ID = fmt.Sprintf("reg-%d", s.lastSeq)
	registration.CreatedAt = time.Now()
	s.registrations[key] = registration
	return registration, nil
}

func (s *fakeRegistrationStore) Get(_ context.Context, userID, eventID string) (*entity.Registration, error) {
	r, ok := s.registrations[pairKey(userID, eventID)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (s *fakeRegistrationStore) GetByUserID(_ context.Context, userID string) ([]entity.Registration, error) {
	var out []entity.Registration
	for _, r := range s.registrations {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeRegistrationStore) GetByEventID(_ context.Context, eventID string) ([]entity.Registration, error) {
	var out []entity.Registration
	for _, r := range s.registrations {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeNotificationStore struct {
	notifications map[string]*entity.Notification
	lastSeq       int

	createErr error
	batchErr  error
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{notifications: map[string]*entity.Notification{}}
}

func (s *fakeNotificationStore) Create(_ context.Context, notification *entity.Notification) (*entity.Notification, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.lastSeq++
	notification.ID = fmt.Sprintf("notif-%d", s.lastSeq)
	notification.CreatedAt = time.Now()
	s.notifications[notification.ID] = notification
	return notification, nil
}

func (s *fakeNotificationStore) CreateBatch(_ context.Context, notifications []entity.Notification) error {
	if s.batchErr != nil {
		return s.batchErr
	}
	for i := range notifications {
		s.lastSeq++
		notifications[i].ID = fmt.Sprintf("notif-%d", s.lastSeq)
		n := notifications[i]
		s.notifications[n.ID] = &n
	}
	return nil
}

func (s *fakeNotificationStore) Get(_ context.Context, id string) (*entity.Notification, error) {
	n, ok := s.notifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (s *fakeNotificationStore) Update(_ context.Context, notification *entity.Notification) (*entity.Notification, error) {
	if _, ok := s.notifications[notification.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.notifications[notification.ID] = notification
	return notification, nil
}

func (s *fakeNotificationStore) GetRecentByUserID(_ context.Context, userID string, limit int) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeNotificationStore) DeleteRead(_ context.Context, userID string) (int64, error) {
	var deleted int64
	for id, n := range s.notifications {
		if n.UserID == userID && n.IsRead {
			delete(s.notifications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *fakeNotificationStore) forUser(userID string) []entity.Notification {
	var out []entity.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out
}

type fakeSocietyStore struct {
	societies map[string]*entity.Society
	lastSeq   int

	decideErr error
}

func newFakeSocietyStore(societies ...*entity.Society) *fakeSocietyStore {
	s := &fakeSocietyStore{societies: map[string]*entity.Society{}}
	for _, soc := range societies {
		s.societies[soc.ID] = soc
	}
	return s
}

func (s *fakeSocietyStore) Create(_ context.Context, society *entity.Society) (*entity.Society, error) {
	s.lastSeq++
	if society.ID == "" {
		society.ID = fmt.Sprintf("society-%d", s.lastSeq)
	}
	s.societies[society.ID] = society
	return society, nil
}

func (s *fakeSocietyStore) Get(_ context.Context, id string) (*entity.Society, error) {
	soc, ok := s.societies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return soc, nil
}

func (s *fakeSocietyStore) GetByPresidentID(_ context.Context, presidentID string) (*entity.Society, error) {
	for _, soc := range s.societies {
		if soc.PresidentID == presidentID {
			return soc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeSocietyStore) GetPending(_ context.Context) ([]entity.Society, error) {
	var out []entity.Society
	for _, soc := range s.societies {
		if soc.RequestStatus == entity.SocietyPending {
			out = append(out, *soc)
		}
	}
	return out, nil
}

func (s *fakeSocietyStore) Update(_ context.Context, society *entity.Society) (*entity.Society, error) {
	if _, ok := s.societies[society.ID]; !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.societies[society.ID] = society
	return society, nil
}

// Decide applies both writes or neither, mirroring the transactional
// storage.
func (s *fakeSocietyStore) Decide(ctx context.Context, society *entity.Society, president *entity.User) error {
	if s.decideErr != nil {
		return s.decideErr
	}
	s.societies[society.ID] = society
	return nil
}

type fakeEventCache struct {
	entries map[string][]entity.Event
	clears  int
}

func newFakeEventCache() *fakeEventCache {
	return &fakeEventCache{entries: map[string][]entity.Event{}}
}

func (c *fakeEventCache) Get(_ context.Context, key string) ([]entity.Event, bool) {
	events, ok := c.entries[key]
	return events, ok
}

func (c *fakeEventCache) Set(_ context.Context, key string, events []entity.Event, _ time.Duration) {
	c.entries[key] = events
}

func (c *fakeEventCache) Clear(_ context.Context) {
	c.entries = map[string][]entity.Event{}
	c.clears++
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
)

type eventFixture struct {
	svc               *EventService
	eventStore        *fakeEventStore
	userStore         *fakeUserStore
	notificationStore *fakeNotificationStore
	cache             *fakeEventCache
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()

	userStore := newFakeUserStore(
		&entity.User{ID: "student-1", Name: "Ada", Email: "ada@campus.edu", Role: entity.Student},
		&entity.User{ID: "student-2", Name: "Grace", Email: "grace@campus.edu", Role: entity.Student},
		&entity.User{ID: "society-user-1", Name: "Robotics", Email: "robotics@campus.edu", Role: entity.RoleSociety},
	)
	eventStore := newFakeEventStore()
	notificationStore := newFakeNotificationStore()
	cache := newFakeEventCache()
	broadcaster := NewNotificationService(testLogger(), notificationStore)

	return &eventFixture{
		svc:               NewEventService(testLogger(), eventStore, userStore, broadcaster, cache, nil),
		eventStore:        eventStore,
		userStore:         userStore,
		notificationStore: notificationStore,
		cache:             cache,
	}
}

func createRequest() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:       "Tech Talk",
		Date:        "2026-10-01",
		Time:        "18:30",
		Location:    "Auditorium",
		Description: "A talk",
		SocietyID:   "society-user-1",
	}
}

func TestEventService_Create(t *testing.T) {
	f := newEventFixture(t)

	event, result, err := f.svc.Create(context.Background(), entity.Admin, createRequest())
	require.NoError(t, err)

	assert.Equal(t, "society-user-1", event.SocietyID)
	assert.Equal(t, time.Date(2026, 10, 1, 18, 30, 0, 0, time.UTC), event.StartsAt)

	// Every user got the announcement, the creator's society included.
	assert.Equal(t, 3, result.Requested)
	assert.Equal(t, 3, result.Created)
	require.Len(t, f.notificationStore.forUser("student-1"), 1)
	n := f.notificationStore.forUser("student-1")[0]
	assert.Contains(t, n.Message, "Tech Talk")
	assert.Equal(t, event.Link(), n.Link)
}

func TestEventService_Create_OnlyAdmin(t *testing.T) {
	f := newEventFixture(t)

	for _, role := range []entity.Role{entity.Student, entity.RoleSociety} {
		_, _, err := f.svc.Create(context.Background(), role, createRequest())
		assert.ErrorIs(t, err, errorz.Forbidden, "role %s", role)
	}
	assert.Empty(t, f.eventStore.events)
}

func TestEventService_Create_BadDate(t *testing.T) {
	f := newEventFixture(t)

	req := createRequest()
	req.Date = "01/10/2026"
	_, _, err := f.svc.Create(context.Background(), entity.Admin, req)
	assert.ErrorIs(t, err, errorz.Validation)
}

func TestEventService_Create_SocietyMustExist(t *testing.T) {
	f := newEventFixture(t)

	req := createRequest()
	req.SocietyID = "student-1" // exists, but not a society account
	_, _, err := f.svc.Create(context.Background(), entity.Admin, req)
	assert.ErrorIs(t, err, errorz.NotFound)

	req.SocietyID = "missing"
	_, _, err = f.svc.Create(context.Background(), entity.Admin, req)
	assert.ErrorIs(t, err, errorz.NotFound)
}

func TestEventService_Classification(t *testing.T) {
	f := newEventFixture(t)
	now := time.Now()

	f.eventStore.Create(context.Background(), &entity.Event{ID: "past-old", Title: "Old", StartsAt: now.Add(-48 * time.Hour)})
	f.eventStore.Create(context.Background(), &entity.Event{ID: "past-recent", Title: "Recent", StartsAt: now.Add(-1 * time.Hour)})
	f.eventStore.Create(context.Background(), &entity.Event{ID: "up-far", Title: "Far", StartsAt: now.Add(72 * time.Hour)})
	f.eventStore.Create(context.Background(), &entity.Event{ID: "up-soon", Title: "Soon", StartsAt: now.Add(1 * time.Hour)})

	upcoming, err := f.svc.ListUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "up-soon", upcoming[0].ID)
	assert.Equal(t, "up-far", upcoming[1].ID)

	past, err := f.svc.ListPast(context.Background())
	require.NoError(t, err)
	require.Len(t, past, 2)
	assert.Equal(t, "past-recent", past[0].ID)
	assert.Equal(t, "past-old", past[1].ID)
}

func TestClassify_BoundaryIsUpcoming(t *testing.T) {
	now := time.Now()
	upcoming, past := classify([]entity.Event{{ID: "boundary", StartsAt: now}}, now)
	assert.Len(t, upcoming, 1)
	assert.Empty(t, past)
}

func TestEventService_ListUsesCache(t *testing.T) {
	f := newEventFixture(t)
	f.eventStore.Create(context.Background(), &entity.Event{ID: "e1", StartsAt: time.Now().Add(time.Hour)})

	_, err := f.svc.ListUpcoming(context.Background())
	require.NoError(t, err)

	// A write behind the cache's back is invisible until the next Clear.
	f.eventStore.Create(context.Background(), &entity.Event{ID: "e2", StartsAt: time.Now().Add(time.Hour)})
	upcoming, err := f.svc.ListUpcoming(context.Background())
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)

	f.cache.Clear(context.Background())
	upcoming, err = f.svc.ListUpcoming(context.Background())
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)
}

func TestEventService_Update_AllowList(t *testing.T) {
	f := newEventFixture(t)
	event, _, err := f.svc.Create(context.Background(), entity.Admin, createRequest())
	require.NoError(t, err)

	title := "Renamed"
	date := "2026-11-05"
	updated, err := f.svc.Update(context.Background(), "society-user-1", entity.RoleSociety, event.ID, dto.UpdateEventRequest{
		Title: &title,
		Date:  &date,
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	// Date changed, time of day kept from the existing timestamp.
	assert.Equal(t, time.Date(2026, 11, 5, 18, 30, 0, 0, time.UTC), updated.StartsAt)
	// Untouched fields survive.
	assert.Equal(t, "Auditorium", updated.Location)
	// Ownership never moves.
	assert.Equal(t, "society-user-1", updated.SocietyID)
}

func TestEventService_Update_OwnershipGate(t *testing.T) {
	f := newEventFixture(t)
	event, _, err := f.svc.Create(context.Background(), entity.Admin, createRequest())
	require.NoError(t, err)

	title := "Hijacked"
	_, err = f.svc.Update(context.Background(), "other-society", entity.RoleSociety, event.ID, dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, errorz.Forbidden)

	_, err = f.svc.Update(context.Background(), "student-1", entity.Student, event.ID, dto.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, errorz.Forbidden)

	// Admin may update any event.
	_, err = f.svc.Update(context.Background(), "admin-1", entity.Admin, event.ID, dto.UpdateEventRequest{Title: &title})
	assert.NoError(t, err)
}

func TestEventService_Delete(t *testing.T) {
	f := newEventFixture(t)
	event, _, err := f.svc.Create(context.Background(), entity.Admin, createRequest())
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), "other-society", entity.RoleSociety, event.ID)
	assert.ErrorIs(t, err, errorz.Forbidden)

	err = f.svc.Delete(context.Background(), "society-user-1", entity.RoleSociety, event.ID)
	require.NoError(t, err)

	_, err = f.svc.Get(context.Background(), event.ID)
	assert.ErrorIs(t, err, errorz.NotFound)
}

func TestEventService_WritesInvalidateCache(t *testing.T) {
	f := newEventFixture(t)

	_, _, err := f.svc.Create(context.Background(), entity.Admin, createRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.clears)
}

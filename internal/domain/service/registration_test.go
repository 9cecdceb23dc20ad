package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/entity"
)

func newRegistrationFixture(t *testing.T) (*RegistrationService, *fakeRegistrationStore, *fakeEventStore, *fakeNotificationStore) {
	t.Helper()

	eventStore := newFakeEventStore(&entity.Event{
		ID:        "event-1",
		Title:     "Tech Talk",
		StartsAt:  time.Now().Add(24 * time.Hour),
		SocietyID: "society-user-1",
	})
	userStore := newFakeUserStore(
		&entity.User{ID: "student-1", Name: "Ada", Email: "ada@campus.edu", Role: entity.Student},
		&entity.User{ID: "society-user-1", Name: "Robotics", Email: "robotics@campus.edu", Role: entity.RoleSociety},
	)
	registrationStore := newFakeRegistrationStore()
	notificationStore := newFakeNotificationStore()
	notifier := NewNotificationService(testLogger(), notificationStore)

	svc := NewRegistrationService(testLogger(), registrationStore, eventStore, userStore, notifier)
	return svc, registrationStore, eventStore, notificationStore
}

func TestRegistrationService_Register(t *testing.T) {
	svc, _, _, notificationStore := newRegistrationFixture(t)

	result, err := svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	require.NoError(t, err)

	assert.Equal(t, "student-1", result.Registration.UserID)
	assert.Equal(t, "event-1", result.Registration.EventID)

	require.NotNil(t, result.Notification)
	assert.Contains(t, result.Notification.Message, "Tech Talk")
	assert.Equal(t, "/events/event-1", result.Notification.Link)
	assert.Len(t, notificationStore.forUser("student-1"), 1)
}

func TestRegistrationService_Register_Duplicate(t *testing.T) {
	svc, _, _, _ := newRegistrationFixture(t)

	_, err := svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	assert.ErrorIs(t, err, errorz.Conflict)
}

func TestRegistrationService_Register_ConcurrentDuplicate(t *testing.T) {
	// The pre-check sees nothing but the insert loses against the unique
	// index; the caller still gets the same conflict.
	svc, registrationStore, _, _ := newRegistrationFixture(t)
	registrationStore.forceDuplicate = true

	_, err := svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	assert.ErrorIs(t, err, errorz.Conflict)
}

func TestRegistrationService_Register_RoleGate(t *testing.T) {
	svc, registrationStore, _, _ := newRegistrationFixture(t)

	for _, role := range []entity.Role{entity.RoleSociety, entity.Admin} {
		_, err := svc.Register(context.Background(), "caller", role, "event-1")
		assert.ErrorIs(t, err, errorz.Forbidden, "role %s", role)
	}
	assert.Empty(t, registrationStore.registrations)
}

func TestRegistrationService_Register_EventNotFound(t *testing.T) {
	svc, _, _, _ := newRegistrationFixture(t)

	_, err := svc.Register(context.Background(), "student-1", entity.Student, "missing")
	assert.ErrorIs(t, err, errorz.NotFound)
}

func TestRegistrationService_Register_NotificationFailureKeepsRow(t *testing.T) {
	svc, registrationStore, _, notificationStore := newRegistrationFixture(t)
	notificationStore.createErr = assert.AnError

	result, err := svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	require.NoError(t, err)

	assert.Nil(t, result.Notification)
	assert.Len(t, registrationStore.registrations, 1)
}

func TestRegistrationService_ListForUser_DropsMissingEvents(t *testing.T) {
	svc, _, eventStore, _ := newRegistrationFixture(t)
	eventStore.Create(context.Background(), &entity.Event{ID: "event-2", Title: "Quiz Night", StartsAt: time.Now().Add(48 * time.Hour)})

	_, err := svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "student-1", entity.Student, "event-2")
	require.NoError(t, err)

	require.NoError(t, eventStore.Delete(context.Background(), "event-2"))

	events, err := svc.ListForUser(context.Background(), "student-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "event-1", events[0].ID)
}

func TestRegistrationService_ListForEvent(t *testing.T) {
	svc, _, _, _ := newRegistrationFixture(t)

	_, err := svc.Register(context.Background(), "student-1", entity.Student, "event-1")
	require.NoError(t, err)

	// Owning society sees its registrants.
	registrants, err := svc.ListForEvent(context.Background(), "society-user-1", entity.RoleSociety, "event-1")
	require.NoError(t, err)
	require.Len(t, registrants, 1)
	assert.Equal(t, "student-1", registrants[0].UserID)
	assert.Equal(t, "Ada", registrants[0].Name)

	// Admin sees any event's registrants.
	_, err = svc.ListForEvent(context.Background(), "admin-1", entity.Admin, "event-1")
	assert.NoError(t, err)

	// A foreign society does not.
	_, err = svc.ListForEvent(context.Background(), "other-society", entity.RoleSociety, "event-1")
	assert.ErrorIs(t, err, errorz.Forbidden)

	// Students never see registrant lists.
	_, err = svc.ListForEvent(context.Background(), "student-1", entity.Student, "event-1")
	assert.ErrorIs(t, err, errorz.Forbidden)
}

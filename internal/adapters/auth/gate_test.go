package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:                   "user-1",
		Name:                 "Ada",
		Email:                "ada@campus.edu",
		Role:                 entity.Student,
		SocietyRequestStatus: entity.RequestNone,
	}
}

func TestGate_IssueVerify(t *testing.T) {
	gate := NewGate("test-secret", time.Hour)

	token, err := gate.Issue(testUser())
	require.NoError(t, err)

	claims, err := gate.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, "ada@campus.edu", claims.Email)
	assert.Equal(t, entity.Student, claims.Role)
	assert.Equal(t, entity.RequestNone, claims.SocietyRequestStatus)
}

func TestGate_VerifyExpired(t *testing.T) {
	gate := NewGate("test-secret", -time.Minute)

	token, err := gate.Issue(testUser())
	require.NoError(t, err)

	_, err = gate.Verify(token)
	assert.True(t, errors.Is(err, errorz.Unauthenticated))
}

func TestGate_VerifyWrongSecret(t *testing.T) {
	token, err := NewGate("secret-a", time.Hour).Issue(testUser())
	require.NoError(t, err)

	_, err = NewGate("secret-b", time.Hour).Verify(token)
	assert.True(t, errors.Is(err, errorz.Unauthenticated))
}

func TestGate_VerifyGarbage(t *testing.T) {
	gate := NewGate("test-secret", time.Hour)

	_, err := gate.Verify("not-a-token")
	assert.True(t, errors.Is(err, errorz.Unauthenticated))
}

func TestGate_VerifyUnknownRole(t *testing.T) {
	gate := NewGate("test-secret", time.Hour)
	u := testUser()
	u.Role = entity.Role("superuser")

	token, err := gate.Issue(u)
	require.NoError(t, err)

	_, err = gate.Verify(token)
	assert.True(t, errors.Is(err, errorz.Unauthenticated))
}

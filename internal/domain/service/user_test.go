package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
)

type fakeIssuer struct{}

func (fakeIssuer) Issue(user *entity.User) (string, error) {
	return "token-for-" + user.ID, nil
}

func newUserFixture(t *testing.T) (*UserService, *fakeUserStore) {
	t.Helper()
	store := newFakeUserStore()
	return NewUserService(testLogger(), store, fakeIssuer{}), store
}

func signupFixture() dto.SignupRequest {
	return dto.SignupRequest{
		Name:     "Ada",
		Email:    "ada@campus.edu",
		Password: "hunter2hunter2",
		Phone:    "123",
	}
}

func TestUserService_Signup(t *testing.T) {
	svc, store := newUserFixture(t)

	result, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	assert.Equal(t, "student", result.Role)
	assert.Equal(t, "none", result.SocietyRequestStatus)
	assert.NotEmpty(t, result.Token)

	stored, err := store.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)
	assert.Equal(t, entity.Student, stored.Role)
	// The password is stored hashed, never verbatim.
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")))
}

func TestUserService_Signup_DuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupFixture())
	assert.ErrorIs(t, err, errorz.Conflict)
}

func TestUserService_Login(t *testing.T) {
	svc, _ := newUserFixture(t)
	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ada@campus.edu", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)

	// Wrong password and unknown email fail identically.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "ada@campus.edu", Password: "wrong"})
	assert.ErrorIs(t, err, errorz.Unauthenticated)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@campus.edu", Password: "hunter2hunter2"})
	assert.ErrorIs(t, err, errorz.Unauthenticated)
}

func TestUserService_Update(t *testing.T) {
	svc, store := newUserFixture(t)
	_, err := svc.Signup(context.Background(), signupFixture())
	require.NoError(t, err)
	stored, err := store.GetByEmail(context.Background(), "ada@campus.edu")
	require.NoError(t, err)

	name := "Ada L."
	profile, err := svc.Update(context.Background(), stored.ID, dto.UpdateUserRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", profile.Name)
	assert.Equal(t, "123", profile.Phone)

	me, err := svc.Me(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", me.Name)

	_, err = svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, errorz.NotFound)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
	"github.com/collegevents/backend/pkg/logger/types"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}

type tokenIssuer interface {
	Issue(user *entity.User) (string, error)
}

type UserService struct {
	logger *types.Logger

	storage UserStorage
	issuer  tokenIssuer
}

func NewUserService(logger *types.Logger, storage UserStorage, issuer tokenIssuer) *UserService {
	return &UserService{
		logger: logger,

		storage: storage,
		issuer:  issuer,
	}
}

// Signup creates a student account and logs it in. Every account starts
// as a student; the society role is only reachable through an approved
// society request.
func (s *UserService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.AuthResult, error) {
	_, err := s.storage.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: email already registered", errorz.Conflict)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.Create(ctx, &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         entity.Student,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already registered", errorz.Conflict)
		}
		return nil, err
	}

	return s.authResult(user)
}

// Login verifies credentials and mints a token. Wrong email and wrong
// password fail identically.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResult, error) {
	user, err := s.storage.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", errorz.Unauthenticated)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, fmt.Errorf("%w: invalid credentials", errorz.Unauthenticated)
	}

	return s.authResult(user)
}

func (s *UserService) authResult(user *entity.User) (*dto.AuthResult, error) {
	token, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResult{
		Token:                token,
		Role:                 string(user.Role),
		SocietyRequestStatus: string(user.SocietyRequestStatus),
	}, nil
}

// Me returns the caller's profile.
func (s *UserService) Me(ctx context.Context, callerID string) (*dto.Profile, error) {
	user, err := s.storage.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}
	profile := dto.NewProfileFromEntity(*user)
	return &profile, nil
}

// Update changes the caller's contact fields. Role and email are not
// editable here.
func (s *UserService) Update(ctx context.Context, callerID string, req dto.UpdateUserRequest) (*dto.Profile, error) {
	user, err := s.storage.Get(ctx, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.NotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}

	updated, err := s.storage.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := dto.NewProfileFromEntity(*updated)
	return &profile, nil
}

package dto

import "github.com/collegevents/backend/internal/domain/entity"

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResult carries the signed bearer token plus the fields the original
// client reads off the auth responses.
type AuthResult struct {
	Token                string `json:"token"`
	Role                 string `json:"role"`
	SocietyRequestStatus string `json:"societyRequestStatus"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// Profile is a user without credential material.
type Profile struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	Role                 string `json:"role"`
	SocietyRequestStatus string `json:"societyRequestStatus"`
}

func NewProfileFromEntity(u entity.User) Profile {
	return Profile{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		Phone:                u.Phone,
		Role:                 string(u.Role),
		SocietyRequestStatus: string(u.SocietyRequestStatus),
	}
}

package dto

import (
	"time"

	"github.com/collegevents/backend/internal/domain/entity"
)

type SocietyRequestRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone"`
}

type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
}

// SocietyRequest is a pending request joined to its president's identity,
// as listed for admins.
type SocietyRequest struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PresidentID    string    `json:"presidentId"`
	PresidentName  string    `json:"presidentName"`
	PresidentEmail string    `json:"presidentEmail"`
	RequestStatus  string    `json:"requestStatus"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewSocietyRequest(s entity.Society, president entity.User) SocietyRequest {
	return SocietyRequest{
		ID:             s.ID,
		Name:           s.Name,
		Description:    s.Description,
		Email:          s.Email,
		Phone:          s.Phone,
		PresidentID:    s.PresidentID,
		PresidentName:  president.Name,
		PresidentEmail: president.Email,
		RequestStatus:  string(s.RequestStatus),
		CreatedAt:      s.CreatedAt,
	}
}

// DecisionResult is the admin decision response.
type DecisionResult struct {
	Message      string        `json:"message"`
	Notification *Notification `json:"notification,omitempty"`
}

type UpdateSocietyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
}

// OwnedEvent is an event joined to its registrant list, as served to the
// owning society (or all events, for admins).
type OwnedEvent struct {
	Event
	Registrations []EventRegistrant `json:"registrations"`
}

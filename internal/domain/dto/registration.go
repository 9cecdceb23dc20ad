package dto

import (
	"time"

	"github.com/collegevents/backend/internal/domain/entity"
)

type Registration struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	EventID   string    `json:"eventId"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewRegistrationFromEntity(r entity.Registration) Registration {
	return Registration{
		ID:        r.ID,
		UserID:    r.UserID,
		EventID:   r.EventID,
		CreatedAt: r.CreatedAt,
	}
}

// RegistrationResult is the register response: the new row plus the
// best-effort notification (nil when the fan-out write failed).
type RegistrationResult struct {
	Registration Registration  `json:"registration"`
	Notification *Notification `json:"notification,omitempty"`
}

// EventRegistrant is a registration joined to minimal user identity,
// as exposed to the owning society or an admin.
type EventRegistrant struct {
	RegistrationID string    `json:"registrationId"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RegisteredAt   time.Time `json:"registeredAt"`
}

package dto

import (
	"time"

	"github.com/collegevents/backend/internal/domain/entity"
)

// Wire formats for the split date and time fields. They are combined into
// a single normalized timestamp at write time and rendered back on reads.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type CreateEventRequest struct {
	Title              string `json:"title" validate:"required"`
	Date               string `json:"date" validate:"required"`
	Time               string `json:"time" validate:"required"`
	Location           string `json:"location" validate:"required"`
	Description        string `json:"description" validate:"required"`
	Guest              string `json:"guest"`
	RegistrationStatus string `json:"registrationStatus"`
	CoverImageURL      string `json:"coverImageURL"`
	Category           string `json:"eventCategory"`
	SocietyID          string `json:"societyId" validate:"required"`
}

// UpdateEventRequest carries only the allow-listed mutable fields.
// SocietyID is deliberately absent: ownership is immutable post-creation.
type UpdateEventRequest struct {
	Title              *string `json:"title"`
	Date               *string `json:"date"`
	Time               *string `json:"time"`
	Location           *string `json:"location"`
	Description        *string `json:"description"`
	Guest              *string `json:"guest"`
	RegistrationStatus *string `json:"registrationStatus"`
	CoverImageURL      *string `json:"coverImageURL"`
	Category           *string `json:"eventCategory"`
}

type Event struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Location           string `json:"location"`
	Description        string `json:"description"`
	Guest              string `json:"guest"`
	RegistrationStatus string `json:"registrationStatus"`
	CoverImageURL      string `json:"coverImageURL"`
	Category           string `json:"eventCategory"`
	SocietyID          string `json:"societyId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

func NewEventFromEntity(event entity.Event) Event {
	return Event{
		ID:                 event.ID,
		Title:              event.Title,
		Date:               event.StartsAt.Format(DateLayout),
		Time:               event.StartsAt.Format(TimeLayout),
		Location:           event.Location,
		Description:        event.Description,
		Guest:              event.Guest,
		RegistrationStatus: event.RegistrationStatus,
		CoverImageURL:      event.CoverImageURL,
		Category:           event.Category,
		SocietyID:          event.SocietyID,
		CreatedAt:          event.CreatedAt,
	}
}

func NewEventsFromEntities(events []entity.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventFromEntity(e))
	}
	return out
}

package entity

import (
	"fmt"
	"time"
)

type Event struct {
	ID                 string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Title              string `gorm:"not null"`
	StartsAt           time.Time `gorm:"not null;index"`
	Location           string `gorm:"not null"`
	Description        string `gorm:"not null"`
	Guest              string
	RegistrationStatus string
	CoverImageURL      string
	Category           string
	// SocietyID is the owning society-role user. Set once at creation,
	// never reassignable.
	SocietyID string `gorm:"type:uuid;index"`
}

// IsPast reports whether the event's start is strictly before now.
// Classification is never stored; every listing recomputes it.
func (e *Event) IsPast(now time.Time) bool {
	return e.StartsAt.Before(now)
}

// Link is the public path to the event, used as the notification link.
func (e *Event) Link() string {
	return fmt.Sprintf("/events/%s", e.ID)
}

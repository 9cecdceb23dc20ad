package entity

import "time"

// SocietyStatus is the request state machine: pending is the only initial
// state, approved and rejected are terminal.
type SocietyStatus string

const (
	SocietyPending  SocietyStatus = "pending"
	SocietyApproved SocietyStatus = "approved"
	SocietyRejected SocietyStatus = "rejected"
)

func (s SocietyStatus) Terminal() bool {
	return s == SocietyApproved || s == SocietyRejected
}

type Society struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Description string
	Email       string `gorm:"not null"`
	Phone       string
	// PresidentID is the requesting user; their role flips to Society on
	// approval.
	PresidentID   string        `gorm:"not null;type:uuid;index"`
	RequestStatus SocietyStatus `gorm:"not null;default:pending"`
}

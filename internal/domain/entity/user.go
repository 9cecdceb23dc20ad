package entity

import "time"

// Role is the closed set of account roles. Authorization switches over it
// exhaustively; there is no downgrade path from Society.
type Role string

const (
	Student Role = "student"
	RoleSociety Role = "society"
	Admin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case Student, RoleSociety, Admin:
		return true
	}
	return false
}

// SocietyRequestStatus tracks a user's petition to found a society.
type SocietyRequestStatus string

const (
	RequestNone     SocietyRequestStatus = "none"
	RequestPending  SocietyRequestStatus = "pending"
	RequestApproved SocietyRequestStatus = "approved"
	RequestRejected SocietyRequestStatus = "rejected"
)

type User struct {
	ID                   string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Name                 string `gorm:"not null"`
	Email                string `gorm:"not null;uniqueIndex"`
	PasswordHash         string `gorm:"not null"`
	Phone                string
	Role                 Role                 `gorm:"not null;default:student"`
	SocietyRequestStatus SocietyRequestStatus `gorm:"not null;default:none"`
}

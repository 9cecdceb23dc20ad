package entity

import "time"

// Registration is a student's claim on an event seat. Rows are immutable
// after creation and never deleted; the composite unique index is the
// authoritative guard against double registration under concurrency.
type Registration struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null"`
	UserID    string    `gorm:"not null;type:uuid;uniqueIndex:idx_registrations_user_event"`
	EventID   string    `gorm:"not null;type:uuid;uniqueIndex:idx_registrations_user_event"`
}

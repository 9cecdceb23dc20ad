package entity

import "time"

// Query is a support message from a user, optionally answered by an admin.
type Query struct {
	ID        string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"not null;type:uuid;index"`
	Name      string
	Email     string
	Message   string `gorm:"not null"`
	Reply     string
}

package entity

import "time"

type Announcement struct {
	ID         string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Title      string `gorm:"not null"`
	Message    string `gorm:"not null"`
	AuthorID   string `gorm:"not null;type:uuid"`
	AuthorRole Role   `gorm:"not null"`
}

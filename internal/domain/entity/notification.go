package entity

import "time"

type Notification struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"not null;index"`
	UserID    string    `gorm:"not null;type:uuid;index"`
	Message   string    `gorm:"not null"`
	Link      string
	IsRead    bool `gorm:"not null;default:false"`
}

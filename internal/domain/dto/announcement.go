package dto

import (
	"time"

	"github.com/collegevents/backend/internal/domain/entity"
)

type CreateAnnouncementRequest struct {
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	SocietyID string `json:"societyId" validate:"required"`
}

type Announcement struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	AuthorID   string    `json:"authorId"`
	AuthorRole string    `json:"authorRole"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewAnnouncementFromEntity(a entity.Announcement) Announcement {
	return Announcement{
		ID:         a.ID,
		Title:      a.Title,
		Message:    a.Message,
		AuthorID:   a.AuthorID,
		AuthorRole: string(a.AuthorRole),
		CreatedAt:  a.CreatedAt,
	}
}

package dto

import (
	"time"

	"github.com/collegevents/backend/internal/domain/entity"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewNotificationFromEntity(n entity.Notification) Notification {
	return Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Link:      n.Link,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// BroadcastResult is the per-recipient tally of a fan-out. A batch is not
// all-or-nothing: the triggering write stands regardless, and Failed makes
// partial delivery observable instead of silent.
type BroadcastResult struct {
	Requested int `json:"requested"`
	Created   int `json:"created"`
	Failed    int `json:"failed"`
}

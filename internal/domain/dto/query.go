package dto

import (
	"time"

	"github.com/collegevents/backend/internal/domain/entity"
)

type CreateQueryRequest struct {
	Message string `json:"message" validate:"required"`
}

type ReplyQueryRequest struct {
	Reply string `json:"reply" validate:"required"`
}

type Query struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewQueryFromEntity(q entity.Query) Query {
	return Query{
		ID:        q.ID,
		UserID:    q.UserID,
		Name:      q.Name,
		Email:     q.Email,
		Message:   q.Message,
		Reply:     q.Reply,
		CreatedAt: q.CreatedAt,
	}
}

func NewQueriesFromEntities(queries []entity.Query) []Query {
	out := make([]Query, 0, len(queries))
	for _, q := range queries {
		out = append(out, NewQueryFromEntity(q))
	}
	return out
}

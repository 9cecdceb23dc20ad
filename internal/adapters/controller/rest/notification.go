package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

type NotificationHandler struct {
	logger        *types.Logger
	notifications *service.NotificationService
	gate          *auth.Gate
}

func NewNotificationHandler(logger *types.Logger, notifications *service.NotificationService, gate *auth.Gate) *NotificationHandler {
	return &NotificationHandler{logger: logger, notifications: notifications, gate: gate}
}

func (h *NotificationHandler) Register(r chi.Router) {
	r.Route("/notifications", func(r chi.Router) {
		r.Use(RequireAuth(h.gate, h.logger))
		r.Get("/", h.list)
		r.Patch("/{id}/read", h.markRead)
		r.Delete("/delete-read", h.deleteRead)
	})
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	notifications, err := h.notifications.ListRecent(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	out := make([]dto.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, dto.NewNotificationFromEntity(n))
	}
	writeJSON(w, http.StatusOK, out)
}

type markReadRequest struct {
	IsRead *bool `json:"isRead"`
}

func (h *NotificationHandler) markRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	// An absent or empty body means "mark as read".
	isRead := true
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err == nil && req.IsRead != nil {
		isRead = *req.IsRead
	}

	notification, err := h.notifications.MarkRead(r.Context(), claims.UserID, chi.URLParam(r, "id"), isRead)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewNotificationFromEntity(*notification))
}

type deleteReadResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *NotificationHandler) deleteRead(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	deleted, err := h.notifications.DeleteAllRead(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteReadResponse{Deleted: deleted})
}

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

type AnnouncementHandler struct {
	logger        *types.Logger
	announcements *service.AnnouncementService
	gate          *auth.Gate
}

func NewAnnouncementHandler(logger *types.Logger, announcements *service.AnnouncementService, gate *auth.Gate) *AnnouncementHandler {
	return &AnnouncementHandler{logger: logger, announcements: announcements, gate: gate}
}

func (h *AnnouncementHandler) Register(r chi.Router) {
	r.Route("/announcements", func(r chi.Router) {
		r.Get("/", h.list)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.gate, h.logger))
			r.Post("/", h.create)
		})
	})
}

func (h *AnnouncementHandler) create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.CreateAnnouncementRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	announcement, err := h.announcements.Create(r.Context(), claims.UserID, claims.Role, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewAnnouncementFromEntity(*announcement))
}

func (h *AnnouncementHandler) list(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.announcements.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, announcements)
}

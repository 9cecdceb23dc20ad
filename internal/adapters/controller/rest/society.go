package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

type SocietyHandler struct {
	logger    *types.Logger
	societies *service.SocietyService
	gate      *auth.Gate
}

func NewSocietyHandler(logger *types.Logger, societies *service.SocietyService, gate *auth.Gate) *SocietyHandler {
	return &SocietyHandler{logger: logger, societies: societies, gate: gate}
}

func (h *SocietyHandler) Register(r chi.Router) {
	r.Route("/societies", func(r chi.Router) {
		r.Use(RequireAuth(h.gate, h.logger))
		r.Post("/request", h.request)
		r.Get("/my-events", h.ownedEvents)
		r.Get("/me", h.profile)
		r.Put("/me", h.updateProfile)
	})
}

func (h *SocietyHandler) request(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.SocietyRequestRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	society, err := h.societies.Request(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, society)
}

func (h *SocietyHandler) ownedEvents(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	owned, err := h.societies.OwnedEvents(r.Context(), claims.UserID, claims.Role)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, owned)
}

func (h *SocietyHandler) profile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	profile, err := h.societies.Profile(r.Context(), claims.UserID, claims.Role)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *SocietyHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.UpdateSocietyRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	profile, err := h.societies.UpdateProfile(r.Context(), claims.UserID, claims.Role, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

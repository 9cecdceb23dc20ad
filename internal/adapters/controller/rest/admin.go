package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/entity"
	"github.com/collegevents/backend/internal/domain/policy"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

// AdminHandler is the admin queue over society requests.
type AdminHandler struct {
	logger    *types.Logger
	societies *service.SocietyService
	gate      *auth.Gate
}

func NewAdminHandler(logger *types.Logger, societies *service.SocietyService, gate *auth.Gate) *AdminHandler {
	return &AdminHandler{logger: logger, societies: societies, gate: gate}
}

func (h *AdminHandler) Register(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(RequireAuth(h.gate, h.logger))
		r.Get("/society-requests", h.listRequests)
		r.Post("/society-requests/{id}/decision", h.decide)
	})
}

func (h *AdminHandler) listRequests(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if !policy.Allowed(claims.Role, policy.DecideSocietyRequest, false) {
		writeError(w, h.logger, errorz.Forbidden)
		return
	}

	pending, err := h.societies.ListPending(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, pending)
}

func (h *AdminHandler) decide(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	if !policy.Allowed(claims.Role, policy.DecideSocietyRequest, false) {
		writeError(w, h.logger, errorz.Forbidden)
		return
	}

	var req dto.DecisionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.societies.Decide(r.Context(), chi.URLParam(r, "id"), entity.SocietyStatus(req.Decision))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

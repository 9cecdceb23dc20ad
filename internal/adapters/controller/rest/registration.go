package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/adapters/metrics"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

type RegistrationHandler struct {
	logger        *types.Logger
	registrations *service.RegistrationService
	gate          *auth.Gate
	metrics       *metrics.Metrics
}

func NewRegistrationHandler(logger *types.Logger, registrations *service.RegistrationService, gate *auth.Gate, m *metrics.Metrics) *RegistrationHandler {
	return &RegistrationHandler{logger: logger, registrations: registrations, gate: gate, metrics: m}
}

func (h *RegistrationHandler) Register(r chi.Router) {
	r.Route("/registers", func(r chi.Router) {
		r.Use(RequireAuth(h.gate, h.logger))
		r.Post("/{eventId}", h.register)
		r.Get("/my", h.listMine)
		r.Get("/{eventId}/registrations", h.listForEvent)
	})
}

func (h *RegistrationHandler) register(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	result, err := h.registrations.Register(r.Context(), claims.UserID, claims.Role, chi.URLParam(r, "eventId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RegistrationsCreated.Inc()
	if result.Notification != nil {
		h.metrics.NotificationsCreated.Inc()
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *RegistrationHandler) listMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	events, err := h.registrations.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *RegistrationHandler) listForEvent(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	registrants, err := h.registrations.ListForEvent(r.Context(), claims.UserID, claims.Role, chi.URLParam(r, "eventId"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, registrants)
}

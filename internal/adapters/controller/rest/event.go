package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
	"github.com/collegevents/backend/pkg/qrcode"
)

type EventHandler struct {
	logger *types.Logger
	events *service.EventService
	gate   *auth.Gate
}

func NewEventHandler(logger *types.Logger, events *service.EventService, gate *auth.Gate) *EventHandler {
	return &EventHandler{logger: logger, events: events, gate: gate}
}

func (h *EventHandler) Register(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		// Listings and single events are public.
		r.Get("/", h.list)
		r.Get("/upcoming", h.listUpcoming)
		r.Get("/past", h.listPast)
		r.Get("/{id}", h.get)
		r.Get("/{id}/qr", h.qr)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.gate, h.logger))
			r.Post("/add", h.create)
			r.Put("/{id}", h.update)
			r.Delete("/{id}", h.delete)
		})
	})
}

type createEventResponse struct {
	Event     dto.Event           `json:"event"`
	Broadcast dto.BroadcastResult `json:"broadcast"`
}

func (h *EventHandler) create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.CreateEventRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	event, broadcast, err := h.events.Create(r.Context(), claims.Role, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, createEventResponse{
		Event:     dto.NewEventFromEntity(*event),
		Broadcast: broadcast,
	})
}

func (h *EventHandler) list(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) listUpcoming(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListUpcoming(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) listPast(w http.ResponseWriter, r *http.Request) {
	events, err := h.events.ListPast(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) get(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewEventFromEntity(*event))
}

// qr serves a PNG encoding the event's public link.
func (h *EventHandler) qr(w http.ResponseWriter, r *http.Request) {
	event, err := h.events.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	png, err := qrcode.Generate(event.Link())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *EventHandler) update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.UpdateEventRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	event, err := h.events.Update(r.Context(), claims.UserID, claims.Role, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewEventFromEntity(*event))
}

func (h *EventHandler) delete(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	if err := h.events.Delete(r.Context(), claims.UserID, claims.Role, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

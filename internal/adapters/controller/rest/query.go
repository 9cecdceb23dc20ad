package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

type QueryHandler struct {
	logger  *types.Logger
	queries *service.QueryService
	gate    *auth.Gate
}

func NewQueryHandler(logger *types.Logger, queries *service.QueryService, gate *auth.Gate) *QueryHandler {
	return &QueryHandler{logger: logger, queries: queries, gate: gate}
}

func (h *QueryHandler) Register(r chi.Router) {
	r.Route("/queries", func(r chi.Router) {
		r.Use(RequireAuth(h.gate, h.logger))
		r.Post("/", h.create)
		r.Get("/my", h.listMine)
		r.Get("/", h.listAll)
		r.Put("/{id}", h.reply)
	})
}

func (h *QueryHandler) create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.CreateQueryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	query, err := h.queries.Create(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.NewQueryFromEntity(*query))
}

func (h *QueryHandler) listMine(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	queries, err := h.queries.ListMine(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, queries)
}

func (h *QueryHandler) listAll(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	queries, err := h.queries.ListAll(r.Context(), claims.Role)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, queries)
}

func (h *QueryHandler) reply(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.ReplyQueryRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	query, err := h.queries.Reply(r.Context(), claims.Role, chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewQueryFromEntity(*query))
}

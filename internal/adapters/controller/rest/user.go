package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/domain/dto"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger/types"
)

type UserHandler struct {
	logger *types.Logger
	users  *service.UserService
	gate   *auth.Gate
}

func NewUserHandler(logger *types.Logger, users *service.UserService, gate *auth.Gate) *UserHandler {
	return &UserHandler{logger: logger, users: users, gate: gate}
}

func (h *UserHandler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/add", h.signup)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.gate, h.logger))
			r.Get("/me", h.me)
			r.Put("/update", h.update)
		})
	})
}

func (h *UserHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.users.Signup(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.users.Login(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	profile, err := h.users.Me(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *UserHandler) update(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())

	var req dto.UpdateUserRequest
	if err := decode(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	profile, err := h.users.Update(r.Context(), claims.UserID, req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

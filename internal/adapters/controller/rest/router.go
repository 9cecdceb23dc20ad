package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/collegevents/backend/internal/adapters/metrics"
	"github.com/collegevents/backend/pkg/logger/types"
)

// Handlers is every resource handler the router mounts.
type Handlers struct {
	Users         *UserHandler
	Events        *EventHandler
	Registrations *RegistrationHandler
	Notifications *NotificationHandler
	Societies     *SocietyHandler
	Admin         *AdminHandler
	Announcements *AnnouncementHandler
	Queries       *QueryHandler
}

// NewRouter builds the full route tree: the /api resources, /metrics and
// /healthz.
func NewRouter(logger *types.Logger, m *metrics.Metrics, h Handlers) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(AccessLog(logger))
	r.Use(Observe(m))

	r.Route("/api", func(r chi.Router) {
		h.Users.Register(r)
		h.Events.Register(r)
		h.Registrations.Register(r)
		h.Notifications.Register(r)
		h.Societies.Register(r)
		h.Admin.Register(r)
		h.Announcements.Register(r)
		h.Queries.Register(r)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/adapters/config"
	"github.com/collegevents/backend/internal/adapters/controller/rest"
	"github.com/collegevents/backend/internal/adapters/database/postgres"
	"github.com/collegevents/backend/internal/adapters/metrics"
	"github.com/collegevents/backend/internal/domain/service"
	"github.com/collegevents/backend/pkg/logger"
	"github.com/collegevents/backend/pkg/logger/types"
)

type Server struct {
	httpServer *http.Server
	logger     *types.Logger
}

func New(cfg *config.Config) (*Server, error) {
	serviceLogger, err := logger.Named("service")
	if err != nil {
		return nil, err
	}
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}

	userStorage := postgres.NewUserStorage(cfg.Database)
	eventStorage := postgres.NewEventStorage(cfg.Database)
	registrationStorage := postgres.NewRegistrationStorage(cfg.Database)
	notificationStorage := postgres.NewNotificationStorage(cfg.Database)
	societyStorage := postgres.NewSocietyStorage(cfg.Database)
	announcementStorage := postgres.NewAnnouncementStorage(cfg.Database)
	queryStorage := postgres.NewQueryStorage(cfg.Database)

	gate := auth.NewGate(cfg.JWTSecret, cfg.JWTTTL)

	notificationService := service.NewNotificationService(serviceLogger, notificationStorage)
	userService := service.NewUserService(serviceLogger, userStorage, gate)
	registrationService := service.NewRegistrationService(serviceLogger, registrationStorage, eventStorage, userStorage, notificationService)
	announcementService := service.NewAnnouncementService(serviceLogger, announcementStorage, userStorage)
	queryService := service.NewQueryService(serviceLogger, queryStorage, userStorage)

	// A typed nil mailer must stay a nil interface, so the smtp client is
	// only handed over when it exists.
	var eventService *service.EventService
	var societyService *service.SocietyService
	if cfg.SMTP != nil {
		eventService = service.NewEventService(serviceLogger, eventStorage, userStorage, notificationService, cfg.Redis.Events, cfg.SMTP)
		societyService = service.NewSocietyService(serviceLogger, societyStorage, userStorage, eventStorage, registrationStorage, notificationService, cfg.SMTP)
	} else {
		eventService = service.NewEventService(serviceLogger, eventStorage, userStorage, notificationService, cfg.Redis.Events, nil)
		societyService = service.NewSocietyService(serviceLogger, societyStorage, userStorage, eventStorage, registrationStorage, notificationService, nil)
	}

	m := metrics.New()

	router := rest.NewRouter(httpLogger, m, rest.Handlers{
		Users:         rest.NewUserHandler(httpLogger, userService, gate),
		Events:        rest.NewEventHandler(httpLogger, eventService, gate),
		Registrations: rest.NewRegistrationHandler(httpLogger, registrationService, gate, m),
		Notifications: rest.NewNotificationHandler(httpLogger, notificationService, gate),
		Societies:     rest.NewSocietyHandler(httpLogger, societyService, gate),
		Admin:         rest.NewAdminHandler(httpLogger, societyService, gate),
		Announcements: rest.NewAnnouncementHandler(httpLogger, announcementService, gate),
		Queries:       rest.NewQueryHandler(httpLogger, queryService, gate),
	})

	addr := cfg.HTTPAddr
	if addr == "" {
		addr = ":8080"
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: httpLogger,
	}, nil
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Start() {
	go func() {
		s.logger.Infof("Server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Panicf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	s.logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Graceful shutdown failed: %v", err)
	}
	s.logger.Info("Server stopped")
}

package rest

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/collegevents/backend/internal/adapters/auth"
	"github.com/collegevents/backend/internal/adapters/metrics"
	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/pkg/logger/types"
)

type contextKey string

const claimsKey contextKey = "claims"

// RequireAuth verifies the bearer token and puts the identity claims in
// the request context. Requests without a valid token never reach the
// handler.
func RequireAuth(gate *auth.Gate, logger *types.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, logger, errorz.Unauthenticated)
				return
			}

			claims, err := gate.Verify(token)
			if err != nil {
				writeError(w, logger, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// claimsFrom returns the verified identity, or nil outside RequireAuth.
func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// Observe counts requests and records latency per chi route pattern.
func Observe(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			m.RequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
			m.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}

// AccessLog writes one line per request.
func AccessLog(logger *types.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Infof("%s %s -> %d (%s)", r.Method, r.URL.Path, ww.Status(), time.Since(start))
		})
	}
}

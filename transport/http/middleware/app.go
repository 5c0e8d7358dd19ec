package middleware

import (
	"context"
	"fmt"
	"hostel/config"
	"hostel/infras/metrics"
	"hostel/infras/otel"
	"hostel/shared/cache"
	"hostel/shared/constant"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	otelHTTPScopeName = "http"
	unmatchedRoute    = "unmatched"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	Staff(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	cache   cache.RedisCache
	metrics metrics.Metrics
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, mtr metrics.Metrics) AppMiddleware {
	return &appMiddleware{
		otel:    otel,
		config:  config,
		cache:   cache,
		metrics: mtr,
	}
}

// Tracing opens a span per request and records its latency by route pattern.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		route := unmatchedRoute
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil && routeCtx.RoutePattern() != "" {
			route = routeCtx.RoutePattern()
		}

		scope.SetAttributes(map[string]any{
			"http.route":       route,
			"http.status_code": status,
		})

		a.metrics.ObserveRequest(r.Method, route, status, time.Since(start))
	})
}

// Staff stores the X-Staff-ID header, when present, as the acting staff member.
func (a *appMiddleware) Staff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staff := strings.TrimSpace(r.Header.Get(constant.RequestHeaderStaffID))
		if staff == "" {
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constant.ContextKeyStaffID, staff)))
	})
}

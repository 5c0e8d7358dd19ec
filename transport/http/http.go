package http

import (
	"context"
	"errors"
	"hostel/config"
	_ "hostel/docs" // swagger spec
	"hostel/infras/metrics"
	"hostel/shared/constant"
	"hostel/transport/http/middleware"
	"hostel/transport/http/response"
	"hostel/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Metrics    metrics.Metrics
	State      ServerState

	mux      *chi.Mux
	once     sync.Once
	server   *http.Server
	shutdown []func(context.Context)
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, mtr metrics.Metrics) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Metrics:    mtr,
	}
}

// OnShutdown registers fn to run once the server stopped accepting requests.
func (h *HTTP) OnShutdown(fn func(context.Context)) {
	h.shutdown = append(h.shutdown, fn)
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the router run behind a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.State = ServerStateReady
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.Middleware.Tracing)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/health", h.healthCheck)
	h.mux.Get("/swagger/*", httpSwagger.WrapHandler)

	if h.Config.Metrics.Enable {
		h.mux.Handle(h.Config.Metrics.Path, h.Metrics.Handler())
	}

	h.mux.Group(func(api chi.Router) {
		api.Use(h.Middleware.RateLimit())
		api.Use(h.Middleware.Staff)

		h.Router.SetupRoutes(api)
	})
}

// healthCheck reports unavailable as soon as shutdown starts so load balancers drain the instance.
func (h *HTTP) healthCheck(w http.ResponseWriter, _ *http.Request) {
	switch h.State {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, "OK")
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.State = ServerStateInGracePeriod

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State = ServerStateInCleanupPeriod

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}

	for _, fn := range h.shutdown {
		fn(ctx)
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	healthhandler "arenaku/internal/health/handler"
	"arenaku/pkg/config"
	"arenaku/pkg/contracts"
	"arenaku/pkg/middleware"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// Closer is a background worker the shutdown sequence drains before the
// server stops accepting connections.
type Closer func()

type Application struct {
	cfg            *config.Config
	server         *http.Server
	rateLimiter    *middleware.RateLimiter
	closers        []Closer
	healthHandler  http.Handler
	appHTTPHandler http.Handler
}

func NewApplication() *Application {
	return &Application{}
}

// OnShutdown registers a worker teardown; they run in registration order.
func (a *Application) OnShutdown(c Closer) {
	a.closers = append(a.closers, c)
}

func (a *Application) SetApp(cfg *config.Config, probe healthhandler.Probe, handlers ...contracts.Handler) {
	a.cfg = cfg
	a.setHealthHandler(cfg, probe)
	a.setAppHandler(cfg, handlers...)
	a.setAppServer()
}

func (a *Application) setHealthHandler(cfg *config.Config, probe healthhandler.Probe) {
	healthRouter := httprouter.New()
	healthhandler.NewHealthHandler(probe, cfg.Log).RegisterRoutes(healthRouter)

	var h http.Handler = healthRouter
	h = middleware.RequestLogging(cfg.Log)(h)
	h = middleware.Recovery(cfg.Log)(h)
	a.healthHandler = h
	cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(cfg *config.Config, handlers ...contracts.Handler) {
	appRouter := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(appRouter)
	}

	a.rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.Log)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	var h http.Handler = appRouter
	h = middleware.RequestTimeout(cfg.RequestTimeout)(h)
	h = middleware.RateLimit(a.rateLimiter)(h)
	h = middleware.ContentTypeValidation(cfg.Log)(h)
	h = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(h)
	h = middleware.SecurityHeaders(h)
	h = corsHandler.Handler(h)
	h = middleware.RequestLogging(cfg.Log)(h)
	h = middleware.Recovery(cfg.Log)(h)
	a.appHTTPHandler = h
	cfg.Log.Info("Application endpoints configured with full middleware stack")
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHTTPHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	a.cfg.Log.Info("Stopping background workers...")
	a.rateLimiter.Stop()
	for _, c := range a.closers {
		c()
	}
	a.cfg.Log.Info("Background workers stopped")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/fetchsched/pkg/domain"
	"github.com/umputun/fetchsched/pkg/scheduler"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/providers.go -pkg mocks -skip-ensure -fmt goimports . ProviderManager
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryReader
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/health.go -pkg mocks -skip-ensure -fmt goimports . HealthChecker

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	providers ProviderManager
	history   HistoryReader
	scheduler Scheduler
	storage   HealthChecker
	version   string
	debug     bool
	now       func() time.Time

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ProviderManager changes providers together with their fetch jobs
type ProviderManager interface {
	AddProvider(ctx context.Context, in domain.ProviderInput) (domain.ScheduledProvider, error)
	UpdateProvider(ctx context.Context, id int64, in domain.ProviderInput) (domain.ScheduledProvider, error)
	DeleteProvider(ctx context.Context, id int64) error
	FetchNow(ctx context.Context, id int64) (scheduler.FetchResult, error)
}

// HistoryReader reads providers and their fetched data page by page
type HistoryReader interface {
	ListProviders(ctx context.Context, page, size int) (domain.PaginationResult[domain.Provider], error)
	GetProviderHistory(ctx context.Context, providerID int64, begin, end time.Time, page, size int) (domain.ProviderWithData, error)
}

// Scheduler reports running fetch jobs
type Scheduler interface {
	Jobs() []int64
}

// HealthChecker verifies storage availability
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, providers ProviderManager, history HistoryReader, sched Scheduler, storage HealthChecker,
	version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		providers: providers,
		history:   history,
		scheduler: sched,
		storage:   storage,
		version:   version,
		debug:     debug,
		now:       time.Now,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	httpServer := s.httpServer
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("fetchsched", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("GET /providers", s.listProvidersHandler)
		r.HandleFunc("POST /providers", s.addProviderHandler)
		r.HandleFunc("GET /providers/{id}", s.getProviderHandler)
		r.HandleFunc("PUT /providers/{id}", s.updateProviderHandler)
		r.HandleFunc("DELETE /providers/{id}", s.deleteProviderHandler)
		r.HandleFunc("POST /providers/{id}/fetch", s.fetchProviderHandler)
	})
}

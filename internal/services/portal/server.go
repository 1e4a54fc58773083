// Package portal hosts the browser-facing submissions portal.
package portal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/maitri-healthcare/portal/internal/platform/timeouts"
	portalapp "github.com/maitri-healthcare/portal/internal/services/portal/app"
	module "github.com/maitri-healthcare/portal/internal/services/portal/module"
	"github.com/maitri-healthcare/portal/internal/services/portal/modules"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/authctx"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/httpx"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/observability"
	"github.com/maitri-healthcare/portal/internal/services/portal/platform/requestmeta"
	"github.com/maitri-healthcare/portal/internal/services/portal/routepath"
	"github.com/maitri-healthcare/portal/internal/services/portal/session"
	portalstatic "github.com/maitri-healthcare/portal/internal/services/portal/static"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const tracingOperation = "portal.http"

// Config defines startup inputs for the portal service.
type Config struct {
	HTTPAddr string
	// Backend serves login, signup and submissions. Nil leaves every
	// backend operation unavailable.
	Backend modules.Backend
	// SessionStore persists sessions. Nil uses an in-memory store.
	SessionStore        session.Store
	SessionTTL          time.Duration
	TrustForwardedProto bool
	// Location is the display timezone. Nil means UTC.
	Location *time.Location
	// Metrics receives request and backend metrics. Nil registers a fresh set.
	Metrics *observability.Metrics
	Logger  *log.Logger
}

// Server hosts the portal HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   session.Store
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	store := cfg.SessionStore
	if store == nil {
		store = session.NewMemoryStore()
	}
	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	sessions := session.NewManager(store, cfg.SessionTTL, policy)

	deps := module.Dependencies{
		Sessions:     sessions,
		SchemePolicy: policy,
		Location:     cfg.Location,
		Metrics:      metrics,
		Logger:       logger,
	}
	h, err := portalapp.Composer{}.Compose(portalapp.ComposeInput{
		Dependencies:     deps,
		PublicModules:    modules.DefaultPublicModules(cfg.Backend),
		ProtectedModules: modules.DefaultProtectedModules(cfg.Backend),
	})
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(portalstatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, metrics.Handler())
	rootMux.Handle("/", h)

	handler := httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		metrics.Instrument(routepath.Label),
		authctx.Middleware(sessions),
	)
	return otelhttp.NewHandler(handler, tracingOperation,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + routepath.Label(r.URL.Path)
		}),
	), nil
}

// NewServer validates config and constructs a portal server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose portal handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		sessions: cfg.SessionStore,
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portal server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown portal http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve portal http: %w", err)
	}
}

// Close closes the HTTP server and the session store.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.sessions != nil {
		if err := s.sessions.Close(); err != nil {
			log.Printf("close session store: %v", err)
		}
	}
}

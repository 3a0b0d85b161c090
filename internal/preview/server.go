// Package preview serves the component gallery used during development.
//
// The server renders every component in the kit on a single page and keeps a
// WebSocket channel open so notifications can be driven live: each connection
// owns its own notification center, and every list change pushes a freshly
// rendered toast viewport fragment to the browser.
package preview

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-go/vangoui/pkg/render"
	"github.com/vango-go/vangoui/pkg/ui"
)

const defaultAddr = ":8420"

// Server hosts the gallery page, the metrics endpoint, and the live
// notification channel.
type Server struct {
	addr     string
	logger   *slog.Logger
	registry *prometheus.Registry
	position ui.Position

	renderer *render.Renderer
	tracer   trace.Tracer
	upgrader websocket.Upgrader
	metrics  *serverMetrics

	httpServer *http.Server
}

// Option configures the preview server.
type Option func(*Server)

// WithAddr sets the listen address. Defaults to :8420.
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRegistry sets the Prometheus registry backing /metrics.
// When unset a private registry is created.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// WithPosition places the toast viewport on the gallery page.
func WithPosition(position ui.Position) Option {
	return func(s *Server) {
		s.position = position
	}
}

// New creates a preview server.
func New(opts ...Option) *Server {
	s := &Server{
		addr:     defaultAddr,
		position: ui.PositionBottomRight,
		renderer: render.NewRenderer(render.Config{}),
		tracer:   otel.Tracer("vangoui/preview"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// The gallery is a local development tool.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "preview")
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newServerMetrics(s.registry)
	return s
}

// Handler returns the HTTP handler serving the gallery, /metrics, and /ws.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleGallery)
	r.Get("/ws", s.handleWebSocket)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// Start runs the HTTP server until ListenAndServe returns.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("preview server listening", "addr", s.addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// handleGallery renders the full component showcase page.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderToWriter(w, galleryPage(s.position)); err != nil {
		s.logger.Error("gallery render failed", "error", err)
	}
}

// serverMetrics tracks preview server activity.
type serverMetrics struct {
	connections prometheus.Counter
	messages    *prometheus.CounterVec
}

func newServerMetrics(registry prometheus.Registerer) *serverMetrics {
	connections := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "vangoui",
		Subsystem: "preview",
		Name:      "ws_connections_total",
		Help:      "Total WebSocket connections accepted by the preview server.",
	})
	messages := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vangoui",
		Subsystem: "preview",
		Name:      "ws_messages_total",
		Help:      "Total WebSocket messages received, by operation.",
	}, []string{"op"})
	registry.MustRegister(connections, messages)
	return &serverMetrics{connections: connections, messages: messages}
}

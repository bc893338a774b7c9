// Package httpapi exposes the converter as a stateless JSON API over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tmsim/tmconv"
	"github.com/tmsim/tmconv/internal/logging"
	"github.com/tmsim/tmconv/internal/presentation/graph"
	"github.com/tmsim/tmconv/pkg/domain"
)

// maxSourceBytes caps request bodies; machine descriptions are tiny and
// anything larger is almost certainly a mistake.
const maxSourceBytes = 1 << 20

// ConversionCache is the optional cache consulted before converting.
type ConversionCache interface {
	Get(ctx context.Context, source string) (*domain.Configuration, error)
	Put(ctx context.Context, source string, cfg *domain.Configuration) error
}

// Server handles conversion requests.
type Server struct {
	converter *tmconv.Converter
	cache     ConversionCache
	logger    *slog.Logger
	metrics   *metrics
}

// ServerOption configures the HTTP server.
type ServerOption func(*Server)

// WithCache attaches a conversion cache. Cache failures are logged and
// degrade to a plain conversion; they never fail a request.
func WithCache(cache ConversionCache) ServerOption {
	return func(s *Server) {
		s.cache = cache
	}
}

// WithLogger injects a request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the converter.
func NewHandler(converter *tmconv.Converter, opts ...ServerOption) http.Handler {
	s := &Server{
		converter: converter,
		logger:    logging.NewNop(),
		metrics:   newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Post("/convert", s.handleConvert)
	r.Post("/graph", s.handleGraph)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return r
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	source, ok := s.readSource(w, r)
	if !ok {
		return
	}

	if cfg := s.cachedConfiguration(r.Context(), source); cfg != nil {
		s.metrics.cacheHits.Inc()
		s.metrics.conversions.WithLabelValues("ok").Inc()
		s.writeJSON(w, http.StatusOK, cfg)
		return
	}

	cfg, err := s.converter.ConvertString(source)
	if err != nil {
		s.writeConversionError(w, err)
		return
	}

	s.metrics.conversions.WithLabelValues("ok").Inc()
	s.storeConfiguration(r.Context(), source, cfg)
	s.writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	source, ok := s.readSource(w, r)
	if !ok {
		return
	}

	cfg, err := s.converter.ConvertString(source)
	if err != nil {
		s.writeConversionError(w, err)
		return
	}

	s.metrics.conversions.WithLabelValues("ok").Inc()
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, graph.GenerateMermaid(cfg))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": tmconv.Version,
	})
}

func (s *Server) readSource(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxSourceBytes))
	if err != nil {
		s.metrics.conversions.WithLabelValues("read_error").Inc()
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return "", false
	}

	source := string(body)
	s.metrics.sourceLines.Observe(float64(strings.Count(source, "\n") + 1))
	return source, true
}

func (s *Server) cachedConfiguration(ctx context.Context, source string) *domain.Configuration {
	if s.cache == nil {
		return nil
	}
	cfg, err := s.cache.Get(ctx, source)
	if err != nil {
		return nil
	}
	return cfg
}

func (s *Server) storeConfiguration(ctx context.Context, source string, cfg *domain.Configuration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, source, cfg); err != nil {
		s.logger.Warn("failed to cache conversion", "error", err)
	}
}

func (s *Server) writeConversionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingAlphabet):
		s.metrics.conversions.WithLabelValues("missing_alphabet").Inc()
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrMissingTape):
		s.metrics.conversions.WithLabelValues("missing_tape").Inc()
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		s.metrics.conversions.WithLabelValues("error").Inc()
		s.logger.Error("conversion failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "conversion failed")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

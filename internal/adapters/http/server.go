package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/cadenza/internal/metrics"
	"github.com/aretw0/cadenza/pkg/domain"
)

// Engine defines the interface the HTTP adapter needs from the Cadenza core.
type Engine interface {
	Generate(ctx context.Context) (*domain.Progression, error)
	Config() domain.Config
}

// EngineFactory builds an engine for a per-request configuration. The core
// treats configuration as immutable per engine instance, so request-level
// overrides get a fresh engine.
type EngineFactory func(cfg domain.Config) (Engine, error)

// Server exposes progression generation as a stateless JSON API.
type Server struct {
	factory EngineFactory
	base    domain.Config
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewHandler creates a new HTTP handler around an engine factory. base is
// the configuration used when a request carries no overrides; m may be nil
// to disable the /metrics route.
func NewHandler(factory EngineFactory, base domain.Config, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	s := &Server{factory: factory, base: base, metrics: m, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/net", s.handleNet)
	r.Post("/generate", s.handleGenerate)
	if m != nil {
		r.Handle("/metrics", m.Handler())
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNet returns the configured transition net and qualities.
func (s *Server) handleNet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"net":             s.base.Net,
		"chord_qualities": s.base.ChordQualities,
	})
}

// handleGenerate runs one generation. The optional JSON body holds partial
// configuration overrides merged over the server's base config.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.requestConfig(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	eng, err := s.factory(cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	start := time.Now()
	prog, err := eng.Generate(r.Context())
	if s.metrics != nil {
		s.metrics.GenerateDuration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.GenerationErrors.Inc()
		}
		var cfgErr *domain.ConfigurationError
		if errors.As(err, &cfgErr) {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		s.logger.Error("generate failed", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if s.metrics != nil {
		s.metrics.GenerationsTotal.Inc()
	}

	writeJSON(w, http.StatusOK, prog)
}

// requestConfig merges the request body, if any, over the base config.
// The body is decoded into a generic map first and then mapped onto the
// Config struct; mapstructure's weak typing converts the string-keyed net
// of JSON ("{\"1\": [2]}") back to integer vertex ids.
func (s *Server) requestConfig(r *http.Request) (domain.Config, error) {
	cfg := s.base
	cfg.Net = s.base.Net.Clone()
	cfg.ChordQualities = append([]string(nil), s.base.ChordQualities...)

	if r.Body == nil || r.ContentLength == 0 {
		return cfg, nil
	}

	var overrides map[string]any
	if err := json.NewDecoder(r.Body).Decode(&overrides); err != nil {
		return domain.Config{}, err
	}
	if len(overrides) == 0 {
		return cfg, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return domain.Config{}, err
	}
	if err := dec.Decode(overrides); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

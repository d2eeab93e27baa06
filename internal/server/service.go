// Package server exposes the projection calculator over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/theirongolddev/kapital/internal/horizon"
	"github.com/theirongolddev/kapital/internal/model"
	"github.com/theirongolddev/kapital/internal/pipeline"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr     string
	Scenario model.Scenario // base inputs for parameters a request omits
	Horizon  horizon.Bucket

	// Tracer records one span per projection request. Defaults to the
	// global provider, which is a no-op unless one is registered.
	Tracer trace.Tracer
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time      `json:"started_at"`
	Requests     int64          `json:"requests"`
	LastError    string         `json:"last_error,omitempty"`
	BaseScenario model.Scenario `json:"base_scenario"`
	BaseHorizon  string         `json:"base_horizon"`
}

// HorizonInfo describes one selectable bucket at /v1/horizons.
type HorizonInfo struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Days   int    `json:"days"`
	Stride int    `json:"stride"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Service serves projections. Each request recomputes from day 0; only the
// request counter and last error are shared between requests.
type Service struct {
	cfg Config

	mu        sync.RWMutex
	startedAt time.Time
	requests  int64
	lastError string
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	if !cfg.Horizon.Valid() {
		cfg.Horizon = horizon.Month
	}
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer("github.com/theirongolddev/kapital/internal/server")
	}
	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Handler returns the HTTP routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/horizons", s.handleHorizons)
	mux.HandleFunc("/v1/projection", s.handleProjection)
	return mux
}

// Run serves HTTP until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("kapital http server: %w", err)
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	st := Status{
		StartedAt:    s.startedAt,
		Requests:     s.requests,
		LastError:    s.lastError,
		BaseScenario: s.cfg.Scenario,
		BaseHorizon:  s.cfg.Horizon.Key(),
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, st)
}

func (s *Service) handleHorizons(w http.ResponseWriter, _ *http.Request) {
	all := horizon.All()
	out := make([]HorizonInfo, 0, len(all))
	for _, b := range all {
		out = append(out, HorizonInfo{
			Key:    b.Key(),
			Label:  b.Label(),
			Days:   b.Days(),
			Stride: b.Stride(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleProjection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: "method not allowed"})
		return
	}

	_, span := s.cfg.Tracer.Start(r.Context(), "kapital.projection")
	defer span.End()

	sc, bucket, err := s.parseRequest(r.URL.Query())
	if err == nil {
		var rep model.Report
		rep, err = pipeline.Run(sc, bucket)
		if err == nil {
			span.SetAttributes(
				attribute.String("kapital.horizon", rep.Horizon),
				attribute.Int("kapital.horizon_days", rep.Scenario.HorizonDays),
				attribute.Int("kapital.points", len(rep.Capital.Points)),
			)
			s.record("")
			writeJSON(w, http.StatusOK, rep)
			return
		}
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.record(err.Error())
	log.Printf("kapital projection rejected: %v", err)
	writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
}

// parseRequest overlays query parameters onto the base scenario.
func (s *Service) parseRequest(q url.Values) (model.Scenario, horizon.Bucket, error) {
	sc := s.cfg.Scenario
	bucket := s.cfg.Horizon

	fields := []struct {
		name string
		dst  *float64
	}{
		{"investors", &sc.StartingInvestors},
		{"capital", &sc.StartingCapital},
		{"contribution", &sc.MonthlyContribution},
		{"growth", &sc.DailyGrowthPct},
		{"fee", &sc.FeePct},
		{"investor_growth", &sc.MonthlyInvestorGrowthPct},
	}
	for _, f := range fields {
		raw := strings.TrimSpace(q.Get(f.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return sc, bucket, fmt.Errorf("parameter %s: invalid number %q", f.name, raw)
		}
		*f.dst = v
	}

	if raw := q.Get("horizon"); raw != "" {
		b, err := horizon.Parse(raw)
		if err != nil {
			return sc, bucket, err
		}
		bucket = b
		sc.HorizonDays = 0
	}

	if raw := strings.TrimSpace(q.Get("days")); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil || d < 1 {
			return sc, bucket, fmt.Errorf("parameter days: want a positive integer, got %q", raw)
		}
		sc.HorizonDays = d
	}

	return sc, bucket, nil
}

func (s *Service) record(errMsg string) {
	s.mu.Lock()
	s.requests++
	if errMsg != "" {
		s.lastError = errMsg
	}
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

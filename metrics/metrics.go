// Package metrics exposes gameplay counters in Prometheus format
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/core"
)

const shutdownTimeout = 2 * time.Second

// Metrics counts gameplay events on a private registry
type Metrics struct {
	registry *prometheus.Registry

	frames       prometheus.Counter
	frameSeconds prometheus.Histogram
	points       *prometheus.CounterVec
	games        *prometheus.CounterVec
	matches      *prometheus.CounterVec
	paddleHits   *prometheus.CounterVec
	wallBounces  prometheus.Counter
}

// New creates and registers the collectors under namespace
func New(namespace string) *Metrics {
	side := []string{"side"}
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "frames_total",
			Help:      "Number of frames updated",
		}),
		frameSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "frame_duration_seconds",
			Help:      "Time spent updating and drawing one frame",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 8),
		}),
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "points_total",
			Help:      "Points scored",
		}, side),
		games: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_won_total",
			Help:      "Games won",
		}, side),
		matches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_won_total",
			Help:      "Matches won",
		}, side),
		paddleHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paddle_hits_total",
			Help:      "Ball returns by paddle",
		}, side),
		wallBounces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "wall_bounces_total",
			Help:      "Ball reflections off the top and bottom walls",
		}),
	}

	m.registry.MustRegister(
		m.frames,
		m.frameSeconds,
		m.points,
		m.games,
		m.matches,
		m.paddleHits,
		m.wallBounces,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func label(s core.Side) string {
	if s == core.SideNone {
		return "none"
	}
	return strings.ToLower(s.Label())
}

// Frame counts one updated frame
func (m *Metrics) Frame() {
	m.frames.Inc()
}

func (m *Metrics) Point(s core.Side) {
	m.points.WithLabelValues(label(s)).Inc()
}

func (m *Metrics) GameWon(s core.Side) {
	m.games.WithLabelValues(label(s)).Inc()
}

func (m *Metrics) MatchWon(s core.Side) {
	m.matches.WithLabelValues(label(s)).Inc()
}

func (m *Metrics) PaddleHit(s core.Side) {
	m.paddleHits.WithLabelValues(label(s)).Inc()
}

func (m *Metrics) WallBounce() {
	m.wallBounces.Inc()
}

// ObserveFrame records the wall time of one update and draw
func (m *Metrics) ObserveFrame(d time.Duration) {
	m.frameSeconds.Observe(d.Seconds())
}

// Registry returns the registry holding all collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the scrape handler for the registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Serve listens on addr and serves /metrics until ctx is cancelled
// Returns once the listener is bound so address errors surface to the caller
func (m *Metrics) Serve(ctx context.Context, addr string, log *zap.Logger) (net.Addr, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("metrics server stopped", zap.Error(err))
		}
	})
	core.Go(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})

	log.Info("metrics listening", zap.String("addr", ln.Addr().String()))
	return ln.Addr(), nil
}

// Server exposes a Metrics registry over HTTP as a managed service
type Server struct {
	metrics *Metrics
	addr    string
	log     *zap.Logger

	bound  net.Addr
	cancel context.CancelFunc
}

// NewServer creates a stopped server for m on addr
func NewServer(m *Metrics, addr string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{metrics: m, addr: addr, log: log}
}

func (s *Server) Name() string {
	return "metrics"
}

// Start binds the listener; repeated calls are a no-op
func (s *Server) Start() error {
	if s.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	bound, err := s.metrics.Serve(ctx, s.addr, s.log)
	if err != nil {
		cancel()
		return err
	}
	s.bound, s.cancel = bound, cancel
	return nil
}

// Stop shuts the listener down
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	return s.bound
}

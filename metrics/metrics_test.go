package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// Metrics must be usable as the engine's stats sink
var _ engine.Stats = (*Metrics)(nil)

func TestCounters(t *testing.T) {
	m := New("vipong")

	m.Frame()
	m.Frame()
	m.Point(core.SidePlayer)
	m.Point(core.SideAI)
	m.Point(core.SideAI)
	m.GameWon(core.SideAI)
	m.MatchWon(core.SideAI)
	m.PaddleHit(core.SidePlayer)
	m.WallBounce()

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"frames", testutil.ToFloat64(m.frames), 2},
		{"player points", testutil.ToFloat64(m.points.WithLabelValues("player")), 1},
		{"ai points", testutil.ToFloat64(m.points.WithLabelValues("ai")), 2},
		{"ai games", testutil.ToFloat64(m.games.WithLabelValues("ai")), 1},
		{"ai matches", testutil.ToFloat64(m.matches.WithLabelValues("ai")), 1},
		{"player paddle hits", testutil.ToFloat64(m.paddleHits.WithLabelValues("player")), 1},
		{"wall bounces", testutil.ToFloat64(m.wallBounces), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestSeparateRegistries(t *testing.T) {
	a := New("vipong")
	b := New("vipong")

	a.WallBounce()
	if got := testutil.ToFloat64(b.wallBounces); got != 0 {
		t.Errorf("Expected independent registries, got %v", got)
	}
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New("vipong")
	m.Point(core.SidePlayer)
	m.ObserveFrame(2 * time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`vipong_points_total{side="player"} 1`,
		"vipong_frame_duration_seconds_count 1",
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected %q in scrape output", want)
		}
	}
}

func TestServe(t *testing.T) {
	m := New("vipong")
	m.Frame()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, err := m.Serve(ctx, "127.0.0.1:0", zap.NewNop())
	if err != nil {
		t.Fatalf("Serve failed: %v", err)
	}

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "vipong_frames_total 1") {
		t.Error("Expected frame counter in scrape output")
	}
}

func TestServeBadAddress(t *testing.T) {
	m := New("vipong")
	if _, err := m.Serve(context.Background(), "not-an-address", zap.NewNop()); err == nil {
		t.Error("Expected listen error for invalid address")
	}
}

func TestServerLifecycle(t *testing.T) {
	s := NewServer(New("vipong"), "127.0.0.1:0", nil)
	if s.Name() != "metrics" || s.Addr() != nil {
		t.Fatal("Expected stopped server without address")
	}

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Errorf("Expected repeated Start to be a no-op, got %v", err)
	}
	addr := s.Addr()
	if addr == nil {
		t.Fatal("Expected bound address")
	}

	resp, err := http.Get("http://" + addr.String() + "/metrics")
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}
	resp.Body.Close()

	if err := s.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Expected repeated Stop to be a no-op, got %v", err)
	}

	// Shutdown is asynchronous; the listener closes shortly after Stop
	deadline := time.Now().Add(2 * time.Second)
	for {
		c, err := http.Get("http://" + addr.String() + "/metrics")
		if err != nil {
			break
		}
		c.Body.Close()
		if time.Now().After(deadline) {
			t.Fatal("Expected listener to close after Stop")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

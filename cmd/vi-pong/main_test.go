package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
)

type loopHarness struct {
	screen  tcell.SimulationScreen
	game    *engine.Game
	adapter *input.Adapter
	logs    *observer.ObservedLogs
	frames  int
}

func newLoopHarness(t *testing.T) *loopHarness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	obsCore, logs := observer.New(zapcore.InfoLevel)
	log := zap.New(obsCore)

	return &loopHarness{
		screen: screen,
		game: engine.NewGame(engine.Options{
			Sound:        &engine.RecordingSound{},
			Logger:       log,
			NameOpponent: func() string { return "tester" },
			NewMatchID:   func() string { return "m-1" },
		}),
		adapter: input.NewAdapter(input.DefaultKeymap(), constant.KeyHoldDuration, log),
		logs:    logs,
	}
}

// run drives the loop until it returns or the timeout expires
func (h *loopHarness) run(t *testing.T, ctx context.Context, timeout time.Duration) bool {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop(ctx, h.screen, h.game, h.adapter, render.NewRenderer(h.screen), func(time.Duration) { h.frames++ })
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestLoopQuitKey(t *testing.T) {
	h := newLoopHarness(t)
	h.screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if !h.run(t, context.Background(), 2*time.Second) {
		t.Fatal("Expected loop to exit on Ctrl-Q")
	}
	if h.game.Match.Mode != core.ModeTerminated {
		t.Errorf("Expected terminated, got %s", h.game.Match.Mode)
	}
	if h.logs.FilterMessage("session terminated").Len() != 1 {
		t.Error("Expected termination to be logged")
	}
}

func TestLoopStartsMatch(t *testing.T) {
	h := newLoopHarness(t)
	h.screen.InjectKey(tcell.KeyRune, '5', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if !h.run(t, ctx, 2*time.Second) {
		t.Fatal("Expected loop to stop when context is cancelled")
	}

	if h.game.Match.Mode != core.ModePlaying || h.game.Match.BestOf != 5 {
		t.Fatalf("Expected best-of-5 in play, got %s best-of %d", h.game.Match.Mode, h.game.Match.BestOf)
	}
	if h.frames == 0 {
		t.Error("Expected frame observer to be called")
	}

	// The screen shows the field with the opening score
	var sb strings.Builder
	for x := 0; x < 80; x++ {
		ch, _, _, _ := h.screen.GetContent(x, constant.ScoreRow)
		sb.WriteRune(ch)
	}
	if !strings.Contains(sb.String(), "0 (0)   -   0 (0)") {
		t.Errorf("Expected score line, got %q", sb.String())
	}
}

func TestLoopExitFromMainMenu(t *testing.T) {
	h := newLoopHarness(t)
	h.screen.InjectKey(tcell.KeyEsc, 0, tcell.ModNone)

	if !h.run(t, context.Background(), 2*time.Second) {
		t.Fatal("Expected loop to exit on Escape in the main menu")
	}
	if h.game.Running() {
		t.Error("Expected session to be over")
	}
}

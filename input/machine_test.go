package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

const testHold = 100 * time.Millisecond

func TestAdapterHeldDirection(t *testing.T) {
	a := NewAdapter(nil, testHold, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a.HandleKey(runeKey('w'), start)

	s := a.Snapshot(start.Add(10 * time.Millisecond))
	if !s.Up || s.Down {
		t.Errorf("Expected up held, got up=%v down=%v", s.Up, s.Down)
	}

	s = a.Snapshot(start.Add(testHold + time.Millisecond))
	if s.Up {
		t.Error("Expected up released after hold window")
	}
}

func TestAdapterRepeatExtendsHold(t *testing.T) {
	a := NewAdapter(nil, testHold, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a.HandleKey(runeKey('s'), start)
	a.HandleKey(runeKey('s'), start.Add(80*time.Millisecond))

	if s := a.Snapshot(start.Add(150 * time.Millisecond)); !s.Down {
		t.Error("Expected repeat press to extend hold")
	}
}

func TestAdapterOppositeReleases(t *testing.T) {
	a := NewAdapter(nil, testHold, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a.HandleKey(runeKey('w'), start)
	a.HandleKey(specialKey(tcell.KeyDown), start.Add(5*time.Millisecond))

	s := a.Snapshot(start.Add(10 * time.Millisecond))
	if s.Up || !s.Down {
		t.Errorf("Expected only down held, got up=%v down=%v", s.Up, s.Down)
	}

	a.Release()
	if s := a.Snapshot(start.Add(10 * time.Millisecond)); s.Up || s.Down {
		t.Error("Expected Release to clear held directions")
	}
}

func TestAdapterCommandsDeliveredOnce(t *testing.T) {
	a := NewAdapter(nil, testHold, nil)
	now := time.Now()

	a.HandleKey(runeKey('5'), now)
	a.HandleKey(runeKey('x'), now) // unbound, ignored
	a.HandleKey(specialKey(tcell.KeyEscape), now)

	s := a.Snapshot(now)
	if len(s.Commands) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(s.Commands))
	}
	if s.Commands[0] != CommandBestOf5 || s.Commands[1] != CommandExit {
		t.Errorf("Unexpected commands %v", s.Commands)
	}
	if !s.Has(CommandExit) || s.Has(CommandQuit) {
		t.Error("Has reported wrong membership")
	}

	if s := a.Snapshot(now); len(s.Commands) != 0 {
		t.Errorf("Expected commands drained, got %v", s.Commands)
	}
}

func TestAdapterIgnoresNonKeyEvents(t *testing.T) {
	a := NewAdapter(nil, testHold, nil)
	a.HandleEvent(tcell.NewEventResize(80, 24))
	a.HandleEvent(runeKey('7'))

	s := a.Snapshot(time.Now())
	if len(s.Commands) != 1 || s.Commands[0] != CommandBestOf7 {
		t.Errorf("Expected only best-of-7 command, got %v", s.Commands)
	}
}

func TestCommandBestOf(t *testing.T) {
	tests := []struct {
		cmd  Command
		want int
	}{
		{CommandBestOf3, 3},
		{CommandBestOf5, 5},
		{CommandBestOf7, 7},
		{CommandExit, 0},
		{CommandToggleMute, 0},
	}
	for _, tt := range tests {
		if got := tt.cmd.BestOf(); got != tt.want {
			t.Errorf("Expected BestOf %d for command %d, got %d", tt.want, tt.cmd, got)
		}
	}
}

package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Adapter turns terminal key events into per-frame snapshots
// Terminals report auto-repeated presses but no releases, so a direction
// counts as held until the hold window since its last press expires
type Adapter struct {
	keymap *Keymap
	hold   time.Duration
	log    *zap.Logger

	upUntil   time.Time
	downUntil time.Time
	pending   []Command
}

// NewAdapter creates an adapter; nil keymap uses defaults, nil logger discards
func NewAdapter(keymap *Keymap, hold time.Duration, log *zap.Logger) *Adapter {
	if keymap == nil {
		keymap = DefaultKeymap()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		keymap:  keymap,
		hold:    hold,
		log:     log,
		pending: make([]Command, 0, 4),
	}
}

// HandleEvent records a terminal event; non-key events and unbound keys are ignored
func (a *Adapter) HandleEvent(ev tcell.Event) {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}
	a.HandleKey(kev, kev.When())
}

// HandleKey records a key press observed at the given time
func (a *Adapter) HandleKey(ev *tcell.EventKey, at time.Time) {
	action := a.keymap.Resolve(ev)
	switch action {
	case ActionNone:
		a.log.Debug("unbound key ignored", zap.String("key", ev.Name()))
	case ActionUp:
		a.upUntil = at.Add(a.hold)
		a.downUntil = time.Time{}
	case ActionDown:
		a.downUntil = at.Add(a.hold)
		a.upUntil = time.Time{}
	default:
		if cmd, ok := action.command(); ok {
			a.pending = append(a.pending, cmd)
		}
	}
}

// Snapshot samples held directions at now and drains pending commands
func (a *Adapter) Snapshot(now time.Time) Snapshot {
	s := Snapshot{
		Up:   now.Before(a.upUntil),
		Down: now.Before(a.downUntil),
	}
	if len(a.pending) > 0 {
		s.Commands = make([]Command, len(a.pending))
		copy(s.Commands, a.pending)
		a.pending = a.pending[:0]
	}
	return s
}

// Release clears held directions, e.g. when the game leaves play
func (a *Adapter) Release() {
	a.upUntil = time.Time{}
	a.downUntil = time.Time{}
}

package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"go.uber.org/zap"
)

// Player plays synthesized sound effects through the system speaker
// All methods are safe to call when the speaker failed to initialize
type Player struct {
	mu          sync.Mutex
	config      *AudioConfig
	initialized bool

	// sink receives streamers; speaker.Play unless replaced in tests
	sink  func(...beep.Streamer)
	clear func()

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64

	log *zap.Logger
}

// NewPlayer creates a player; nil config uses defaults, nil logger discards
func NewPlayer(cfg *AudioConfig, log *zap.Logger) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		config: cfg,
		sink:   speaker.Play,
		clear:  speaker.Clear,
		log:    log,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Initialize sets up the speaker
// Repeated calls are a no-op
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.initialized = true
	p.log.Info("audio initialized", zap.Int("sample_rate", p.config.SampleRate))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.clear()
	speaker.Close()
	p.initialized = false
}

// Play queues a sound effect without waiting for it
// Returns false when the sound was dropped
func (p *Player) Play(st core.SoundType) bool {
	if p.muted.Load() {
		p.dropped.Add(1)
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		p.dropped.Add(1)
		return false
	}

	streamer := GetSoundEffect(st, p.config)
	if streamer == nil {
		p.dropped.Add(1)
		return false
	}

	p.sink(streamer)
	p.played.Add(1)
	return true
}

// ToggleMute toggles mute state, returns true if sound is now enabled
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	if muted {
		p.mu.Lock()
		if p.initialized {
			p.clear()
		}
		p.mu.Unlock()
	}
	return !muted
}

// IsMuted returns current mute state
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// IsEnabled returns true if initialized and unmuted
func (p *Player) IsEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized && !p.muted.Load()
}

// GetStats returns played and dropped counts
func (p *Player) GetStats() (played, dropped uint64) {
	return p.played.Load(), p.dropped.Load()
}

// Name identifies the player as a managed service
func (p *Player) Name() string {
	return "audio"
}

// Start opens the speaker
func (p *Player) Start() error {
	return p.Initialize()
}

// Stop releases the speaker
func (p *Player) Stop() error {
	p.Cleanup()
	return nil
}

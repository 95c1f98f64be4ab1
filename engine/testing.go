package engine

import (
	"github.com/lixenwraith/vi-pong/core"
)

// RecordingSound is a SoundPlayer that counts requested effects
type RecordingSound struct {
	Counts [core.SoundTypeCount]int
	Muted  bool
}

// Play records the effect and reports whether it would be audible
func (r *RecordingSound) Play(st core.SoundType) bool {
	if st >= 0 && st < core.SoundTypeCount {
		r.Counts[st]++
	}
	return !r.Muted
}

// ToggleMute flips the mute flag, returns true if sound is now enabled
func (r *RecordingSound) ToggleMute() bool {
	r.Muted = !r.Muted
	return !r.Muted
}

// IsMuted returns the mute flag
func (r *RecordingSound) IsMuted() bool { return r.Muted }

// Total returns the number of effects requested
func (r *RecordingSound) Total() int {
	n := 0
	for _, c := range r.Counts {
		n += c
	}
	return n
}

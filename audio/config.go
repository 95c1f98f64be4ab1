package audio

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	SampleRate    int
	EffectVolumes map[core.SoundType]float64 // 0.0-1.0 per effect
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundWallBounce: 0.6,
			core.SoundPaddleHit:  0.8,
			core.SoundScore:      1.0,
		},
	}
}

// Validate checks ranges
func (c *AudioConfig) Validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master volume %v out of range [0,1]", c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate %d must be positive", c.SampleRate)
	}
	for st, v := range c.EffectVolumes {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s volume %v out of range [0,1]", st, v)
		}
	}
	return nil
}

// effectVolume returns the effective gain for a sound
func (c *AudioConfig) effectVolume(st core.SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps a stream in a linear gain
// math.Log2(0) is -Inf, so zero volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateWallSound generates a short soft blip for wall bounces
func CreateWallSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(constant.WallSoundFreq, constant.WallSoundDuration, WaveTriangle, rate)
	shaped := NewEnvelope(osc, constant.WallSoundDuration, constant.WallSoundAttack, constant.WallSoundRelease, rate)

	return newVolume(shaped, cfg.effectVolume(core.SoundWallBounce))
}

// CreatePaddleSound generates a bright knock for paddle hits
func CreatePaddleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constant.PaddleSoundDuration

	fund := NewEnvelope(NewOscillator(constant.PaddleSoundFreq, d, WaveSquare, rate),
		d, constant.PaddleSoundAttack, constant.PaddleSoundRelease, rate)
	over := NewEnvelope(NewOscillator(constant.PaddleSoundFreq*constant.PaddleSoundOvertoneRatio, d, WaveSine, rate),
		d, constant.PaddleSoundAttack, constant.PaddleSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.6),
		newVolume(over, 0.4),
	)

	return newVolume(mixed, cfg.effectVolume(core.SoundPaddleHit))
}

// CreateScoreSound generates a two-note chime for a point
func CreateScoreSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(constant.ScoreSoundNote1Freq, constant.ScoreSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constant.ScoreSoundNote1Duration, constant.ScoreSoundAttack, constant.ScoreSoundNote1Release, rate)

	n2 := NewOscillator(constant.ScoreSoundNote2Freq, constant.ScoreSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constant.ScoreSoundNote2Duration, constant.ScoreSoundAttack, constant.ScoreSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), cfg.effectVolume(core.SoundScore))
}

// GetSoundEffect returns the streamer for the given type, nil if unknown
func GetSoundEffect(st core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case core.SoundWallBounce:
		return CreateWallSound(cfg)
	case core.SoundPaddleHit:
		return CreatePaddleSound(cfg)
	case core.SoundScore:
		return CreateScoreSound(cfg)
	default:
		return nil
	}
}

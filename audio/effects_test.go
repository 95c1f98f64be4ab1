package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-pong/core"
)

// drain streams until exhausted and returns the sample count
func drain(t *testing.T, s beep.Streamer, limit int) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for total < limit {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatalf("Streamer did not finish within %d samples", limit)
	return total
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorTriangle verifies triangle wave range
func TestOscillatorTriangle(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(110.0, 50*time.Millisecond, WaveTriangle, rate)

	samples := make([][2]float64, 400)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val < -1.0 || val > 1.0 {
			t.Errorf("Triangle sample %d out of range: %f", i, val)
		}
	}
}

// TestOscillatorDuration verifies oscillator respects duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	expectedSamples := rate.N(duration)

	osc := NewOscillator(440.0, duration, WaveSine, rate)

	samples := make([][2]float64, expectedSamples*2)
	n, _ := osc.Stream(samples)
	if n != expectedSamples {
		t.Errorf("Expected %d samples, got %d", expectedSamples, n)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 {
		t.Error("Expected second stream to return ok=false after duration exceeded")
	}
	if n2 != 0 {
		t.Errorf("Expected 0 samples after duration, got %d", n2)
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond

	osc := NewOscillator(440.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(duration))
	n, ok := env.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples ok, got %d ok=%v", len(samples), n, ok)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected first sample silent during attack, got %f", samples[0][0])
	}
	mid := samples[n/2][0]
	if mid != 1.0 && mid != -1.0 {
		t.Errorf("Expected full amplitude in sustain, got %f", mid)
	}
	last := samples[n-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("Expected near-silent last sample, got %f", last)
	}
}

// TestSoundEffectsFinite verifies every effect terminates and stays in range
func TestSoundEffectsFinite(t *testing.T) {
	cfg := DefaultAudioConfig()
	limit := cfg.SampleRate // one second

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, cfg)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			if n := drain(t, s, limit); n == 0 {
				t.Error("Expected audible samples")
			}
		})
	}
}

func TestGetSoundEffectUnknown(t *testing.T) {
	if s := GetSoundEffect(core.SoundTypeCount, DefaultAudioConfig()); s != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

func TestZeroVolumeSilent(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	s := CreateScoreSound(cfg)
	buf := make([][2]float64, 256)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 || buf[i][1] != 0 {
			t.Fatalf("Expected silence at zero volume, sample %d = %v", i, buf[i])
		}
	}
}

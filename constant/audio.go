package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Wall Bounce Sound
const (
	WallSoundFreq     = 440.0
	WallSoundDuration = 60 * time.Millisecond
	WallSoundAttack   = 3 * time.Millisecond
	WallSoundRelease  = 30 * time.Millisecond
)

// Paddle Hit Sound
const (
	PaddleSoundFreq          = 660.0
	PaddleSoundDuration      = 80 * time.Millisecond
	PaddleSoundAttack        = 3 * time.Millisecond
	PaddleSoundRelease       = 50 * time.Millisecond
	PaddleSoundOvertoneRatio = 2.0
)

// Score Sound
const (
	ScoreSoundNote1Freq     = 987.77  // B5
	ScoreSoundNote2Freq     = 1318.51 // E6
	ScoreSoundNote1Duration = 80 * time.Millisecond
	ScoreSoundNote2Duration = 280 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 200 * time.Millisecond
)

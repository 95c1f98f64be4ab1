package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundWallBounce SoundType = iota // Ball reflects off top or bottom wall
	SoundPaddleHit                   // Ball returned by a paddle
	SoundScore                       // Ball left the field
	SoundTypeCount
)

// String returns the config key of the sound
func (s SoundType) String() string {
	switch s {
	case SoundWallBounce:
		return "wall"
	case SoundPaddleHit:
		return "paddle"
	case SoundScore:
		return "score"
	default:
		return "unknown"
	}
}

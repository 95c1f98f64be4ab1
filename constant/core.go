package constant

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the fixed physics and render step (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffered capacity of the terminal event channel
	EventQueueSize = 256
)

// Logical playing field, independent of terminal size
const (
	FieldWidth  = 800
	FieldHeight = 600
)

// Input
const (
	// KeyHoldDuration is how long a movement key counts as held after its last press
	// Covers the gap before terminal auto-repeat kicks in
	KeyHoldDuration = 250 * time.Millisecond

	// MaxKeyHoldDuration bounds the configurable hold window
	MaxKeyHoldDuration = 2 * time.Second
)

// Logging
const (
	LogFileName = "vi-pong.log"
	MaxLogSize  = 10 * 1024 * 1024
)

package physics

import (
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// Paddle is a vertical-axis actor with fixed X
type Paddle struct {
	X, Y          int
	Width, Height int

	// TrackStep bounds AutoTrack movement per frame
	TrackStep int
}

// NewPaddle creates a paddle of standard size at the given position
func NewPaddle(x, y int) *Paddle {
	return &Paddle{
		X:         x,
		Y:         y,
		Width:     constant.PaddleWidth,
		Height:    constant.PaddleHeight,
		TrackStep: constant.AITrackStep,
	}
}

// Move shifts the paddle vertically, clamped to [0, fieldHeight-Height]
func (p *Paddle) Move(deltaY, fieldHeight int) {
	p.Y = clamp(p.Y+deltaY, 0, fieldHeight-p.Height)
}

// AutoTrack moves the paddle center toward the ball center by at most TrackStep
func (p *Paddle) AutoTrack(ball *Ball, fieldHeight int) {
	delta := ball.Bounds().CenterY() - p.Bounds().CenterY()
	if delta > p.TrackStep {
		delta = p.TrackStep
	} else if delta < -p.TrackStep {
		delta = -p.TrackStep
	}
	p.Move(delta, fieldHeight)
}

// Center places the paddle at mid-field height
func (p *Paddle) Center(fieldHeight int) {
	p.Y = clamp(fieldHeight/2-p.Height/2, 0, fieldHeight-p.Height)
}

// Bounds returns the current rectangle
func (p *Paddle) Bounds() core.Area {
	return core.Area{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

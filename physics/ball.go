package physics

import (
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// Ball is a fixed-step position/velocity integrator
// PrevX/PrevY hold the position before the last Move, used by the swept test
type Ball struct {
	X, Y          int
	VX, VY        int
	Width, Height int

	PrevX, PrevY     int
	OriginX, OriginY int

	FieldWidth, FieldHeight int

	rng Rand
}

// NewBall creates a ball at its spawn point with a random serve
func NewBall(x, y, width, height, fieldWidth, fieldHeight int, rng Rand) *Ball {
	if rng == nil {
		rng = DefaultRand()
	}
	b := &Ball{
		Width:       width,
		Height:      height,
		OriginX:     x,
		OriginY:     y,
		FieldWidth:  fieldWidth,
		FieldHeight: fieldHeight,
		rng:         rng,
	}
	b.Serve()
	return b
}

// NewDefaultBall creates a standard ball centered in the standard field
func NewDefaultBall(rng Rand) *Ball {
	return NewBall(constant.BallSpawnX, constant.BallSpawnY, constant.BallWidth, constant.BallHeight,
		constant.FieldWidth, constant.FieldHeight, rng)
}

// Move advances one step and reflects off the top/bottom walls
// onWallBounce fires at most once per call
func (b *Ball) Move(onWallBounce func()) {
	b.PrevX = b.X
	b.PrevY = b.Y

	b.X += b.VX
	b.Y += b.VY

	if b.Y <= 0 || b.Y+b.Height >= b.FieldHeight {
		b.VY = -b.VY
		if onWallBounce != nil {
			onWallBounce()
		}
	}
}

// SweptBounds spans the horizontal travel of the last step at the current Y
// Step size can exceed ball width, so an end-position test would tunnel through paddles
func (b *Ball) SweptBounds() core.Area {
	return core.Area{
		X:      min(b.PrevX, b.X),
		Y:      b.Y,
		Width:  abs(b.VX) + b.Width,
		Height: b.Height,
	}
}

// CheckCollision resolves the swept rectangle against both paddles, left first
// Returns the side whose paddle was hit, or SideNone
func (b *Ball) CheckCollision(left, right *Paddle, onPaddleHit func()) core.Side {
	travel := b.SweptBounds()

	if lb := left.Bounds(); travel.Overlaps(lb) {
		b.X = lb.Right()
		b.VX = abs(b.VX)
		if onPaddleHit != nil {
			onPaddleHit()
		}
		return core.SidePlayer
	}

	if rb := right.Bounds(); travel.Overlaps(rb) {
		b.X = rb.X - b.Width
		b.VX = -abs(b.VX)
		if onPaddleHit != nil {
			onPaddleHit()
		}
		return core.SideAI
	}

	return core.SideNone
}

// Reset returns the ball to its origin and serves toward the other side
func (b *Ball) Reset() {
	b.X = b.OriginX
	b.Y = b.OriginY
	b.PrevX, b.PrevY = b.X, b.Y
	b.VX = -b.VX
	if b.VX == 0 {
		b.VX = pick(b.rng, constant.BallSpeedX)
	}
	b.VY = pick(b.rng, constant.BallSpeedY)
}

// Serve returns the ball to its origin with a fully random velocity
func (b *Ball) Serve() {
	b.X = b.OriginX
	b.Y = b.OriginY
	b.PrevX, b.PrevY = b.X, b.Y
	b.VX = pick(b.rng, constant.BallSpeedX)
	b.VY = pick(b.rng, constant.BallSpeedY)
}

// Bounds returns the current rectangle
func (b *Ball) Bounds() core.Area {
	return core.Area{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package engine

import "github.com/lixenwraith/vi-pong/core"

// SoundPlayer triggers sound effects; calls must not block the frame
type SoundPlayer interface {
	Play(st core.SoundType) bool
	ToggleMute() bool
	IsMuted() bool
}

// Stats receives gameplay counters
type Stats interface {
	Frame()
	Point(side core.Side)
	GameWon(side core.Side)
	MatchWon(side core.Side)
	PaddleHit(side core.Side)
	WallBounce()
}

// Presenter draws a frame from an immutable view of the game
type Presenter interface {
	Present(v View)
}

// View is a read-only copy of everything needed to draw one frame
type View struct {
	FieldWidth, FieldHeight int

	Player, AI, Ball core.Area

	PlayerScore, AIScore int
	PlayerGames, AIGames int
	PointsToWin          int
	GamesToWin           int
	BestOf               int

	Mode core.MatchMode

	// BannerWinner is the side that won the last game
	BannerWinner core.Side
	// MatchWinner is valid in ModeMatchOver
	MatchWinner core.Side

	Opponent string
	Muted    bool
}

type nopSound struct{ muted bool }

func (s *nopSound) Play(core.SoundType) bool { return false }
func (s *nopSound) ToggleMute() bool {
	s.muted = !s.muted
	return !s.muted
}
func (s *nopSound) IsMuted() bool { return s.muted }

type nopStats struct{}

func (nopStats) Frame()              {}
func (nopStats) Point(core.Side)     {}
func (nopStats) GameWon(core.Side)   {}
func (nopStats) MatchWon(core.Side)  {}
func (nopStats) PaddleHit(core.Side) {}
func (nopStats) WallBounce()         {}

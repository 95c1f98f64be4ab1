package engine

import (
	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
)

// Outcome reports what a game-over check concluded
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeGameWon
	OutcomeMatchWon
)

// MatchState holds scores, match progression and the top-level mode
// Scores stay in [0, PointsToWin] and games in [0, GamesToWin]
type MatchState struct {
	PlayerScore int
	AIScore     int
	PlayerGames int
	AIGames     int

	PointsToWin int
	GamesToWin  int
	BestOf      int

	Mode core.MatchMode

	LastGameWinner   core.Side
	BannerFramesLeft int

	MatchID  string
	Opponent string
}

// NewMatchState creates a match state in the main menu
func NewMatchState() *MatchState {
	return &MatchState{
		PointsToWin: constant.PointsToWin,
		BestOf:      constant.BestOfOptions[0],
		GamesToWin:  constant.GamesToWin(constant.BestOfOptions[0]),
		Mode:        core.ModeMainMenu,
	}
}

// StartNewMatch resets all counters for a best-of-n match and enters play
// Returns false without changes if n is not a selectable match length
func (m *MatchState) StartNewMatch(bestOf int, matchID, opponent string) bool {
	if !constant.IsBestOfOption(bestOf) {
		return false
	}

	m.BestOf = bestOf
	m.GamesToWin = constant.GamesToWin(bestOf)
	m.PointsToWin = constant.PointsToWin
	m.PlayerScore, m.AIScore = 0, 0
	m.PlayerGames, m.AIGames = 0, 0
	m.LastGameWinner = core.SideNone
	m.BannerFramesLeft = 0
	m.MatchID = matchID
	m.Opponent = opponent
	m.Mode = core.ModePlaying
	return true
}

// AwardPoint adds a point to side unless its score already reached PointsToWin
func (m *MatchState) AwardPoint(side core.Side) bool {
	switch side {
	case core.SidePlayer:
		if m.PlayerScore >= m.PointsToWin {
			return false
		}
		m.PlayerScore++
	case core.SideAI:
		if m.AIScore >= m.PointsToWin {
			return false
		}
		m.AIScore++
	default:
		return false
	}
	return true
}

// CheckGameOver records a finished game and advances the mode
// Ends the match once a side reaches GamesToWin, otherwise clears the
// game scores and raises the banner
func (m *MatchState) CheckGameOver() (Outcome, core.Side) {
	var winner core.Side
	switch {
	case m.PlayerScore >= m.PointsToWin:
		winner = core.SidePlayer
		m.PlayerGames++
	case m.AIScore >= m.PointsToWin:
		winner = core.SideAI
		m.AIGames++
	default:
		return OutcomeNone, core.SideNone
	}
	m.LastGameWinner = winner

	if m.PlayerGames >= m.GamesToWin || m.AIGames >= m.GamesToWin {
		m.Mode = core.ModeMatchOver
		return OutcomeMatchWon, winner
	}

	m.PlayerScore, m.AIScore = 0, 0
	m.Mode = core.ModeGameOverBanner
	m.BannerFramesLeft = constant.BannerFrames
	return OutcomeGameWon, winner
}

// TickBanner counts down the banner, returning true on the frame play resumes
func (m *MatchState) TickBanner() bool {
	if m.Mode != core.ModeGameOverBanner {
		return false
	}
	if m.BannerFramesLeft > 0 {
		m.BannerFramesLeft--
	}
	if m.BannerFramesLeft == 0 {
		m.Mode = core.ModePlaying
		return true
	}
	return false
}

// Winner returns the side holding the majority of games, SideNone on a tie
func (m *MatchState) Winner() core.Side {
	switch {
	case m.PlayerGames > m.AIGames:
		return core.SidePlayer
	case m.AIGames > m.PlayerGames:
		return core.SideAI
	default:
		return core.SideNone
	}
}

// Terminate ends the session
func (m *MatchState) Terminate() {
	m.Mode = core.ModeTerminated
}

// InMenu reports whether the mode accepts match selection
func (m *MatchState) InMenu() bool {
	return m.Mode == core.ModeMainMenu || m.Mode == core.ModeMatchOver
}

package engine

import (
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/physics"
)

// Options carries the collaborators injected into a Game
// Zero values fall back to silent, uncounted, unlogged defaults
type Options struct {
	Sound  SoundPlayer
	Stats  Stats
	Logger *zap.Logger
	Rand   physics.Rand

	// NameOpponent returns the AI nickname for a new match
	NameOpponent func() string
	// NewMatchID returns an identifier for a new match
	NewMatchID func() string
}

// Game owns the paddles, ball and match state and advances them one frame at a time
type Game struct {
	Player *physics.Paddle
	AI     *physics.Paddle
	Ball   *physics.Ball
	Match  *MatchState

	FieldWidth, FieldHeight int

	sound        SoundPlayer
	stats        Stats
	log          *zap.Logger
	nameOpponent func() string
	newMatchID   func() string
}

// NewGame creates a game in the main menu
func NewGame(opts Options) *Game {
	if opts.Sound == nil {
		opts.Sound = &nopSound{}
	}
	if opts.Stats == nil {
		opts.Stats = nopStats{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.NameOpponent == nil {
		opts.NameOpponent = func() string { return petname.Generate(2, "-") }
	}
	if opts.NewMatchID == nil {
		opts.NewMatchID = uuid.NewString
	}

	return &Game{
		Player:       physics.NewPaddle(constant.PlayerPaddleX, constant.PaddleStartY),
		AI:           physics.NewPaddle(constant.AIPaddleX, constant.PaddleStartY),
		Ball:         physics.NewDefaultBall(opts.Rand),
		Match:        NewMatchState(),
		FieldWidth:   constant.FieldWidth,
		FieldHeight:  constant.FieldHeight,
		sound:        opts.Sound,
		stats:        opts.Stats,
		log:          opts.Logger,
		nameOpponent: opts.NameOpponent,
		newMatchID:   opts.NewMatchID,
	}
}

// Update advances exactly one frame
// Returns false once the session has terminated
func (g *Game) Update(in input.Snapshot) bool {
	if g.Match.Mode == core.ModeTerminated {
		return false
	}
	g.stats.Frame()

	for _, cmd := range in.Commands {
		switch cmd {
		case input.CommandQuit:
			g.terminate("quit")
			return false
		case input.CommandToggleMute:
			enabled := g.sound.ToggleMute()
			g.log.Info("sound toggled", zap.Bool("enabled", enabled))
		}
	}

	switch g.Match.Mode {
	case core.ModeMainMenu, core.ModeMatchOver:
		g.handleMenu(in.Commands)
	case core.ModeGameOverBanner:
		if g.Match.TickBanner() {
			g.log.Debug("next game", zap.String("match_id", g.Match.MatchID))
		}
	case core.ModePlaying:
		g.step(in)
	}

	return g.Match.Mode != core.ModeTerminated
}

// Running reports whether the session is still active
func (g *Game) Running() bool {
	return g.Match.Mode != core.ModeTerminated
}

// handleMenu applies the first menu command of the frame
func (g *Game) handleMenu(cmds []input.Command) {
	for _, cmd := range cmds {
		if n := cmd.BestOf(); n > 0 {
			g.StartNewMatch(n)
			return
		}
		if cmd == input.CommandExit {
			g.terminate("exit")
			return
		}
	}
}

// StartNewMatch begins a best-of-n match with recentred paddles and a fresh serve
func (g *Game) StartNewMatch(bestOf int) bool {
	if !g.Match.StartNewMatch(bestOf, g.newMatchID(), g.nameOpponent()) {
		g.log.Warn("ignored match length", zap.Int("best_of", bestOf))
		return false
	}

	g.Player.Center(g.FieldHeight)
	g.AI.Center(g.FieldHeight)
	g.Ball.Serve()

	g.log.Info("match started",
		zap.String("match_id", g.Match.MatchID),
		zap.Int("best_of", bestOf),
		zap.Int("games_to_win", g.Match.GamesToWin),
		zap.String("opponent", g.Match.Opponent),
	)
	return true
}

// step runs one frame of play: paddles, ball, collision, scoring
func (g *Game) step(in input.Snapshot) {
	switch {
	case in.Up && !in.Down:
		g.Player.Move(-constant.PlayerPaddleStep, g.FieldHeight)
	case in.Down && !in.Up:
		g.Player.Move(constant.PlayerPaddleStep, g.FieldHeight)
	}
	g.AI.AutoTrack(g.Ball, g.FieldHeight)

	g.Ball.Move(g.onWallBounce)
	if side := g.Ball.CheckCollision(g.Player, g.AI, g.onPaddleHit); side != core.SideNone {
		g.stats.PaddleHit(side)
	}

	if g.Ball.X <= 0 {
		g.scorePoint(core.SideAI)
	} else if g.Ball.X >= g.FieldWidth {
		g.scorePoint(core.SidePlayer)
	}

	g.checkGameOver()
}

func (g *Game) onWallBounce() {
	g.sound.Play(core.SoundWallBounce)
	g.stats.WallBounce()
}

func (g *Game) onPaddleHit() {
	g.sound.Play(core.SoundPaddleHit)
}

func (g *Game) scorePoint(side core.Side) {
	g.Match.AwardPoint(side)
	g.sound.Play(core.SoundScore)
	g.stats.Point(side)
	g.Ball.Reset()
}

func (g *Game) checkGameOver() {
	outcome, winner := g.Match.CheckGameOver()
	switch outcome {
	case OutcomeGameWon:
		g.Ball.Reset()
		g.stats.GameWon(winner)
		g.log.Info("game won",
			zap.String("match_id", g.Match.MatchID),
			zap.String("winner", winner.Label()),
			zap.Int("player_games", g.Match.PlayerGames),
			zap.Int("ai_games", g.Match.AIGames),
		)
	case OutcomeMatchWon:
		g.stats.GameWon(winner)
		g.stats.MatchWon(winner)
		g.log.Info("match over",
			zap.String("match_id", g.Match.MatchID),
			zap.String("winner", winner.Label()),
			zap.Int("player_games", g.Match.PlayerGames),
			zap.Int("ai_games", g.Match.AIGames),
		)
	}
}

func (g *Game) terminate(reason string) {
	g.Match.Terminate()
	g.log.Info("session terminated", zap.String("reason", reason))
}

// View copies the state needed to draw a frame
func (g *Game) View() View {
	m := g.Match
	v := View{
		FieldWidth:   g.FieldWidth,
		FieldHeight:  g.FieldHeight,
		Player:       g.Player.Bounds(),
		AI:           g.AI.Bounds(),
		Ball:         g.Ball.Bounds(),
		PlayerScore:  m.PlayerScore,
		AIScore:      m.AIScore,
		PlayerGames:  m.PlayerGames,
		AIGames:      m.AIGames,
		PointsToWin:  m.PointsToWin,
		GamesToWin:   m.GamesToWin,
		BestOf:       m.BestOf,
		Mode:         m.Mode,
		BannerWinner: m.LastGameWinner,
		Opponent:     m.Opponent,
		Muted:        g.sound.IsMuted(),
	}
	if m.Mode == core.ModeMatchOver {
		v.MatchWinner = m.Winner()
	}
	return v
}

// Render hands the current view to the presenter
func (g *Game) Render(p Presenter) {
	p.Present(g.View())
}

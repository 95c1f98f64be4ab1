package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/constant"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
)

// Renderer draws game views onto a terminal surface, scaling the logical field to its size
type Renderer struct {
	surface Surface
	text    TextRenderer
}

// NewRenderer creates a renderer over surface
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{
		surface: surface,
		text:    NewSurfaceText(surface),
	}
}

// Present draws one complete frame
// Surface size is read every frame so resizes need no notification
func (r *Renderer) Present(v engine.View) {
	w, h := r.surface.Size()
	r.fill(core.Area{Width: w, Height: h}, ' ', styleDefault)

	if w > 0 && h > 0 {
		switch v.Mode {
		case core.ModeMainMenu:
			r.drawPanel(w, h, constant.MenuTitle)
		case core.ModeGameOverBanner:
			r.text.DrawTextCentered(h/2, BannerText(v.BannerWinner), styleBanner)
		case core.ModePlaying:
			r.drawField(v, w, h)
		case core.ModeMatchOver:
			r.drawField(v, w, h)
			r.drawPanel(w, h, MatchOverTitle(v.MatchWinner))
		}
	}

	if s, ok := r.surface.(interface{ Show() }); ok {
		s.Show()
	}
}

// BannerText returns the between-games announcement
func BannerText(winner core.Side) string {
	return winner.Label() + " wins this game!"
}

// MatchOverTitle returns the match-over panel title
func MatchOverTitle(winner core.Side) string {
	if winner == core.SidePlayer {
		return "Player Wins the Match!"
	}
	return "AI Wins the Match!"
}

// ScoreLine formats points with games won in parentheses
func ScoreLine(v engine.View) string {
	return fmt.Sprintf("%d (%d)   -   %d (%d)", v.PlayerScore, v.PlayerGames, v.AIScore, v.AIGames)
}

// StatusLine describes the match and sound state
func StatusLine(v engine.View) string {
	sound := "on"
	if v.Muted {
		sound = "off"
	}
	opponent := v.Opponent
	if opponent == "" {
		opponent = core.SideAI.Label()
	}
	return fmt.Sprintf("vs %s | best of %d | first to %d | sound %s", opponent, v.BestOf, v.PointsToWin, sound)
}

func (r *Renderer) drawField(v engine.View, w, h int) {
	vp := Viewport{FieldWidth: v.FieldWidth, FieldHeight: v.FieldHeight, Cols: w, Rows: h}

	divX := vp.CellX(v.FieldWidth / 2)
	for y := 0; y < h; y++ {
		r.surface.SetContent(divX, y, constant.GlyphDivider, nil, styleDivider)
	}

	r.fill(vp.Cells(v.Player), constant.GlyphPaddle, styleDefault)
	r.fill(vp.Cells(v.AI), constant.GlyphPaddle, styleDefault)
	r.fill(vp.Cells(v.Ball), constant.GlyphBall, styleDefault)

	r.text.DrawTextCentered(constant.ScoreRow, ScoreLine(v), styleScore)
	if h > constant.ScoreRow+2 {
		r.text.DrawTextCentered(h-1, StatusLine(v), styleStatus)
	}
}

// drawPanel draws a bordered box centered on screen with the title and menu options
func (r *Renderer) drawPanel(w, h int, title string) {
	contentW := TextWidth(title)
	for _, opt := range constant.MenuOptions {
		contentW = max(contentW, TextWidth(opt))
	}
	contentH := 1 + constant.PanelTitleGap + len(constant.MenuOptions)

	boxW := contentW + 2*constant.PanelPaddingX + 2
	boxH := contentH + 2*constant.PanelPaddingY + 2
	box := core.Area{X: (w - boxW) / 2, Y: (h - boxH) / 2, Width: boxW, Height: boxH}

	r.fill(box, ' ', stylePanel)
	r.drawBorder(box)

	y := box.Y + 1 + constant.PanelPaddingY
	r.text.DrawTextCentered(y, title, stylePanelTitle)
	y += 1 + constant.PanelTitleGap
	for _, opt := range constant.MenuOptions {
		r.text.DrawTextCentered(y, opt, stylePanel)
		y++
	}
}

func (r *Renderer) drawBorder(a core.Area) {
	if a.Width < 2 || a.Height < 2 {
		return
	}
	x1, y1 := a.Right()-1, a.Bottom()-1

	r.set(a.X, a.Y, '╔', stylePanelBorder)
	r.set(x1, a.Y, '╗', stylePanelBorder)
	r.set(a.X, y1, '╚', stylePanelBorder)
	r.set(x1, y1, '╝', stylePanelBorder)

	for x := a.X + 1; x < x1; x++ {
		r.set(x, a.Y, '═', stylePanelBorder)
		r.set(x, y1, '═', stylePanelBorder)
	}
	for y := a.Y + 1; y < y1; y++ {
		r.set(a.X, y, '║', stylePanelBorder)
		r.set(x1, y, '║', stylePanelBorder)
	}
}

// fill paints every on-screen cell of a with ch
func (r *Renderer) fill(a core.Area, ch rune, style tcell.Style) {
	for y := a.Y; y < a.Bottom(); y++ {
		for x := a.X; x < a.Right(); x++ {
			r.set(x, y, ch, style)
		}
	}
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.surface.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.surface.SetContent(x, y, ch, nil, style)
}

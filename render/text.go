package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface is the drawing subset of tcell.Screen
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// TextRenderer draws single-line strings onto a surface
type TextRenderer interface {
	DrawText(x, y int, text string, style tcell.Style)
	DrawTextCentered(y int, text string, style tcell.Style)
}

// SurfaceText is the tcell-backed TextRenderer
type SurfaceText struct {
	surface Surface
}

// NewSurfaceText creates a text renderer over surface
func NewSurfaceText(surface Surface) *SurfaceText {
	return &SurfaceText{surface: surface}
}

// DrawText writes text starting at (x, y), clipping cells outside the surface
func (t *SurfaceText) DrawText(x, y int, text string, style tcell.Style) {
	w, h := t.surface.Size()
	if y < 0 || y >= h {
		return
	}
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x >= 0 && x+cw <= w {
			t.surface.SetContent(x, y, ch, nil, style)
		}
		x += cw
	}
}

// DrawTextCentered writes text horizontally centered on row y
func (t *SurfaceText) DrawTextCentered(y int, text string, style tcell.Style) {
	w, _ := t.surface.Size()
	t.DrawText((w-TextWidth(text))/2, y, text, style)
}

// TextWidth returns the display width of text in cells
func TextWidth(text string) int {
	return runewidth.StringWidth(text)
}

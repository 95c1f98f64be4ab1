package constant

// Glyphs
const (
	GlyphPaddle  = '█'
	GlyphBall    = '●'
	GlyphDivider = '┊'
)

// Menu panel layout (cells)
const (
	PanelPaddingX = 3
	PanelPaddingY = 1
	PanelTitleGap = 1

	// ScoreRow is the terminal row of the score line
	ScoreRow = 1
)

// Menu text
const (
	MenuTitle = "PING PONG"
)

// MenuOptions lists the key hints shown on both menus
var MenuOptions = [...]string{
	"Press 3 for Best of 3 Games",
	"Press 5 for Best of 5 Games",
	"Press 7 for Best of 7 Games",
	"Press ESC to Exit",
}

package render

import "github.com/gdamore/tcell/v2"

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbForeground = tcell.NewRGBColor(255, 255, 255) // White
	RgbDivider    = tcell.NewRGBColor(90, 90, 110)   // Muted gray-blue
	RgbScore      = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatus     = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbPanelBg     = tcell.NewRGBColor(0, 0, 0)       // Black
	RgbPanelBorder = tcell.NewRGBColor(255, 255, 255) // White
	RgbPanelTitle  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPanelText   = tcell.NewRGBColor(220, 220, 220) // Light gray

	RgbBanner = tcell.NewRGBColor(255, 255, 0) // Bright yellow
)

// Styles derived from the palette
var (
	styleDefault = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbForeground)
	styleDivider = styleDefault.Foreground(RgbDivider)
	styleScore   = styleDefault.Foreground(RgbScore).Bold(true)
	styleStatus  = styleDefault.Foreground(RgbStatus)
	styleBanner  = styleDefault.Foreground(RgbBanner).Bold(true)

	stylePanel       = tcell.StyleDefault.Background(RgbPanelBg).Foreground(RgbPanelText)
	stylePanelBorder = stylePanel.Foreground(RgbPanelBorder)
	stylePanelTitle  = stylePanel.Foreground(RgbPanelTitle).Bold(true)
)

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skullblast/component"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbPath       = tcell.NewRGBColor(70, 72, 96)    // Dim track
	RgbPathEnd    = tcell.NewRGBColor(200, 50, 50)   // Breach marker
	RgbMuzzle     = tcell.NewRGBColor(255, 165, 0)   // Orange launcher
	RgbAim        = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbStatusBg   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbChainBg    = tcell.NewRGBColor(255, 192, 203) // Pink while a chain is live
	RgbPausedBg   = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBurst      = tcell.NewRGBColor(255, 255, 200) // Yellow-white spark
	RgbRing       = tcell.NewRGBColor(140, 190, 255) // Bright blue glow
)

var kindColors = map[component.Kind]tcell.Color{
	component.KindRed:    tcell.NewRGBColor(255, 80, 80),
	component.KindBlue:   tcell.NewRGBColor(100, 150, 255),
	component.KindGreen:  tcell.NewRGBColor(0, 200, 0),
	component.KindYellow: tcell.NewRGBColor(255, 255, 0),
	component.KindPurple: tcell.NewRGBColor(180, 90, 220),
	component.KindSkull:  tcell.NewRGBColor(230, 230, 230),
	component.KindFire:   tcell.NewRGBColor(255, 120, 0),
}

// KindColor returns the display color of a ball kind
func KindColor(k component.Kind) tcell.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return tcell.ColorWhite
}

// KindGlyph returns the cell glyph of a ball kind
func KindGlyph(k component.Kind) rune {
	switch k {
	case component.KindSkull:
		return '☠'
	case component.KindFire:
		return '♨'
	default:
		return '●'
	}
}

// Fade scales a color's RGB toward the background by alpha in [0,1]
func Fade(c tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	r, g, b := c.RGB()
	br, bg, bb := RgbBackground.RGB()
	mix := func(fg, bgc int32) int32 {
		return bgc + int32(float64(fg-bgc)*alpha)
	}
	return tcell.NewRGBColor(mix(r, br), mix(g, bg), mix(b, bb))
}

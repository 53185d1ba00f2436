package core

import (
	"image/color"
	"strconv"
)

// Color is a display color in "#rrggbb" form.
// Terminal renderers pass it straight to lipgloss; the window renderer
// converts it with RGBA.
type Color string

// Colors used by the engine and HUD.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#ffffff"
	ColorBlack   Color = "#000000"
	ColorRed     Color = "#ff0000"
	ColorGray    Color = "#8a8a8a"
	ColorGold    Color = "#ffd700"
	ColorCyan    Color = "#00f3ff"
	ColorPurple  Color = "#bc13fe"
	ColorYellow  Color = "#ffee00"
	ColorPink    Color = "#ff009d"
	ColorMint    Color = "#00ff9d"
)

// RGBA parses the color. Malformed or empty values yield opaque white.
func (c Color) RGBA() color.RGBA {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// WithAlpha returns the color with alpha in [0, 1] applied (premultiplied,
// as image/color expects).
func (c Color) WithAlpha(alpha float64) color.RGBA {
	alpha = ClampF(alpha, 0, 1)
	rgba := c.RGBA()
	return color.RGBA{
		R: uint8(float64(rgba.R) * alpha),
		G: uint8(float64(rgba.G) * alpha),
		B: uint8(float64(rgba.B) * alpha),
		A: uint8(255 * alpha),
	}
}

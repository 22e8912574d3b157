package render

import (
	"image"
	"image/color"
)

// glyphs is a 3x5 pixel font covering what labels need.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
	'-': {"000", "000", "111", "000", "000"},
}

const (
	glyphAdvance = 4
	labelHeight  = 7
)

// drawLabel draws text with its top-left corner at (x, y) on a filled
// background box, clipping anything outside the image.
func drawLabel(img *image.NRGBA, x, y int, text string, fg, bg color.Color) {
	bounds := img.Bounds()
	set := func(px, py int, c color.Color) {
		if (image.Point{X: px, Y: py}).In(bounds) {
			img.Set(px, py, c)
		}
	}

	labelWidth := len(text) * glyphAdvance
	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		if glyph, ok := glyphs[ch]; ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel == '1' {
						set(cx+col, y+row, fg)
					}
				}
			}
		}
		cx += glyphAdvance
	}
}

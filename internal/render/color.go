package render

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the hex colours ("#RRGGBB" or "#RRGGBBAA") of each layer.
type Palette struct {
	Background string `json:"background"`
	Interior   string `json:"interior"`
	Outline    string `json:"outline"`
	Wall       string `json:"wall"`
	Highlight  string `json:"highlight"`
}

// DefaultPalette is used for any layer left empty.
var DefaultPalette = Palette{
	Background: "#1E1E2E",
	Interior:   "#A6E3A1",
	Outline:    "#F9E2AF",
	Wall:       "#FAB387",
	Highlight:  "#F38BA8",
}

// withDefaults fills empty entries from DefaultPalette.
func (p Palette) withDefaults() Palette {
	if p.Background == "" {
		p.Background = DefaultPalette.Background
	}
	if p.Interior == "" {
		p.Interior = DefaultPalette.Interior
	}
	if p.Outline == "" {
		p.Outline = DefaultPalette.Outline
	}
	if p.Wall == "" {
		p.Wall = DefaultPalette.Wall
	}
	if p.Highlight == "" {
		p.Highlight = DefaultPalette.Highlight
	}
	return p
}

// resolved is a palette parsed into drawable colours.
type resolved struct {
	background color.NRGBA
	interior   color.NRGBA
	outline    color.NRGBA
	wall       color.NRGBA
	highlight  color.NRGBA

	// tinted interior and background for cells inside the highlighted rectangle
	tintInterior   color.NRGBA
	tintBackground color.NRGBA
}

func (p Palette) resolve() (resolved, error) {
	p = p.withDefaults()

	var r resolved
	var err error
	for _, f := range []struct {
		hex string
		dst *color.NRGBA
	}{
		{p.Background, &r.background},
		{p.Interior, &r.interior},
		{p.Outline, &r.outline},
		{p.Wall, &r.wall},
		{p.Highlight, &r.highlight},
	} {
		if *f.dst, err = parseHexColor(f.hex); err != nil {
			return resolved{}, fmt.Errorf("invalid color %q: %w", f.hex, err)
		}
	}

	r.tintInterior = blend(r.interior, r.highlight, 0.35)
	r.tintBackground = blend(r.background, r.highlight, 0.35)
	return r, nil
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 0 {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}

	var a uint8 = 255
	switch len(hex) {
	case 7:
	case 9:
		val, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, err
		}
		a = uint8(val)
		hex = hex[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color length")
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// blend mixes over into base in Lab space; t=0 gives base, t=1 gives over.
func blend(base, over color.NRGBA, t float64) color.NRGBA {
	c1 := colorful.Color{R: float64(base.R) / 255, G: float64(base.G) / 255, B: float64(base.B) / 255}
	c2 := colorful.Color{R: float64(over.R) / 255, G: float64(over.G) / 255, B: float64(over.B) / 255}
	r, g, b := c1.BlendLab(c2, t).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: base.A}
}

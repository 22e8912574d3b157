package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/floor-tools-mcp/internal/boundary"
	"github.com/ironsheep/floor-tools-mcp/internal/geometry"
	"github.com/ironsheep/floor-tools-mcp/internal/search"
)

// Defaults applied when Options fields are zero.
const (
	DefaultMaxDimension = 512
	MaxScale            = 16
)

// Options controls rendering.
type Options struct {
	// MaxDimension caps the longest side of the raster before scaling.
	MaxDimension int

	// Scale enlarges the raster by an integer factor (1 to MaxScale).
	Scale int

	// Palette overrides layer colours; empty entries use DefaultPalette.
	Palette Palette

	// Label writes the highlighted rectangle's area next to its corner.
	Label bool

	// OutputPath, when set, also saves the PNG to this file.
	OutputPath string
}

// Result contains the rendered image.
type Result struct {
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	CellsPerPixel int    `json:"cells_per_pixel"`
	Scale         int    `json:"scale"`
	ImageBase64   string `json:"image_base64"`
	MimeType      string `json:"mime_type"`
	OutputPath    string `json:"output_path,omitempty"`
}

// Floorplan renders b, optionally outlining the rectangle of highlight.
func Floorplan(b *boundary.Boundary, opts Options, highlight *search.Pair) (*Result, error) {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Scale > MaxScale {
		return nil, fmt.Errorf("scale %d exceeds maximum of %d", opts.Scale, MaxScale)
	}

	pal, err := opts.Palette.resolve()
	if err != nil {
		return nil, err
	}

	box := b.Bounds().Expand(1)
	step := max((max(box.Width(), box.Height())+opts.MaxDimension-1)/opts.MaxDimension, 1)
	w := (box.Width() + step - 1) / step
	h := (box.Height() + step - 1) / step

	canvas := imaging.New(w, h, pal.background)
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			c := geometry.Coordinate{X: box.Min.X + px*step, Y: box.Min.Y + py*step}
			canvas.SetNRGBA(px, py, classify(b, c, highlight, step, pal))
		}
	}

	out := canvas
	if opts.Scale > 1 {
		out = imaging.Resize(canvas, w*opts.Scale, h*opts.Scale, imaging.NearestNeighbor)
	}

	if opts.Label && highlight != nil {
		x := (highlight.Rect().Min.X - box.Min.X) / step * opts.Scale
		y := (highlight.Rect().Min.Y - box.Min.Y) / step * opts.Scale
		drawLabel(out, x+2, y+2, strconv.FormatInt(highlight.Area, 10), color.White, color.NRGBA{A: 180})
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, out, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	res := &Result{
		Width:         out.Bounds().Dx(),
		Height:        out.Bounds().Dy(),
		CellsPerPixel: step,
		Scale:         opts.Scale,
		ImageBase64:   base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:      "image/png",
	}

	if opts.OutputPath != "" {
		if err := imgio.Save(opts.OutputPath, out, imgio.PNGEncoder()); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		res.OutputPath = opts.OutputPath
	}

	return res, nil
}

// classify picks the colour of the pixel whose top-left sample is c.
//
// When downsampling, a highlighted rectangle's edge may fall between samples;
// any sample within step cells of the edge is drawn as the edge so it stays
// visible.
func classify(b *boundary.Boundary, c geometry.Coordinate, highlight *search.Pair, step int, pal resolved) color.NRGBA {
	inside := b.Contains(c)

	if highlight != nil {
		r := highlight.Rect()
		if r.Contains(c) {
			if c.X-r.Min.X < step || r.Max.X-c.X < step || c.Y-r.Min.Y < step || r.Max.Y-c.Y < step {
				return pal.highlight
			}
			if inside {
				return pal.tintInterior
			}
			return pal.tintBackground
		}
	}

	switch {
	case b.IsWall(c):
		return pal.wall
	case b.OnOutline(c):
		return pal.outline
	case inside:
		return pal.interior
	default:
		return pal.background
	}
}

// Decode reads back the PNG carried by a Result.
func Decode(res *Result) (image.Image, error) {
	data, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

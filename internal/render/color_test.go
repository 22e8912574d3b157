package render

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FF0000", color.NRGBA{R: 255, A: 255}, false},
		{"00ff00", color.NRGBA{G: 255, A: 255}, false},
		{"#0000FF80", color.NRGBA{B: 255, A: 128}, false},
		{"", color.NRGBA{}, true},
		{"#FFF", color.NRGBA{}, true},
		{"#GG0000", color.NRGBA{}, true},
		{"#FF0000ZZ", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: got %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	black := color.NRGBA{A: 255}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	if got := blend(black, white, 0); got != black {
		t.Errorf("t=0: got %v, want %v", got, black)
	}
	if got := blend(black, white, 1); got != white {
		t.Errorf("t=1: got %v, want %v", got, white)
	}

	mid := blend(black, white, 0.5)
	if mid.R == 0 || mid.R == 255 || mid.R != mid.G || mid.G != mid.B {
		t.Errorf("t=0.5 should be a mid grey, got %v", mid)
	}
}

func TestPalette_WithDefaults(t *testing.T) {
	p := Palette{Interior: "#123456"}.withDefaults()
	if p.Interior != "#123456" {
		t.Errorf("Interior overridden: %q", p.Interior)
	}
	if p.Background != DefaultPalette.Background || p.Highlight != DefaultPalette.Highlight {
		t.Errorf("defaults not applied: %+v", p)
	}
}

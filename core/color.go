package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// WithAlpha attaches an alpha channel, producing a paintable Color
func (c RGB) WithAlpha(a uint8) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Hex formats the color as "#rrggbb"
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// ParseHex parses a "#rrggbb" string into an RGB color
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGB{
		R: uint8(c.R*255.0 + 0.5),
		G: uint8(c.G*255.0 + 0.5),
		B: uint8(c.B*255.0 + 0.5),
	}, nil
}

// Color is an RGB color with straight (non-premultiplied) alpha
type Color struct {
	R, G, B, A uint8
}

// RGB drops the alpha channel
func (c Color) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Over composites top over bottom using porter-duff "over" with straight alpha
// If top is fully opaque or bottom fully transparent, return early to save math
func Over(top, bottom Color) Color {
	if top.A >= 255 || bottom.A == 0 {
		return top
	}
	if top.A == 0 {
		return bottom
	}

	at := float64(top.A) / 255.0
	ab := float64(bottom.A) / 255.0
	inv := 1.0 - at

	ao := at + ab*inv
	if ao <= 0 {
		return Color{}
	}

	blend := func(t, b uint8) uint8 {
		return clampChannel((float64(t)*at+float64(b)*ab*inv)/ao + 0.5)
	}

	return Color{
		R: blend(top.R, bottom.R),
		G: blend(top.G, bottom.G),
		B: blend(top.B, bottom.B),
		A: clampChannel(ao*255.0 + 0.5),
	}
}

// FlattenOver composites a translucent color onto an opaque backdrop,
// yielding the opaque color a terminal can actually display
func FlattenOver(c Color, backdrop RGB) RGB {
	if c.A >= 255 {
		return c.RGB()
	}
	if c.A == 0 {
		return backdrop
	}

	a := float64(c.A) / 255.0
	inv := 1.0 - a

	return RGB{
		R: clampChannel(float64(c.R)*a + float64(backdrop.R)*inv + 0.5),
		G: clampChannel(float64(c.G)*a + float64(backdrop.G)*inv + 0.5),
		B: clampChannel(float64(c.B)*a + float64(backdrop.B)*inv + 0.5),
	}
}

// clampChannel converts float to uint8 efficiently
func clampChannel(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

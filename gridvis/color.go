package gridvis

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex parses an opaque "#RRGGBB" color.
func Hex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// MustHex is Hex for fixed palettes; it panics on a malformed string.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette parses a fixed list of hex colors in order.
func Palette(hex ...string) []color.NRGBA {
	p := make([]color.NRGBA, len(hex))
	for i, s := range hex {
		p[i] = MustHex(s)
	}
	return p
}

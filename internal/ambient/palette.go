package ambient

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette is the set of hues particles and streams are drawn from.
var DefaultPalette = MustParsePalette("#00d4ff", "#3b82f6", "#8b5cf6", "#10b981", "#06b6d4")

// Background is the dark tone painted over each frame to fade trails.
var Background = color.RGBA{R: 0x05, G: 0x08, B: 0x14, A: 0xff}

var errEmptyPalette = errors.New("palette is empty")

// ParsePalette converts hex strings ("#rrggbb" or "#rgb") into opaque colours.
func ParsePalette(hexes ...string) ([]color.RGBA, error) {
	out := make([]color.RGBA, 0, len(hexes))
	for _, h := range hexes {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if !strings.HasPrefix(h, "#") {
			h = "#" + h
		}
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("palette colour %q: %w", h, err)
		}
		r, g, b := c.RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	if len(out) == 0 {
		return nil, errEmptyPalette
	}
	return out, nil
}

// MustParsePalette is like ParsePalette but panics on error.
func MustParsePalette(hexes ...string) []color.RGBA {
	p, err := ParsePalette(hexes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Tint blends c toward white by t in Lab space. t is clamped to [0,1].
func Tint(c color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return c
	}
	if t > 1 {
		t = 1
	}
	src, _ := colorful.MakeColor(c)
	r, g, b := src.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, t).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func pick(r Rand, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return palette[r.IntN(len(palette))]
}

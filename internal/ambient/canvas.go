package ambient

import "image/color"

// Canvas is the drawing context the engine paints on. Alpha values are in
// [0,1] and multiply the opaque colour passed in; glow is the radius of the
// colour-matched halo around a shape, 0 for none.
type Canvas interface {
	// Fill paints the whole surface.
	Fill(c color.RGBA, alpha float64)
	FillCircle(x, y, r float64, c color.RGBA, alpha, glow float64)
	FillRect(x, y, w, h float64, c color.RGBA, alpha, glow float64)
	// StrokePath draws one connected line through pts.
	StrokePath(pts []Point, width float64, c color.RGBA, alpha float64)
}

// Discard is a Canvas that draws nothing.
var Discard Canvas = discard{}

type discard struct{}

func (discard) Fill(color.RGBA, float64) {}

func (discard) FillCircle(_, _, _ float64, _ color.RGBA, _, _ float64) {}

func (discard) FillRect(_, _, _, _ float64, _ color.RGBA, _, _ float64) {}

func (discard) StrokePath([]Point, float64, color.RGBA, float64) {}

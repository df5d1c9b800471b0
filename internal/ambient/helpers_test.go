package ambient

import (
	"image/color"
	"io"
	"log"
)

// seqRand replays a fixed sequence of Float64 values; IntN scales the same
// sequence.
type seqRand struct {
	vals []float64
	i    int
}

func newSeqRand(vals ...float64) *seqRand { return &seqRand{vals: vals} }

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func (r *seqRand) IntN(n int) int { return int(r.Float64() * float64(n)) }

type drawOp struct {
	kind  string
	alpha float64
	glow  float64
	pts   int
}

type recordingCanvas struct {
	ops []drawOp
}

func (c *recordingCanvas) Fill(_ color.RGBA, alpha float64) {
	c.ops = append(c.ops, drawOp{kind: "fill", alpha: alpha})
}

func (c *recordingCanvas) FillCircle(_, _, _ float64, _ color.RGBA, alpha, glow float64) {
	c.ops = append(c.ops, drawOp{kind: "circle", alpha: alpha, glow: glow})
}

func (c *recordingCanvas) FillRect(_, _, _, _ float64, _ color.RGBA, alpha, glow float64) {
	c.ops = append(c.ops, drawOp{kind: "rect", alpha: alpha, glow: glow})
}

func (c *recordingCanvas) StrokePath(pts []Point, _ float64, _ color.RGBA, alpha float64) {
	c.ops = append(c.ops, drawOp{kind: "path", alpha: alpha, pts: len(pts)})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (c *recordingCanvas) reset() { c.ops = c.ops[:0] }

// newTestSurface returns a sized surface backed by a recording canvas.
func newTestSurface(w, h int) (*Surface, *recordingCanvas) {
	rc := &recordingCanvas{}
	s := NewSurface(func() (Canvas, bool) { return rc, true })
	s.Resize(w, h)
	return s, rc
}

var quietLog = log.New(io.Discard, "", 0)

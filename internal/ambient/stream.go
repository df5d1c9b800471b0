package ambient

import (
	"image/color"
	"math"
)

// Stream tuning.
const (
	streamMinSpeed    = 1.0
	streamMaxSpeed    = 3.0
	streamMinAlpha    = 0.1
	streamMaxAlpha    = 0.5
	streamMinSegments = 30
	streamMaxSegments = 80
	streamMargin      = 50.0
	turnChance        = 0.01
	maxTurn           = 0.25 // radians either way
	defaultStreams    = 12
)

// Segment is one sample of a stream's trail.
type Segment struct {
	X, Y    float64
	Opacity float64
}

// Stream is a long-lived trailing line. Segments run head first; their
// opacities are fixed at creation and fall off toward the tail.
type Stream struct {
	X, Y     float64
	Heading  float64
	Speed    float64
	Color    color.RGBA
	Opacity  float64
	Segments []Segment
}

// SpawnStream creates a stream with a random head and a trail laid out
// behind it along the reverse heading, one step of its own speed apart.
func SpawnStream(r Rand, size Size, palette []color.RGBA) Stream {
	return NewStream(
		Point{math.Max(0, size.W) * r.Float64(), math.Max(0, size.H) * r.Float64()},
		r.Float64()*2*math.Pi,
		between(r, streamMinSpeed, streamMaxSpeed),
		pick(r, palette),
		between(r, streamMinAlpha, streamMaxAlpha),
		intBetween(r, streamMinSegments, streamMaxSegments),
	)
}

// NewStream builds a stream from explicit parameters. count is raised to 1
// if lower.
func NewStream(head Point, heading, speed float64, c color.RGBA, opacity float64, count int) Stream {
	if count < 1 {
		count = 1
	}
	s := Stream{
		X:        head.X,
		Y:        head.Y,
		Heading:  heading,
		Speed:    speed,
		Color:    c,
		Opacity:  opacity,
		Segments: make([]Segment, count),
	}
	dx, dy := math.Cos(heading)*speed, math.Sin(heading)*speed
	for i := range s.Segments {
		s.Segments[i] = Segment{
			X:       head.X - dx*float64(i),
			Y:       head.Y - dy*float64(i),
			Opacity: float64(count-i) / float64(count) * opacity,
		}
	}
	return s
}

// Update moves the head one step and drags the trail behind it as a delay
// line. A head that leaves the surface by more than the margin re-enters on
// the opposite side at a random coordinate along that edge.
func (s *Stream) Update(r Rand, size Size) {
	s.X += math.Cos(s.Heading) * s.Speed
	s.Y += math.Sin(s.Heading) * s.Speed

	switch {
	case s.X > size.W+streamMargin:
		s.X = -streamMargin
		s.Y = math.Max(0, size.H) * r.Float64()
	case s.X < -streamMargin:
		s.X = size.W + streamMargin
		s.Y = math.Max(0, size.H) * r.Float64()
	case s.Y > size.H+streamMargin:
		s.Y = -streamMargin
		s.X = math.Max(0, size.W) * r.Float64()
	case s.Y < -streamMargin:
		s.Y = size.H + streamMargin
		s.X = math.Max(0, size.W) * r.Float64()
	}

	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i].X = s.Segments[i-1].X
		s.Segments[i].Y = s.Segments[i-1].Y
	}
	if len(s.Segments) > 0 {
		s.Segments[0].X = s.X
		s.Segments[0].Y = s.Y
	}

	if r.Float64() < turnChance {
		s.Heading += between(r, -maxTurn, maxTurn)
	}
}

// Head returns the current head position.
func (s *Stream) Head() Point { return Point{s.X, s.Y} }

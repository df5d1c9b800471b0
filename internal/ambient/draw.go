package ambient

import "image/color"

// Draw tuning. glowFactor is the halo radius per unit of particle size;
// dotEvery is the number of segments between trail dots.
const (
	defaultFade = 0.08
	glowFactor  = 4.0
	streamWidth = 1.0
	dotEvery    = 5
	dotRadius   = 1.5
	dotGlow     = 6.0
	dotTint     = 0.35
)

func drawFade(c Canvas, bg color.RGBA, alpha float64) {
	c.Fill(bg, alpha)
}

// drawParticle paints accents as squares and ambient particles as circles,
// both centred on the particle position.
func drawParticle(c Canvas, p *Particle, glow float64) {
	if p.Opacity <= 0 {
		return
	}
	halo := p.Size * glowFactor * glow
	if p.Kind == KindAccent {
		c.FillRect(p.X-p.Size, p.Y-p.Size, p.Size*2, p.Size*2, p.Color, p.Opacity, halo)
		return
	}
	c.FillCircle(p.X, p.Y, p.Size, p.Color, p.Opacity, halo)
}

// drawStream strokes the trail once at the head opacity, then marks every
// dotEvery-th segment with a glowing dot at that segment's own opacity.
// buf is reused between calls to avoid a per-frame allocation.
func drawStream(c Canvas, s *Stream, glow float64, buf []Point) []Point {
	switch len(s.Segments) {
	case 0:
		return buf
	case 1:
		seg := s.Segments[0]
		c.FillCircle(seg.X, seg.Y, dotRadius, s.Color, seg.Opacity, 0)
		return buf
	}

	buf = buf[:0]
	for _, seg := range s.Segments {
		buf = append(buf, Point{seg.X, seg.Y})
	}
	c.StrokePath(buf, streamWidth, s.Color, s.Segments[0].Opacity)

	tint := Tint(s.Color, dotTint)
	for i := 0; i < len(s.Segments); i += dotEvery {
		seg := s.Segments[i]
		c.FillCircle(seg.X, seg.Y, dotRadius, tint, seg.Opacity, dotGlow*glow)
	}
	return buf
}

package ambient

// Surface tracks the drawable area's dimensions and hands out its canvas.
// Entities are never rescaled on resize; they wrap against the new bounds.
type Surface struct {
	size     Size
	acquire  func() (Canvas, bool)
	onResize []func(Size)
}

// NewSurface wraps a canvas accessor. acquire may report false when the
// host has no canvas this frame; a nil acquire means no canvas ever.
func NewSurface(acquire func() (Canvas, bool)) *Surface {
	return &Surface{acquire: acquire}
}

// Resize records new pixel dimensions. Negative values clamp to zero.
// Listeners fire only when the size actually changes.
func (s *Surface) Resize(w, h int) {
	next := Size{W: float64(max(w, 0)), H: float64(max(h, 0))}
	if next == s.size {
		return
	}
	s.size = next
	for _, fn := range s.onResize {
		fn(next)
	}
}

// OnResize registers fn to be called after every effective resize.
func (s *Surface) OnResize(fn func(Size)) {
	s.onResize = append(s.onResize, fn)
}

func (s *Surface) Size() Size { return s.size }

// Canvas returns the current drawing context, if any.
func (s *Surface) Canvas() (Canvas, bool) {
	if s.acquire == nil {
		return nil, false
	}
	c, ok := s.acquire()
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

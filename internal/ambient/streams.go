package ambient

import "image/color"

// StreamPool holds a fixed population of streams. Streams are never removed;
// Fill only tops up a pool that is short of its target.
type StreamPool struct {
	target  int
	palette []color.RGBA
	rng     Rand
	streams []Stream
}

// NewStreamPool returns an empty pool that tops up to target.
func NewStreamPool(target int, palette []color.RGBA, rng Rand) *StreamPool {
	if target < 0 {
		target = 0
	}
	return &StreamPool{
		target:  target,
		palette: palette,
		rng:     rng,
		streams: make([]Stream, 0, target),
	}
}

// Update advances every stream in place.
func (sp *StreamPool) Update(size Size) {
	for i := range sp.streams {
		sp.streams[i].Update(sp.rng, size)
	}
}

// Fill spawns streams until the target is reached.
func (sp *StreamPool) Fill(size Size) int {
	created := 0
	for len(sp.streams) < sp.target {
		sp.streams = append(sp.streams, SpawnStream(sp.rng, size, sp.palette))
		created++
	}
	return created
}

// Tick is Update followed by Fill.
func (sp *StreamPool) Tick(size Size) {
	sp.Update(size)
	sp.Fill(size)
}

// Add inserts s as is, bypassing the spawn rules. The target still bounds
// subsequent fills.
func (sp *StreamPool) Add(s Stream) { sp.streams = append(sp.streams, s) }

// Streams exposes the live streams. The slice is only valid until the next
// Fill or Reset.
func (sp *StreamPool) Streams() []Stream { return sp.streams }

// Len returns the number of live streams.
func (sp *StreamPool) Len() int { return len(sp.streams) }

// Target returns the population the pool tops up to.
func (sp *StreamPool) Target() int { return sp.target }

// Reset drops all streams and releases the backing array.
func (sp *StreamPool) Reset() { sp.streams = nil }

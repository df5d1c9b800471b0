package ambient

// FrameID identifies a requested frame callback. Zero is never issued.
type FrameID uint64

// Scheduler runs a callback once before the next repaint.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a Scheduler drained explicitly by the host, once per
// repaint. Callbacks requested while a flush is running wait for the next
// flush, so a callback that reschedules itself runs exactly once per frame.
type FrameQueue struct {
	next    FrameID
	pending []queuedFrame
	running []queuedFrame // batch being flushed
}

type queuedFrame struct {
	id FrameID
	fn func()
}

func NewFrameQueue() *FrameQueue { return &FrameQueue{} }

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending callback. Unknown or already run ids are
// ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Flush runs the callbacks queued before the call and returns how many ran.
func (q *FrameQueue) Flush() int {
	q.running, q.pending = q.pending, nil
	ran := 0
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn()
			ran++
		}
	}
	q.running = nil
	return ran
}

// Len returns the number of pending callbacks.
func (q *FrameQueue) Len() int { return len(q.pending) }

package ui

import "github.com/nobonobo/orbit-viewer/host/session"

// frameQueue is a session.FrameScheduler driven by element renders. A
// request invalidates the element; the next render runs the callback.
type frameQueue struct {
	invalidate func()

	nextID    uint64
	pendingID uint64
	pending   func()
}

var _ session.FrameScheduler = (*frameQueue)(nil)

func newFrameQueue(invalidate func()) *frameQueue {
	return &frameQueue{
		invalidate: invalidate,
	}
}

func (q *frameQueue) RequestFrame(fn func()) session.CancelFunc {
	q.nextID++
	id := q.nextID
	q.pendingID = id
	q.pending = fn
	q.invalidate()
	return func() {
		if q.pendingID == id {
			q.pendingID = 0
			q.pending = nil
		}
	}
}

// Run runs the pending callback, if any, and reports whether it did.
func (q *frameQueue) Run() bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pendingID = 0
	q.pending = nil
	fn()
	return true
}

func (q *frameQueue) Pending() bool {
	return q.pending != nil
}

package trace

// Queue is a deterministic dispatcher. Engines post callbacks with Dispatch
// and nothing runs until Flush, the way a UI loop runs posted work between
// events.
type Queue struct {
	pending []func()
}

// Dispatch queues a callback.
func (q *Queue) Dispatch(callback func()) {
	if callback == nil {
		return
	}
	q.pending = append(q.pending, callback)
}

// Len returns the number of queued callbacks.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Flush runs queued callbacks, including ones queued while flushing, and
// returns how many ran.
func (q *Queue) Flush() int {
	n := 0
	for len(q.pending) > 0 {
		callback := q.pending[0]
		q.pending = q.pending[1:]
		callback()
		n++
	}
	return n
}

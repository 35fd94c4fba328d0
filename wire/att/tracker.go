package att

// PendingRead is a Read Request waiting for its response
type PendingRead struct {
	Handle  uint16 // attribute handle
	Type    []byte // attribute type UUID, little-endian
	In      bool   // direction of the request
	Channel uint16
	Decode  DecodeFunc
}

// ReadTracker queues outstanding reads of one connection and pairs them with
// responses. ATT carries no transaction id, so a response is matched to the
// oldest read that travelled in the opposite direction on the same channel.
// Pipelined reads on one channel can therefore be paired with the wrong
// response.
//
// A ReadTracker is owned by the goroutine dissecting its connection and is not
// safe for concurrent use.
type ReadTracker struct {
	pending  []PendingRead
	capacity int
	onEvict  func(PendingRead)
}

// NewReadTracker creates a tracker holding at most capacity reads. Zero means
// unbounded. When full, Push drops the oldest entry.
func NewReadTracker(capacity int) *ReadTracker {
	if capacity < 0 {
		capacity = 0
	}
	return &ReadTracker{capacity: capacity}
}

// SetEvictCallback sets a callback invoked for entries dropped by the capacity
// policy
func (rt *ReadTracker) SetEvictCallback(cb func(PendingRead)) {
	rt.onEvict = cb
}

// Push queues a read
func (rt *ReadTracker) Push(p PendingRead) {
	if rt.capacity > 0 && len(rt.pending) >= rt.capacity {
		evicted := rt.pending[0]
		rt.pending = rt.pending[1:]
		if rt.onEvict != nil {
			rt.onEvict(evicted)
		}
	}
	rt.pending = append(rt.pending, p)
}

// Match removes and returns the oldest read whose direction is opposite to in
// and whose channel equals channel.
func (rt *ReadTracker) Match(in bool, channel uint16) (PendingRead, bool) {
	for i, p := range rt.pending {
		if p.In == in || p.Channel != channel {
			continue
		}
		rt.pending = append(rt.pending[:i:i], rt.pending[i+1:]...)
		return p, true
	}
	return PendingRead{}, false
}

// Len returns the number of queued reads
func (rt *ReadTracker) Len() int {
	return len(rt.pending)
}

// Clear drops every queued read
func (rt *ReadTracker) Clear() {
	rt.pending = nil
}

package timeline

import "time"

// HistoryCapacity is the number of transition timestamps kept per key.
const HistoryCapacity = 64

// History is a fixed-size ring of transition timestamps, newest first.
// Pushing onto a full ring evicts the oldest entry.
type History struct {
	buf  [HistoryCapacity]time.Time
	head int // index of the newest entry
	n    int
}

// Len returns the number of stored timestamps.
func (h *History) Len() int { return h.n }

// At returns the i-th newest timestamp (0 is the newest).
func (h *History) At(i int) time.Time {
	if i < 0 || i >= h.n {
		return time.Time{}
	}
	return h.buf[(h.head+i)%HistoryCapacity]
}

// Front returns the newest timestamp.
func (h *History) Front() (time.Time, bool) {
	if h.n == 0 {
		return time.Time{}, false
	}
	return h.buf[h.head], true
}

// Push records t as the newest entry. Entries must strictly decrease from
// front to back, so a t that is not after the current front is clamped to
// one nanosecond past it.
func (h *History) Push(t time.Time) {
	if front, ok := h.Front(); ok && !t.After(front) {
		t = front.Add(time.Nanosecond)
	}
	h.head = (h.head - 1 + HistoryCapacity) % HistoryCapacity
	h.buf[h.head] = t
	if h.n < HistoryCapacity {
		h.n++
	}
}

// AppendTo appends the timestamps newest first to dst.
func (h *History) AppendTo(dst []time.Time) []time.Time {
	for i := 0; i < h.n; i++ {
		dst = append(dst, h.buf[(h.head+i)%HistoryCapacity])
	}
	return dst
}

// Reset drops every entry.
func (h *History) Reset() {
	h.head, h.n = 0, 0
}

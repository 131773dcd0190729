package keylogger

import "sync"

// Replay is a Source that delivers a fixed list of events.
//
// The channel is closed after the last event unless KeepOpen is set, in which
// case it stays open until Stop, like a live subscription.
type Replay struct {
	Events   []Event
	Err      error // returned from Start when set
	KeepOpen bool

	mu      sync.Mutex
	ch      chan Event
	stopped bool
}

// Start queues every event and returns the channel.
func (r *Replay) Start() (<-chan Event, error) {
	if r.Err != nil {
		return nil, r.Err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ch != nil {
		return nil, ErrAlreadyRunning
	}

	ch := make(chan Event, len(r.Events))
	for _, ev := range r.Events {
		ch <- ev
	}
	if !r.KeepOpen {
		close(ch)
		r.stopped = true
	}
	r.ch = ch
	return ch, nil
}

// Stop closes the channel if it is still open.
func (r *Replay) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ch != nil && !r.stopped {
		close(r.ch)
		r.stopped = true
	}
}

// Package capture feeds keyboard events from a keylogger source into the
// timeline store. It is the store's only writer of key state.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keylogger"
	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

// ErrSubscriptionLost is returned when the event stream ends while capture
// is still expected to run. Key state would be frozen from then on.
var ErrSubscriptionLost = errors.New("keyboard event subscription lost")

// Stats counts events seen by a capture.
type Stats struct {
	Received uint64
	Applied  uint64
	Ignored  uint64
}

// Capture drains a Source into a Store.
type Capture struct {
	store  *timeline.Store
	source keylogger.Source
	clock  func() time.Time
	events <-chan keylogger.Event

	received atomic.Uint64
	applied  atomic.Uint64
}

// Options controls capture behaviour.
type Options struct {
	Clock func() time.Time // substitutes for missing event timestamps
}

// New creates a capture writing into store.
func New(store *timeline.Store, source keylogger.Source, opts Options) *Capture {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Capture{store: store, source: source, clock: clock}
}

// Subscribe starts the source. Calling it before Run lets callers fail at
// startup, before any UI exists, when the subscription cannot be set up.
func (c *Capture) Subscribe() error {
	if c.events != nil {
		return nil
	}
	events, err := c.source.Start()
	if err != nil {
		return fmt.Errorf("start keyboard subscription: %w", err)
	}
	c.events = events
	log.Printf("Keyboard capture started for %d keys", c.store.Len())
	return nil
}

// Run applies events until ctx is cancelled (returns nil) or the subscription
// ends (returns ErrSubscriptionLost). It subscribes first if Subscribe has not
// been called.
func (c *Capture) Run(ctx context.Context) error {
	if err := c.Subscribe(); err != nil {
		return err
	}
	defer c.source.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-c.events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				log.Printf("Keyboard event stream closed after %d events", c.received.Load())
				return ErrSubscriptionLost
			}
			c.handle(ev)
		}
	}
}

func (c *Capture) handle(ev keylogger.Event) {
	c.received.Add(1)

	var pressed bool
	switch ev.Kind {
	case keylogger.Press:
		pressed = true
	case keylogger.Release:
		pressed = false
	default:
		return
	}

	at := ev.Time
	if at.IsZero() {
		at = c.clock()
	}
	if c.store.Apply(ev.Code, pressed, at) {
		c.applied.Add(1)
	}
}

// Stats returns a snapshot of the event counters.
func (c *Capture) Stats() Stats {
	received := c.received.Load()
	applied := c.applied.Load()
	return Stats{Received: received, Applied: applied, Ignored: received - applied}
}

// Package keylogger subscribes to global keyboard press/release events.
package keylogger

import (
	"errors"
	"sync"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

// Kind is the type of a keyboard event.
type Kind uint8

const (
	Press Kind = iota + 1
	Release
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// Event is a single key transition reported by the OS.
type Event struct {
	Kind Kind
	Code keys.Code
	Time time.Time // zero when the platform gives no timestamp
}

// Source delivers keyboard events until stopped. The channel is closed when
// the subscription ends, whether through Stop or because the OS dropped it.
type Source interface {
	Start() (<-chan Event, error)
	Stop()
}

// bufferSize bounds the events queued between the hook and the consumer;
// events arriving while the buffer is full are dropped.
const bufferSize = 1024

var (
	ErrAlreadyRunning          = errors.New("keylogger already running")
	ErrAccessibilityPermission = errors.New("accessibility permissions not granted - please enable in System Settings > Privacy & Security > Accessibility")
	ErrTapCreate               = errors.New("failed to create keyboard event tap")
	ErrHookStart               = errors.New("keyboard hook failed to start")
	ErrNoDisplay               = errors.New("no display available for the keyboard hook (DISPLAY and WAYLAND_DISPLAY are unset)")
)

var (
	mu      sync.Mutex
	running bool
)

// System is the global OS keyboard hook. Only one may run per process.
type System struct{}

// Start begins capturing keystrokes and returns a channel that receives events.
func (System) Start() (<-chan Event, error) { return start() }

// Stop ends the subscription and closes the event channel.
func (System) Stop() { stop() }

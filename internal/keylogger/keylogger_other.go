//go:build !darwin
// +build !darwin

package keylogger

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
	hook "github.com/robotn/gohook"
)

var done chan struct{}

// CheckAccessibilityPermissions always reports true outside macOS.
func CheckAccessibilityPermissions() bool { return true }

func start() (<-chan Event, error) {
	mu.Lock()
	defer mu.Unlock()

	if running {
		return nil, ErrAlreadyRunning
	}

	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return nil, ErrNoDisplay
	}

	raw := hook.Start()
	out := make(chan Event, bufferSize)
	stopCh := make(chan struct{})
	enabled := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		pump(raw, out, stopCh, enabled)
	}()

	// libuiohook reports registration failures only through its own log, so
	// a hook that never announces itself is treated as failed.
	if err := awaitHook(enabled, exited, hookStartTimeout); err != nil {
		close(stopCh)
		hook.End()
		return nil, err
	}

	done = stopCh
	running = true
	return out, nil
}

// hookStartTimeout bounds the wait for libuiohook's HookEnabled event.
const hookStartTimeout = 2 * time.Second

func awaitHook(enabled, exited <-chan struct{}, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-enabled:
		return nil
	case <-exited:
		return fmt.Errorf("%w: hook disabled during startup", ErrHookStart)
	case <-timer.C:
		return fmt.Errorf("%w: not enabled after %s", ErrHookStart, timeout)
	}
}

// pump converts raw hook events into out until stop is closed, raw is
// closed, or the hook reports HookDisabled. It always closes out, and
// closes enabled on the first HookEnabled.
func pump(raw <-chan hook.Event, out chan<- Event, stop <-chan struct{}, enabled chan<- struct{}) {
	defer close(out)
	for {
		select {
		case <-stop:
			return
		case ev, ok := <-raw:
			if !ok {
				return
			}
			switch ev.Kind {
			case hook.HookEnabled:
				if enabled != nil {
					close(enabled)
					enabled = nil
				}
				continue
			case hook.HookDisabled:
				return
			}
			converted, ok := convert(ev)
			if !ok {
				continue
			}
			select {
			case out <- converted:
			default:
				// Channel full, drop event
			}
		}
	}
}

// convert maps a libuiohook event to an Event. KeyHold is uiohook's key
// pressed notification; KeyDown is the synthesized "typed" event and is skipped.
func convert(ev hook.Event) (Event, bool) {
	var kind Kind
	switch ev.Kind {
	case hook.KeyHold:
		kind = Press
	case hook.KeyUp:
		kind = Release
	default:
		return Event{}, false
	}
	at := ev.When
	if at.IsZero() {
		at = time.Now()
	}
	return Event{Kind: kind, Code: keys.Code(ev.Keycode), Time: at}, true
}

func stop() {
	mu.Lock()
	defer mu.Unlock()

	if done != nil {
		close(done)
		done = nil
		hook.End()
	}
	running = false
}

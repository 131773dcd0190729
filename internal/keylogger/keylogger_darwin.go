//go:build darwin
// +build darwin

package keylogger

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation -framework ApplicationServices

#include <CoreGraphics/CoreGraphics.h>
#include <ApplicationServices/ApplicationServices.h>

extern void goKeyEventCallback(int keycode, int isDown);
extern void goFlagsChangedCallback(int keycode, unsigned long long flags);

static CFMachPortRef eventTap = NULL;
static CFRunLoopRef tapRunLoop = NULL;

static CGEventRef eventCallback(CGEventTapProxy proxy, CGEventType type, CGEventRef event, void *refcon) {
    if (type == kCGEventTapDisabledByTimeout || type == kCGEventTapDisabledByUserInput) {
        if (eventTap != NULL) {
            CGEventTapEnable(eventTap, true);
        }
        return event;
    }

    CGKeyCode keycode = (CGKeyCode)CGEventGetIntegerValueField(event, kCGKeyboardEventKeycode);
    if (type == kCGEventKeyDown) {
        // Holding a key produces autorepeat key downs; only the first counts
        if (CGEventGetIntegerValueField(event, kCGKeyboardEventAutorepeat) != 0) {
            return event;
        }
        goKeyEventCallback((int)keycode, 1);
    } else if (type == kCGEventKeyUp) {
        goKeyEventCallback((int)keycode, 0);
    } else if (type == kCGEventFlagsChanged) {
        // Modifier keys only produce flagsChanged; Go decodes the flags
        goFlagsChangedCallback((int)keycode, (unsigned long long)CGEventGetFlags(event));
    }
    return event;
}

static int createEventTap() {
    CGEventMask eventMask = CGEventMaskBit(kCGEventKeyDown) |
                            CGEventMaskBit(kCGEventKeyUp) |
                            CGEventMaskBit(kCGEventFlagsChanged);
    eventTap = CGEventTapCreate(
        kCGSessionEventTap,
        kCGHeadInsertEventTap,
        kCGEventTapOptionListenOnly,
        eventMask,
        eventCallback,
        NULL
    );
    return eventTap != NULL;
}

static int checkAccessibilityPermissions() {
    return AXIsProcessTrusted();
}

static void runEventLoop() {
    CFRunLoopSourceRef runLoopSource = CFMachPortCreateRunLoopSource(kCFAllocatorDefault, eventTap, 0);
    tapRunLoop = CFRunLoopGetCurrent();
    CFRunLoopAddSource(tapRunLoop, runLoopSource, kCFRunLoopCommonModes);
    CGEventTapEnable(eventTap, true);
    CFRunLoopRun();

    CGEventTapEnable(eventTap, false);
    CFRunLoopRemoveSource(tapRunLoop, runLoopSource, kCFRunLoopCommonModes);
    CFRelease(runLoopSource);
    CFRelease(eventTap);
    eventTap = NULL;
    tapRunLoop = NULL;
}

static void stopEventLoop() {
    if (tapRunLoop != NULL) {
        CFRunLoopStop(tapRunLoop);
    }
}
*/
import "C"

import (
	"runtime"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

var eventChan chan Event

//export goKeyEventCallback
func goKeyEventCallback(keycode C.int, isDown C.int) {
	ev := Event{Kind: Release, Code: keys.Code(keycode), Time: time.Now()}
	if isDown != 0 {
		ev.Kind = Press
	}
	deliver(ev)
}

//export goFlagsChangedCallback
func goFlagsChangedCallback(keycode C.int, flags C.ulonglong) {
	for _, ev := range flagsChangedEvents(keys.Code(keycode), uint64(flags), time.Now()) {
		deliver(ev)
	}
}

func deliver(ev Event) {
	mu.Lock()
	defer mu.Unlock()
	if eventChan != nil {
		select {
		case eventChan <- ev:
		default:
			// Channel full, drop event
		}
	}
}

// CheckAccessibilityPermissions returns true if the app has accessibility permissions
func CheckAccessibilityPermissions() bool {
	return C.checkAccessibilityPermissions() != 0
}

func start() (<-chan Event, error) {
	mu.Lock()
	defer mu.Unlock()

	if running {
		return nil, ErrAlreadyRunning
	}

	if !CheckAccessibilityPermissions() {
		return nil, ErrAccessibilityPermission
	}

	ch := make(chan Event, bufferSize)
	ready := make(chan error, 1)

	go func() {
		// The tap's run loop source belongs to this thread.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		if C.createEventTap() == 0 {
			ready <- ErrTapCreate
			return
		}
		ready <- nil
		C.runEventLoop()

		mu.Lock()
		if eventChan == ch {
			close(ch)
			eventChan = nil
		}
		running = false
		mu.Unlock()
	}()

	if err := <-ready; err != nil {
		return nil, err
	}
	eventChan = ch
	running = true
	return ch, nil
}

func stop() {
	mu.Lock()
	if eventChan != nil {
		close(eventChan)
		eventChan = nil
	}
	running = false
	mu.Unlock()

	C.stopEventLoop()
}

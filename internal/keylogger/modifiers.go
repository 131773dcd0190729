package keylogger

import (
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

// Device-dependent modifier bits of a Quartz flagsChanged event
// (NX_DEVICE*KEYMASK in IOKit's IOLLEvent.h). Unlike the device-independent
// masks they tell the left and right keys apart.
const (
	deviceLCtl   = 0x00000001
	deviceLShift = 0x00000002
	deviceRShift = 0x00000004
	deviceLCmd   = 0x00000008
	deviceRCmd   = 0x00000010
	deviceLAlt   = 0x00000020
	deviceRAlt   = 0x00000040
	deviceRCtl   = 0x00002000
	flagFn       = 0x00800000 // kCGEventFlagMaskSecondaryFn
)

// capsLockCode is the mac virtual key code of Caps Lock. Its flag follows the
// lock state, not the key, and the tap sees no key up for it.
const capsLockCode keys.Code = 57

// modifierBits maps mac virtual key codes to their device-dependent flag bit.
var modifierBits = map[keys.Code]uint64{
	56: deviceLShift,
	60: deviceRShift,
	59: deviceLCtl,
	62: deviceRCtl,
	58: deviceLAlt,
	61: deviceRAlt,
	55: deviceLCmd,
	54: deviceRCmd,
	63: flagFn,
}

// flagsChangedEvents decodes a flagsChanged event for code into key
// transitions. Caps Lock is reported as a press immediately followed by a
// release, once per physical press.
func flagsChangedEvents(code keys.Code, flags uint64, at time.Time) []Event {
	if code == capsLockCode {
		return []Event{
			{Kind: Press, Code: code, Time: at},
			{Kind: Release, Code: code, Time: at.Add(time.Nanosecond)},
		}
	}
	bit, ok := modifierBits[code]
	if !ok {
		return nil
	}
	kind := Release
	if flags&bit != 0 {
		kind = Press
	}
	return []Event{{Kind: kind, Code: code, Time: at}}
}

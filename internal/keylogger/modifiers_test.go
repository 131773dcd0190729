package keylogger

import (
	"testing"
	"time"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
)

func TestFlagsChangedEvents(t *testing.T) {
	at := time.Unix(50, 0)
	const (
		lShift keys.Code = 56
		rShift keys.Code = 60
		lCmd   keys.Code = 55
		rCmd   keys.Code = 54
	)
	// Device-independent shift/command bits as Quartz sets them while any
	// side is down.
	const anyShift, anyCmd = 0x00020000, 0x00100000

	tests := []struct {
		name  string
		code  keys.Code
		flags uint64
		want  Kind
	}{
		{"left shift down", lShift, anyShift | deviceLShift, Press},
		{"right shift down while left held", rShift, anyShift | deviceLShift | deviceRShift, Press},
		{"left shift up while right held", lShift, anyShift | deviceRShift, Release},
		{"right shift up", rShift, 0, Release},
		{"right command down", rCmd, anyCmd | deviceRCmd, Press},
		{"left command up while right held", lCmd, anyCmd | deviceRCmd, Release},
		{"fn down", 63, flagFn, Press},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flagsChangedEvents(tt.code, tt.flags, at)
			if len(got) != 1 {
				t.Fatalf("flagsChangedEvents(%d, %#x) = %v, want one event", tt.code, tt.flags, got)
			}
			if got[0].Kind != tt.want || got[0].Code != tt.code || !got[0].Time.Equal(at) {
				t.Errorf("flagsChangedEvents(%d, %#x) = %+v, want %v", tt.code, tt.flags, got[0], tt.want)
			}
		})
	}
}

func TestFlagsChangedCapsLockIsATap(t *testing.T) {
	at := time.Unix(50, 0)
	for _, flags := range []uint64{0x00010000, 0} {
		got := flagsChangedEvents(capsLockCode, flags, at)
		if len(got) != 2 || got[0].Kind != Press || got[1].Kind != Release {
			t.Fatalf("flagsChangedEvents(capsLock, %#x) = %v, want press then release", flags, got)
		}
		if !got[1].Time.After(got[0].Time) {
			t.Errorf("release %v should follow press %v", got[1].Time, got[0].Time)
		}
	}
}

func TestFlagsChangedIgnoresOtherKeys(t *testing.T) {
	if got := flagsChangedEvents(0, 0xffffffff, time.Unix(50, 0)); got != nil {
		t.Errorf("flagsChangedEvents(0) = %v, want nil", got)
	}
}

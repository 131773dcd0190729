package overlay

import (
	"image/color"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

var base = time.Date(2024, 3, 14, 9, 26, 0, 0, time.UTC)

const codeZ keys.Code = 6

var testColors = Colors{
	Active:     color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF},
	Background: color.Black,
	Border:     color.White,
}

func testLayout() timeline.Layout {
	return timeline.Layout{Columns: 2, KeySize: 40, KeySpacing: 16, Padding: 16, Height: 480}
}

func testKeys() []timeline.Key {
	return []timeline.Key{{Code: codeZ, Label: "K1"}, {Code: 7, Label: "K2"}}
}

func TestSceneObjectOrder(t *testing.T) {
	test.NewTempApp(t)
	s := newScene(testLayout(), testKeys(), testColors, false)

	want := 1 + 2*3 + 2*maxBlocks + 1
	if got := len(s.root.Objects); got != want {
		t.Fatalf("Expected %d objects, got %d", want, got)
	}
	if s.root.Objects[0] != s.bg {
		t.Error("Background should be drawn first")
	}
	if s.root.Objects[len(s.root.Objects)-1] != s.fade {
		t.Error("Fade should be drawn last")
	}
	if s.counters[0].Visible() {
		t.Error("Counters should be hidden when disabled")
	}
}

func TestScenePlacesCaps(t *testing.T) {
	test.NewTempApp(t)
	s := newScene(testLayout(), testKeys(), testColors, false)

	if got := s.caps[1].Position(); got != fyne.NewPos(72, 424) {
		t.Errorf("Cap 1 position = %v, want (72, 424)", got)
	}
	if got := s.caps[1].Size(); got != fyne.NewSize(40, 40) {
		t.Errorf("Cap 1 size = %v, want 40x40", got)
	}
	if got := s.fade.Size(); got != fyne.NewSize(128, 106) {
		t.Errorf("Fade size = %v, want 128x106", got)
	}
}

func TestSceneUpdate(t *testing.T) {
	test.NewTempApp(t)
	s := newScene(testLayout(), testKeys(), testColors, true)

	frame := &timeline.Frame{Columns: []timeline.ColumnFrame{
		{Key: testKeys()[0], Pressed: true, Presses: 1500, Blocks: []timeline.Block{
			{Offset: 180, Height: 180},
			{Offset: 1000, Height: 10}, // off screen
		}},
		{Key: testKeys()[1]},
	}}
	s.update(frame)

	if s.caps[0].FillColor != testColors.Active {
		t.Errorf("Pressed cap fill = %v, want %v", s.caps[0].FillColor, testColors.Active)
	}
	if s.caps[1].FillColor != color.Transparent {
		t.Errorf("Idle cap fill = %v, want transparent", s.caps[1].FillColor)
	}
	if s.counters[0].Text != "1.5K" {
		t.Errorf("Counter = %q, want 1.5K", s.counters[0].Text)
	}

	first := s.blocks[0][0]
	if !first.Visible() {
		t.Fatal("Expected first block to be visible")
	}
	if first.Position() != fyne.NewPos(16, 64) || first.Size() != fyne.NewSize(40, 180) {
		t.Errorf("Block at %v size %v, want (16, 64) 40x180", first.Position(), first.Size())
	}
	if s.blocks[0][1].Visible() {
		t.Error("Off-screen block should stay hidden")
	}

	// the next frame without blocks hides the pool again
	frame.Columns[0].Blocks = nil
	s.update(frame)
	if first.Visible() {
		t.Error("Expected block to be hidden after it leaves the frame")
	}
}

func TestSceneResize(t *testing.T) {
	test.NewTempApp(t)
	s := newScene(testLayout(), testKeys(), testColors, false)

	s.resize(fyne.NewSize(128, 600))
	if got := s.caps[0].Position().Y; got != 544 {
		t.Errorf("Cap Y after resize = %v, want 544", got)
	}

	s.resize(fyne.NewSize(0, 0))
	if s.layout.Height != 600 {
		t.Error("Zero size should be ignored")
	}
}

func TestOverlayTick(t *testing.T) {
	a := test.NewTempApp(t)
	store := timeline.NewStore(testKeys())
	store.Apply(codeZ, true, base)
	store.Apply(codeZ, false, base.Add(500*time.Millisecond))

	o := New(a, store, timeline.Params{ScrollSpeed: 360}, Options{
		Layout: testLayout(),
		Colors: testColors,
		FPS:    60,
	})
	if o.Window() == nil {
		t.Fatal("Expected a window")
	}
	o.Window().Resize(fyne.NewSize(128, 480))

	if !o.tick(base.Add(time.Second)) {
		t.Fatal("First tick should draw")
	}
	if !o.scene.blocks[0][0].Visible() {
		t.Error("Expected the released press to be drawn")
	}
	if o.tick(base.Add(time.Second + time.Millisecond)) {
		t.Error("Tick inside the frame interval should be skipped")
	}
	if !o.tick(base.Add(2 * time.Second)) {
		t.Error("Tick after the frame interval should draw")
	}
}

func TestContrastText(t *testing.T) {
	if contrastText(color.White) != color.Black {
		t.Error("Expected black text on white")
	}
	if contrastText(color.Black) != color.White {
		t.Error("Expected white text on black")
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		input    uint64
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{1500, "1.5K"},
		{2500000, "2.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatCount(tt.input); got != tt.expected {
				t.Errorf("formatCount(%d) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

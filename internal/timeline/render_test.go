package timeline

import (
	"math"
	"testing"
	"time"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func TestBlocksNeverPressed(t *testing.T) {
	got := Blocks(nil, false, nil, at(1000), Params{ScrollSpeed: 360})
	if len(got) != 0 {
		t.Errorf("Expected zero blocks, got %d", len(got))
	}
}

func TestBlocksSingleInterval(t *testing.T) {
	// pressed at 0, released at 0.5s, now 1.0s
	events := []time.Time{at(500), at(0)}
	got := Blocks(nil, false, events, at(1000), Params{ScrollSpeed: 360})

	if len(got) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(got))
	}
	if !approx(got[0].Height, 180) {
		t.Errorf("Height = %f, want 180", got[0].Height)
	}
	if !approx(got[0].Offset, 180) {
		t.Errorf("Offset = %f, want 180", got[0].Offset)
	}
	if got[0].Held {
		t.Error("Released interval should not be marked held")
	}
}

func TestBlocksHeldKey(t *testing.T) {
	events := []time.Time{at(0)}
	now := at(250)

	got := Blocks(nil, true, events, now, Params{ScrollSpeed: 360, ShowHeld: true})
	if len(got) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(got))
	}
	if !got[0].Held {
		t.Error("Expected in-progress block to be marked held")
	}
	if got[0].Offset != 0 {
		t.Errorf("Offset = %f, want 0", got[0].Offset)
	}
	if !approx(got[0].Height, 90) {
		t.Errorf("Height = %f, want 90", got[0].Height)
	}

	hidden := Blocks(nil, true, events, now, Params{ScrollSpeed: 360})
	if len(hidden) != 0 {
		t.Errorf("Expected held block to be hidden, got %d blocks", len(hidden))
	}
}

func TestBlocksHeldKeyKeepsPairAlignment(t *testing.T) {
	// held since 900; earlier press 0..500
	events := []time.Time{at(900), at(500), at(0)}
	got := Blocks(nil, true, events, at(1000), Params{ScrollSpeed: 1000})

	if len(got) != 1 {
		t.Fatalf("Expected 1 historical block, got %d", len(got))
	}
	if !approx(got[0].Offset, 500) || !approx(got[0].Height, 500) {
		t.Errorf("Block = %+v, want offset 500 height 500", got[0])
	}
}

func TestBlocksOddBoundaryDiscarded(t *testing.T) {
	now := at(10000)
	even := []time.Time{at(4000), at(3000), at(2000), at(1000)}
	odd := even[:3]

	p := Params{ScrollSpeed: 100}
	evenBlocks := Blocks(nil, false, even, now, p)
	oddBlocks := Blocks(nil, false, odd, now, p)

	if len(evenBlocks) != 2 {
		t.Fatalf("Expected 2 blocks for even history, got %d", len(evenBlocks))
	}
	if len(oddBlocks) != len(evenBlocks)-1 {
		t.Errorf("Expected %d blocks for odd history, got %d", len(evenBlocks)-1, len(oddBlocks))
	}
	if oddBlocks[0] != evenBlocks[0] {
		t.Errorf("Newest block differs: %+v vs %+v", oddBlocks[0], evenBlocks[0])
	}
}

func TestBlocksClampNegative(t *testing.T) {
	tests := []struct {
		name   string
		events []time.Time
		now    time.Time
	}{
		{"release after now", []time.Time{at(2000), at(1000)}, at(1500)},
		{"press after release", []time.Time{at(1000), at(1500)}, at(3000)},
		{"both in future", []time.Time{at(5000), at(4000)}, at(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, b := range Blocks(nil, false, tt.events, tt.now, Params{ScrollSpeed: 360}) {
				if b.Height < 0 || b.Offset < 0 {
					t.Errorf("Negative block %+v", b)
				}
			}
		})
	}
}

func TestBlocksEarlyTermination(t *testing.T) {
	var events []time.Time
	for i := 63; i >= 0; i-- {
		events = append(events, at(i*100))
	}
	now := at(6400)
	p := Params{ScrollSpeed: 360, ViewportHeight: 300}

	got := Blocks(nil, false, events, now, p)
	if len(got) == 0 {
		t.Fatal("Expected some visible blocks")
	}
	all := Blocks(nil, false, events, now, Params{ScrollSpeed: 360})
	if len(got) >= len(all) {
		t.Errorf("Expected early termination to drop blocks, got %d of %d", len(got), len(all))
	}
	for _, b := range got {
		if b.Offset > p.ViewportHeight {
			t.Errorf("Block offset %f exceeds viewport %f", b.Offset, p.ViewportHeight)
		}
	}
}

func TestBlocksNewestFirst(t *testing.T) {
	events := []time.Time{at(900), at(800), at(500), at(300)}
	got := Blocks(nil, false, events, at(1000), Params{ScrollSpeed: 1000})

	if len(got) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(got))
	}
	if got[0].Offset >= got[1].Offset {
		t.Errorf("Expected increasing offsets, got %f then %f", got[0].Offset, got[1].Offset)
	}
}

func TestBlocksFullHistoryReconstructible(t *testing.T) {
	store := NewStore([]Key{{Code: codeZ, Label: "K1"}})
	for i := 0; i < 65; i++ {
		store.Apply(codeZ, i%2 == 0, at(i*10))
	}
	// 65 transitions ending in a press: 64 retained, the held one plus 31 complete pairs
	snap := store.Snapshot(nil)
	got := Blocks(nil, snap[0].Pressed, snap[0].Events, at(1000), Params{ScrollSpeed: 360, ShowHeld: true})
	if len(got) != 32 {
		t.Errorf("Expected 32 blocks, got %d", len(got))
	}
}

func TestRendererFrame(t *testing.T) {
	store := NewStore([]Key{{Code: codeZ, Label: "K1"}, {Code: codeX, Label: "K2"}})
	store.Apply(codeZ, true, at(0))
	store.Apply(codeZ, false, at(500))
	store.Apply(codeX, true, at(900))

	r := NewRenderer(store, Params{ScrollSpeed: 360, ShowHeld: false})
	frame := r.Frame(at(1000), 480)

	if !frame.Now.Equal(at(1000)) {
		t.Errorf("Frame.Now = %v, want %v", frame.Now, at(1000))
	}
	if len(frame.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(frame.Columns))
	}
	k1, k2 := frame.Columns[0], frame.Columns[1]
	if k1.Key.Label != "K1" || k1.Pressed || len(k1.Blocks) != 1 || k1.Presses != 1 {
		t.Errorf("Unexpected K1 column %+v", k1)
	}
	if k2.Key.Label != "K2" || !k2.Pressed || len(k2.Blocks) != 0 {
		t.Errorf("Unexpected K2 column %+v", k2)
	}
	if r.Params().ViewportHeight != 0 {
		t.Error("Frame must not change the renderer parameters")
	}

	// later frames scroll the same block further without any store change
	later := r.Frame(at(1500), 480)
	if !approx(later.Columns[0].Blocks[0].Offset, 360) {
		t.Errorf("Offset = %f, want 360", later.Columns[0].Blocks[0].Offset)
	}
}

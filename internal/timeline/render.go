package timeline

import "time"

// Block is one press interval mapped to scroll distance, in pixels.
// Offset is how far the block's release edge has travelled past the key cap;
// Height encodes the press duration.
type Block struct {
	Offset float64
	Height float64
	Held   bool // the key is still down; Offset is 0 and Height grows
}

// Params controls how intervals are converted to pixels.
type Params struct {
	ScrollSpeed    float64 // pixels per second
	ViewportHeight float64 // blocks past this offset are not emitted; <= 0 means no limit
	ShowHeld       bool    // emit the in-progress block of a held key
}

// Blocks reconstructs the press intervals of one key relative to now and
// appends them to dst, newest first.
//
// events holds transition times newest first. When pressed, now acts as a
// synthetic release boundary in front of events. Boundaries are consumed in
// (release, press) pairs; an unpaired oldest boundary is dropped.
func Blocks(dst []Block, pressed bool, events []time.Time, now time.Time, p Params) []Block {
	n := len(events)
	if pressed {
		n++
	}
	at := func(i int) time.Time {
		if pressed {
			if i == 0 {
				return now
			}
			return events[i-1]
		}
		return events[i]
	}

	for i := 0; i+1 < n; i += 2 {
		release, press := at(i), at(i+1)

		offset := pixels(now.Sub(release), p.ScrollSpeed)
		if p.ViewportHeight > 0 && offset > p.ViewportHeight {
			break
		}

		held := pressed && i == 0
		if held && !p.ShowHeld {
			continue
		}
		dst = append(dst, Block{
			Offset: offset,
			Height: pixels(release.Sub(press), p.ScrollSpeed),
			Held:   held,
		})
	}
	return dst
}

func pixels(d time.Duration, speed float64) float64 {
	if d <= 0 || speed <= 0 {
		return 0
	}
	return d.Seconds() * speed
}

// ColumnFrame is the display model of one key for a single frame.
type ColumnFrame struct {
	Key     Key
	Pressed bool
	Presses uint64
	Blocks  []Block
}

// Frame is the display model of every key for a single frame.
type Frame struct {
	Now     time.Time
	Columns []ColumnFrame
}

// Renderer turns store snapshots into frames. It reuses its buffers between
// frames and must only be used from the render loop.
type Renderer struct {
	store  *Store
	params Params
	snap   []ColumnState
	frame  Frame
}

// NewRenderer creates a renderer reading from store.
func NewRenderer(store *Store, params Params) *Renderer {
	return &Renderer{
		store:  store,
		params: params,
		frame:  Frame{Columns: make([]ColumnFrame, store.Len())},
	}
}

// Params returns the renderer parameters.
func (r *Renderer) Params() Params { return r.params }

// Frame builds the display model at now for a viewport of the given height.
// The returned frame is overwritten by the next call.
func (r *Renderer) Frame(now time.Time, viewportHeight float64) *Frame {
	r.snap = r.store.Snapshot(r.snap)

	p := r.params
	p.ViewportHeight = viewportHeight

	r.frame.Now = now
	for i := range r.snap {
		st := &r.snap[i]
		col := &r.frame.Columns[i]
		col.Key = st.Key
		col.Pressed = st.Pressed
		col.Presses = st.Presses
		col.Blocks = Blocks(col.Blocks[:0], st.Pressed, st.Events, now, p)
	}
	return &r.frame
}

package timeline

// Rect is an axis-aligned rectangle in pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Layout places key caps along the bottom edge of the surface; blocks rise
// from the top edge of each cap toward the top of the surface.
type Layout struct {
	Columns    int
	KeySize    float64
	KeySpacing float64
	Padding    float64
	Height     float64 // surface height
	Footer     float64 // extra space below the caps (press counters)
}

// Width returns the surface width needed for every column.
func (l Layout) Width() float64 {
	if l.Columns <= 0 {
		return 2 * l.Padding
	}
	n := float64(l.Columns)
	return 2*l.Padding + n*l.KeySize + (n-1)*l.KeySpacing
}

// Size returns the surface width and height.
func (l Layout) Size() (float64, float64) { return l.Width(), l.Height }

// CapTop is the y coordinate of the top edge of every key cap.
func (l Layout) CapTop() float64 {
	top := l.Height - l.Padding - l.Footer - l.KeySize
	if top < 0 {
		return 0
	}
	return top
}

// Viewport is the visible height available to blocks.
func (l Layout) Viewport() float64 { return l.CapTop() }

// ColumnX is the left edge of column i.
func (l Layout) ColumnX(i int) float64 {
	return l.Padding + float64(i)*(l.KeySize+l.KeySpacing)
}

// CapRect is the key cap of column i.
func (l Layout) CapRect(i int) Rect {
	return Rect{X: l.ColumnX(i), Y: l.CapTop(), W: l.KeySize, H: l.KeySize}
}

// FooterRect is the area below the cap of column i.
func (l Layout) FooterRect(i int) Rect {
	return Rect{X: l.ColumnX(i), Y: l.CapTop() + l.KeySize, W: l.KeySize, H: l.Footer}
}

// BlockRect maps a block of column i to the surface, clipped at the top edge.
// The second result is false when nothing of the block is visible.
func (l Layout) BlockRect(i int, b Block) (Rect, bool) {
	bottom := l.CapTop() - b.Offset
	top := bottom - b.Height
	if top < 0 {
		top = 0
	}
	if bottom <= 0 || bottom <= top {
		return Rect{}, false
	}
	return Rect{X: l.ColumnX(i), Y: top, W: l.KeySize, H: bottom - top}, true
}

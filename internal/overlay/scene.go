package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

// maxBlocks is the most blocks one column can show: a full history pairs up
// into HistoryCapacity/2 intervals, plus the held one.
const maxBlocks = timeline.HistoryCapacity/2 + 1

const borderWidth = 2

// Colors are the overlay's drawing colours.
type Colors struct {
	Active     color.Color
	Background color.Color
	Border     color.Color
}

// scene is the retained draw tree: background, then per column the cap and
// label and the pooled block rectangles, then the shared top fade.
type scene struct {
	layout      timeline.Layout
	colors      Colors
	labelOnFill color.Color
	showCounter bool

	root     *fyne.Container
	bg       *canvas.Rectangle
	caps     []*canvas.Rectangle
	labels   []*canvas.Text
	counters []*canvas.Text
	blocks   [][]*canvas.Rectangle
	fade     *canvas.LinearGradient
}

func newScene(layout timeline.Layout, tracked []timeline.Key, colors Colors, showCounter bool) *scene {
	s := &scene{
		layout:      layout,
		colors:      colors,
		labelOnFill: contrastText(colors.Active),
		showCounter: showCounter,
		bg:          canvas.NewRectangle(colors.Background),
		caps:        make([]*canvas.Rectangle, len(tracked)),
		labels:      make([]*canvas.Text, len(tracked)),
		counters:    make([]*canvas.Text, len(tracked)),
		blocks:      make([][]*canvas.Rectangle, len(tracked)),
	}

	objects := []fyne.CanvasObject{s.bg}
	for i, k := range tracked {
		capRect := canvas.NewRectangle(color.Transparent)
		capRect.StrokeColor = colors.Border
		capRect.StrokeWidth = borderWidth
		s.caps[i] = capRect

		label := canvas.NewText(k.Label, colors.Border)
		label.Alignment = fyne.TextAlignCenter
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.TextSize = float32(layout.KeySize * 0.4)
		s.labels[i] = label

		counter := canvas.NewText("0", colors.Border)
		counter.Alignment = fyne.TextAlignCenter
		counter.TextSize = float32(layout.KeySize * 0.3)
		counter.Hidden = !showCounter
		s.counters[i] = counter

		objects = append(objects, capRect, label, counter)
	}
	for i := range tracked {
		pool := make([]*canvas.Rectangle, maxBlocks)
		for j := range pool {
			r := canvas.NewRectangle(colors.Active)
			r.Hide()
			pool[j] = r
			objects = append(objects, r)
		}
		s.blocks[i] = pool
	}

	s.fade = canvas.NewVerticalGradient(colors.Background, color.Transparent)
	objects = append(objects, s.fade)

	s.root = container.NewWithoutLayout(objects...)
	s.place()
	return s
}

// resize adapts the layout to a new surface height and re-places static objects.
func (s *scene) resize(size fyne.Size) {
	if size.Height <= 0 || float64(size.Height) == s.layout.Height {
		return
	}
	s.layout.Height = float64(size.Height)
	s.place()
}

func (s *scene) place() {
	w, h := s.layout.Size()
	s.bg.Move(fyne.NewPos(0, 0))
	s.bg.Resize(fyne.NewSize(float32(w), float32(h)))

	for i := range s.caps {
		r := s.layout.CapRect(i)
		s.caps[i].Move(pos(r))
		s.caps[i].Resize(size(r))
		centerText(s.labels[i], r)
		centerText(s.counters[i], s.layout.FooterRect(i))
	}

	s.fade.Move(fyne.NewPos(0, 0))
	s.fade.Resize(fyne.NewSize(float32(w), float32(s.layout.Viewport()/4)))
}

// update draws one frame.
func (s *scene) update(frame *timeline.Frame) {
	for i := range frame.Columns {
		if i >= len(s.caps) {
			break
		}
		col := &frame.Columns[i]

		capRect, label := s.caps[i], s.labels[i]
		if col.Pressed {
			capRect.FillColor = s.colors.Active
			label.Color = s.labelOnFill
		} else {
			capRect.FillColor = color.Transparent
			label.Color = s.colors.Border
		}
		capRect.Refresh()
		label.Refresh()

		if s.showCounter {
			if text := formatCount(col.Presses); s.counters[i].Text != text {
				s.counters[i].Text = text
				s.counters[i].Refresh()
			}
		}

		pool := s.blocks[i]
		shown := 0
		for _, b := range col.Blocks {
			if shown == len(pool) {
				break
			}
			r, ok := s.layout.BlockRect(i, b)
			if !ok {
				continue
			}
			rect := pool[shown]
			rect.Move(pos(r))
			rect.Resize(size(r))
			rect.Show()
			shown++
		}
		for ; shown < len(pool); shown++ {
			if pool[shown].Visible() {
				pool[shown].Hide()
			}
		}
	}
	s.root.Refresh()
}

func pos(r timeline.Rect) fyne.Position {
	return fyne.NewPos(float32(r.X), float32(r.Y))
}

func size(r timeline.Rect) fyne.Size {
	return fyne.NewSize(float32(r.W), float32(r.H))
}

func centerText(t *canvas.Text, r timeline.Rect) {
	h := t.MinSize().Height
	t.Move(fyne.NewPos(float32(r.X), float32(r.Y)+(float32(r.H)-h)/2))
	t.Resize(fyne.NewSize(float32(r.W), h))
}

// contrastText picks black or white label text for a filled cap.
func contrastText(fill color.Color) color.Color {
	c, ok := colorful.MakeColor(fill)
	if !ok {
		return color.White
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return color.Black
	}
	return color.White
}

// Package overlay draws the key overlay in a desktop window.
package overlay

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

// Options configures the overlay window.
type Options struct {
	Title       string
	Layout      timeline.Layout
	Colors      Colors
	FPS         int
	ShowCounter bool
	ConfigPath  string // offered in the tray menu when set
	Clock       func() time.Time
}

// Overlay owns the window and drives one frame per display refresh.
type Overlay struct {
	app      fyne.App
	win      fyne.Window
	scene    *scene
	renderer *timeline.Renderer
	anim     *fyne.Animation
	clock    func() time.Time
	interval time.Duration
	last     time.Time
}

// New builds the window for store. Call Start to begin animating.
func New(app fyne.App, store *timeline.Store, params timeline.Params, opts Options) *Overlay {
	if opts.Title == "" {
		opts.Title = "Keyboard Overlay"
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	o := &Overlay{
		app:      app,
		scene:    newScene(opts.Layout, store.Keys(), opts.Colors, opts.ShowCounter),
		renderer: timeline.NewRenderer(store, params),
		clock:    opts.Clock,
	}
	if opts.FPS > 0 {
		o.interval = time.Second / time.Duration(opts.FPS)
	}

	w, h := opts.Layout.Size()
	o.win = app.NewWindow(opts.Title)
	o.win.SetPadded(false)
	o.win.SetContent(o.scene.root)
	o.win.Resize(fyne.NewSize(float32(w), float32(h)))

	if desk, ok := app.(desktop.App); ok {
		desk.SetSystemTrayMenu(o.trayMenu(opts.ConfigPath))
	}
	return o
}

func (o *Overlay) trayMenu(configPath string) *fyne.Menu {
	items := []*fyne.MenuItem{
		fyne.NewMenuItem("Show", o.win.Show),
	}
	if configPath != "" {
		items = append(items, fyne.NewMenuItem("Open config folder", func() {
			u := &url.URL{Scheme: "file", Path: filepath.Dir(configPath)}
			if err := o.app.OpenURL(u); err != nil {
				log.Printf("Warning: failed to open %s: %v", u, err)
			}
		}))
	}
	return fyne.NewMenu("KeyOverlay", items...)
}

// Window returns the overlay window.
func (o *Overlay) Window() fyne.Window { return o.win }

// Start schedules a frame on every display refresh.
func (o *Overlay) Start() {
	o.anim = fyne.NewAnimation(time.Second, func(float32) {
		o.tick(o.clock())
	})
	o.anim.Curve = fyne.AnimationLinear
	o.anim.RepeatCount = fyne.AnimationRepeatForever
	o.anim.Start()
}

// Stop halts the frame loop.
func (o *Overlay) Stop() {
	if o.anim != nil {
		o.anim.Stop()
	}
}

// tick draws a frame unless the configured frame interval has not elapsed.
func (o *Overlay) tick(now time.Time) bool {
	if o.interval > 0 && !o.last.IsZero() && now.Sub(o.last) < o.interval {
		return false
	}
	o.last = now

	o.scene.resize(o.win.Canvas().Size())
	frame := o.renderer.Frame(now, o.scene.layout.Viewport())
	o.scene.update(frame)
	return true
}

func formatCount(n uint64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}

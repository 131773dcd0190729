// Package tui renders the key overlay in a terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

const (
	columnWidth = 7  // cells, including the cap border
	columnGap   = 2  // cells between columns
	capRows     = 3  // border, label, border
	rowPixels   = 12 // vertical pixels represented by one terminal row
	blockCell   = "█"
)

// Options configures the terminal overlay.
type Options struct {
	FrameInterval time.Duration
	ShowCounter   bool
	ActiveColor   string // overrides the default theme's block colour when set
	Clock         func() time.Time
}

type keyMap struct {
	Quit    key.Binding
	Theme   key.Binding
	Counter key.Binding
	Reset   key.Binding
	Help    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Theme, k.Counter, k.Reset}, {k.Help, k.Quit}}
}

var bindings = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Counter: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "counters")),
	Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset counters")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// frameMsg carries the time of a display refresh.
type frameMsg time.Time

// CaptureErrMsg reports that keyboard capture stopped; the model quits and
// keeps the error for the caller.
type CaptureErrMsg struct{ Err error }

// Model is the bubbletea model of the terminal overlay.
type Model struct {
	store    *timeline.Store
	renderer *timeline.Renderer
	opts     Options
	help     help.Model

	frame  *timeline.Frame
	width  int
	height int
	err    error
}

// New creates a model drawing from store.
func New(store *timeline.Store, params timeline.Params, opts Options) Model {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = time.Second / 60
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	m := Model{
		store:    store,
		renderer: timeline.NewRenderer(store, params),
		opts:     opts,
	}
	m.help = m.newHelp()
	return m
}

// theme is CurrentTheme with the configured active colour applied to the
// default theme.
func (m Model) theme() Theme {
	theme := CurrentTheme
	if m.opts.ActiveColor != "" && theme.Name == Themes["default"].Name {
		theme.Active = m.opts.ActiveColor
		theme.HelpKey = m.opts.ActiveColor
	}
	return theme
}

func (m Model) newHelp() help.Model {
	theme := m.theme()
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HelpKey))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HelpDesc))
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	return h
}

// Err returns the capture error that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, bindings.Quit):
			return m, tea.Quit
		case key.Matches(msg, bindings.Theme):
			SetTheme(nextTheme())
			showAll := m.help.ShowAll
			m.help = m.newHelp()
			m.help.ShowAll = showAll
			m.help.Width = m.width
		case key.Matches(msg, bindings.Counter):
			m.opts.ShowCounter = !m.opts.ShowCounter
		case key.Matches(msg, bindings.Reset):
			m.store.ResetCounters()
		case key.Matches(msg, bindings.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.frame = m.renderer.Frame(m.opts.Clock(), float64(m.viewportRows()*rowPixels))
		return m, m.tick()

	case CaptureErrMsg:
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// viewportRows is the number of rows available to falling blocks.
func (m Model) viewportRows() int {
	rows := m.height - capRows - 1 // help line
	if m.opts.ShowCounter {
		rows--
	}
	if rows < 0 {
		return 0
	}
	return rows
}

func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("keyboard capture stopped: %v", m.err)) + "\n"
	}
	if m.frame == nil || m.height == 0 {
		return "Starting..."
	}

	rows := m.viewportRows()
	columns := make([]string, 0, 2*len(m.frame.Columns))
	columns = append(columns, strings.Repeat(" ", columnGap))
	for i := range m.frame.Columns {
		if i > 0 {
			columns = append(columns, strings.Repeat(" ", columnGap))
		}
		columns = append(columns, m.renderColumn(&m.frame.Columns[i], rows))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Bottom, columns...)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(bindings))
}

func (m Model) renderColumn(col *timeline.ColumnFrame, rows int) string {
	theme := m.theme()
	filled := fillRows(col.Blocks, rows)
	fade := fadeColors(rows, theme)

	var b strings.Builder
	cell := strings.Repeat(blockCell, columnWidth)
	blank := strings.Repeat(" ", columnWidth)
	for r := 0; r < rows; r++ {
		if filled[r] {
			b.WriteString(lipgloss.NewStyle().Foreground(fade[r]).Render(cell))
		} else {
			b.WriteString(blank)
		}
		b.WriteByte('\n')
	}

	style := capStyle
	if col.Pressed {
		style = capPressedStyle.
			BorderForeground(lipgloss.Color(theme.Active)).
			Background(lipgloss.Color(theme.Active))
	}
	b.WriteString(style.Width(columnWidth - 2).Render(truncate(col.Key.Label, columnWidth-2)))

	if m.opts.ShowCounter {
		b.WriteByte('\n')
		b.WriteString(counterStyle.Width(columnWidth).Render(formatCount(col.Presses)))
	}
	return b.String()
}

// fillRows maps blocks to the terminal rows above the cap, row 0 at the top.
func fillRows(blocks []timeline.Block, rows int) []bool {
	filled := make([]bool, rows)
	layout := timeline.Layout{Columns: 1, Height: float64(rows * rowPixels)}
	for _, blk := range blocks {
		rect, ok := layout.BlockRect(0, blk)
		if !ok {
			continue
		}
		first := int(math.Floor(rect.Y / rowPixels))
		last := int(math.Ceil((rect.Y+rect.H)/rowPixels)) - 1
		for r := first; r <= last && r < rows; r++ {
			if r >= 0 {
				filled[r] = true
			}
		}
	}
	return filled
}

// fadeColors blends the block colour into the background over the top
// quarter of the viewport.
func fadeColors(rows int, theme Theme) []lipgloss.Color {
	out := make([]lipgloss.Color, rows)
	active, err := colorful.Hex(theme.Active)
	if err != nil {
		active = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	bg, err := colorful.Hex(theme.Background)
	if err != nil {
		bg = colorful.Color{}
	}

	fadeRows := rows / 4
	for r := 0; r < rows; r++ {
		if r >= fadeRows || fadeRows == 0 {
			out[r] = lipgloss.Color(active.Hex())
			continue
		}
		t := float64(r+1) / float64(fadeRows+1)
		out[r] = lipgloss.Color(bg.BlendRgb(active, t).Clamped().Hex())
	}
	return out
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width {
		r = r[:len(r)-1]
	}
	return string(r)
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

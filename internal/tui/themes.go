package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the terminal colours of the overlay.
type Theme struct {
	Name       string
	Active     string // pressed cap fill and block colour
	Border     string // idle cap border
	Label      string // cap label text
	PressedFg  string // cap label text while pressed
	Background string // fade target at the top edge
	Counter    string // press counters
	HelpKey    string
	HelpDesc   string
}

// Themes contains all available themes
var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Active:     "#808080",
		Border:     "#ffffff",
		Label:      "#ffffff",
		PressedFg:  "#000000",
		Background: "#000000",
		Counter:    "#a0a0a0",
		HelpKey:    "#808080",
		HelpDesc:   "#4e4e4e",
	},
	"gruvbox": {
		Name:       "Gruvbox",
		Active:     "#fe8019",
		Border:     "#ebdbb2",
		Label:      "#ebdbb2",
		PressedFg:  "#282828",
		Background: "#282828",
		Counter:    "#a89984",
		HelpKey:    "#fabd2f",
		HelpDesc:   "#928374",
	},
	"tokyonight": {
		Name:       "Tokyo Night",
		Active:     "#7aa2f7",
		Border:     "#c0caf5",
		Label:      "#c0caf5",
		PressedFg:  "#1a1b26",
		Background: "#1a1b26",
		Counter:    "#565f89",
		HelpKey:    "#bb9af7",
		HelpDesc:   "#565f89",
	},
	"catppuccin": {
		Name:       "Catppuccin",
		Active:     "#cba6f7",
		Border:     "#cdd6f4",
		Label:      "#cdd6f4",
		PressedFg:  "#1e1e2e",
		Background: "#1e1e2e",
		Counter:    "#a6adc8",
		HelpKey:    "#f5c2e7",
		HelpDesc:   "#6c7086",
	},
}

// ThemeNames lists the themes in cycle order.
var ThemeNames = []string{"default", "gruvbox", "tokyonight", "catppuccin"}

// CurrentTheme is the active theme
var CurrentTheme = Themes["default"]

var (
	capStyle        lipgloss.Style
	capPressedStyle lipgloss.Style
	counterStyle    lipgloss.Style
	errorStyle      lipgloss.Style
)

func init() {
	regenerateStyles()
}

// SetTheme switches to the named theme; unknown names are ignored.
func SetTheme(name string) {
	if theme, ok := Themes[name]; ok {
		CurrentTheme = theme
		regenerateStyles()
	}
}

// nextTheme returns the theme key after the current one.
func nextTheme() string {
	for i, name := range ThemeNames {
		if Themes[name].Name == CurrentTheme.Name {
			return ThemeNames[(i+1)%len(ThemeNames)]
		}
	}
	return ThemeNames[0]
}

func regenerateStyles() {
	capStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Border)).
		Foreground(lipgloss.Color(CurrentTheme.Label)).
		Align(lipgloss.Center).
		Bold(true)

	capPressedStyle = capStyle.
		BorderForeground(lipgloss.Color(CurrentTheme.Active)).
		Background(lipgloss.Color(CurrentTheme.Active)).
		Foreground(lipgloss.Color(CurrentTheme.PressedFg))

	counterStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Counter)).
		Align(lipgloss.Center)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff5555")).
		Bold(true)
}

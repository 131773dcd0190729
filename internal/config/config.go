// Package config loads the overlay configuration from a TOML file in the
// per-user config directory.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aayushbajaj/keyoverlay/internal/keys"
	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

// AppName names the config directory. Linux and other unix systems use the
// lowercase form under $XDG_CONFIG_HOME, Windows nests a config folder.
const AppName = "KeyOverlay"

// EnvPath overrides the config file location.
const EnvPath = "KEYOVERLAY_CONFIG"

// Key is a tracked key as written in the config file.
type Key struct {
	Key   string `toml:"key"`
	Label string `toml:"label"`
}

// Config holds every display parameter of the overlay.
type Config struct {
	Keys            []Key  `toml:"keys"`
	KeySize         int    `toml:"key_size"`
	KeySpacing      int    `toml:"key_spacing"`
	ScrollSpeed     int    `toml:"scroll_speed"` // pixels per second
	ActiveColor     uint32 `toml:"active_color"` // 0xRRGGBB
	Padding         int    `toml:"padding"`
	Height          int    `toml:"height"`
	FPS             int    `toml:"fps"`
	ShowHeld        bool   `toml:"show_held"`
	ShowCounter     bool   `toml:"show_counter"`
	BackgroundColor uint32 `toml:"background_color"`
	BorderColor     uint32 `toml:"border_color"`
	Theme           string `toml:"theme"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Keys: []Key{
			{Key: "Z", Label: "K1"},
			{Key: "X", Label: "K2"},
		},
		KeySize:         40,
		KeySpacing:      16,
		ScrollSpeed:     360,
		ActiveColor:     0x808080,
		Padding:         16,
		Height:          480,
		FPS:             60,
		ShowHeld:        false,
		ShowCounter:     false,
		BackgroundColor: 0x000000,
		BorderColor:     0xFFFFFF,
		Theme:           "default",
	}
}

// Path returns the config file location: $KEYOVERLAY_CONFIG if set, else
// config.toml in the platform's per-user app directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(dir, appDir(runtime.GOOS), "config.toml"), nil
}

func appDir(goos string) string {
	switch goos {
	case "darwin", "ios":
		return AppName
	case "windows":
		return filepath.Join(AppName, "config")
	default:
		return strings.ToLower(AppName)
	}
}

// Load reads the config from Path. A missing file yields DefaultConfig.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFromFile(path)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults and validates the result.
// A keys array in the file replaces the default keys as a whole.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	defaultKeys := cfg.Keys
	cfg.Keys = nil // decoding into the default slice would keep its labels
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if !md.IsDefined("keys") {
		cfg.Keys = defaultKeys
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		fields := make([]string, len(undecoded))
		for i, k := range undecoded {
			fields[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config fields: %s", strings.Join(fields, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks numeric ranges and resolves every key name.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Keys) == 0 {
		errs = append(errs, errors.New("keys: at least one key is required"))
	}
	seen := make(map[keys.Code]string, len(c.Keys))
	for i, k := range c.Keys {
		code, err := keys.Parse(k.Key)
		if err != nil {
			errs = append(errs, fmt.Errorf("keys[%d]: %w", i, err))
			continue
		}
		if prev, dup := seen[code]; dup {
			errs = append(errs, fmt.Errorf("keys[%d]: %q is already tracked as %q", i, k.Key, prev))
			continue
		}
		seen[code] = k.Key
	}

	positive := []struct {
		name  string
		value int
	}{
		{"key_size", c.KeySize},
		{"scroll_speed", c.ScrollSpeed},
		{"height", c.Height},
		{"fps", c.FPS},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", p.name, p.value))
		}
	}
	if c.KeySpacing < 0 {
		errs = append(errs, fmt.Errorf("key_spacing must not be negative, got %d", c.KeySpacing))
	}
	if c.Padding < 0 {
		errs = append(errs, fmt.Errorf("padding must not be negative, got %d", c.Padding))
	}
	for _, col := range []struct {
		name  string
		value uint32
	}{
		{"active_color", c.ActiveColor},
		{"background_color", c.BackgroundColor},
		{"border_color", c.BorderColor},
	} {
		if col.value > 0xFFFFFF {
			errs = append(errs, fmt.Errorf("%s must be 0xRRGGBB, got %#x", col.name, col.value))
		}
	}
	return errors.Join(errs...)
}

// TrackedKeys resolves the configured keys in display order. An empty label
// falls back to the key name. Call Validate first.
func (c *Config) TrackedKeys() []timeline.Key {
	out := make([]timeline.Key, 0, len(c.Keys))
	for _, k := range c.Keys {
		code, ok := keys.Lookup(k.Key)
		if !ok {
			continue
		}
		label := k.Label
		if label == "" {
			label = keys.Name(code)
		}
		out = append(out, timeline.Key{Code: code, Label: label})
	}
	return out
}

// Params returns the reconstruction parameters.
func (c *Config) Params() timeline.Params {
	return timeline.Params{
		ScrollSpeed: float64(c.ScrollSpeed),
		ShowHeld:    c.ShowHeld,
	}
}

// Layout returns the surface geometry for the configured keys.
func (c *Config) Layout() timeline.Layout {
	l := timeline.Layout{
		Columns:    len(c.Keys),
		KeySize:    float64(c.KeySize),
		KeySpacing: float64(c.KeySpacing),
		Padding:    float64(c.Padding),
		Height:     float64(c.Height),
	}
	if c.ShowCounter {
		l.Footer = float64(c.KeySize) / 2
	}
	return l
}

// RGB converts 0xRRGGBB to an opaque colour.
func RGB(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// Hex formats 0xRRGGBB as #rrggbb.
func Hex(v uint32) string {
	return fmt.Sprintf("#%06x", v&0xFFFFFF)
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// String returns c as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

// WriteDefault writes the default configuration to path, creating parent
// directories. It refuses to replace an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := DefaultConfig().Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write config: %w", err)
	}
	return f.Close()
}

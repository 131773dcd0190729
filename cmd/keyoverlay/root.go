package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/user"
	"time"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/aayushbajaj/keyoverlay/internal/capture"
	"github.com/aayushbajaj/keyoverlay/internal/config"
	"github.com/aayushbajaj/keyoverlay/internal/keylogger"
	"github.com/aayushbajaj/keyoverlay/internal/keys"
	"github.com/aayushbajaj/keyoverlay/internal/overlay"
	"github.com/aayushbajaj/keyoverlay/internal/timeline"
)

const appID = "io.github.aayushbajaj.keyoverlay"

type rootOptions struct {
	configPath string
	demo       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "keyoverlay",
		Short:         "Show keyboard activity as falling blocks",
		Long:          "keyoverlay listens for global key presses and draws each tracked key with a scrolling history of its presses.",
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlay(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: see keyoverlay config path)")
	cmd.PersistentFlags().BoolVar(&opts.demo, "demo", false, "replay generated key presses instead of listening to the keyboard")

	cmd.AddCommand(
		newTUICmd(opts),
		newConfigCmd(opts),
		newKeysCmd(),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig reads the config from --config or the default location and
// returns it with the path it came from.
func loadConfig(opts *rootOptions) (*config.Config, string, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.Path()
		if err != nil {
			return nil, "", err
		}
		path = p
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("load config: %w", err)
	}
	return cfg, path, nil
}

// newSource picks the real keyboard hook or the demo generator.
func newSource(opts *rootOptions, tracked []timeline.Key) keylogger.Source {
	if !opts.demo {
		return keylogger.System{}
	}
	codes := make([]keys.Code, len(tracked))
	for i, k := range tracked {
		codes[i] = k.Code
	}
	return keylogger.NewSynthetic(codes, time.Now().UnixNano())
}

// startCapture builds the store and subscribes to keyboard events. Failure
// here is a startup error: nothing has been shown yet.
func startCapture(opts *rootOptions, cfg *config.Config) (*timeline.Store, *capture.Capture, error) {
	tracked := cfg.TrackedKeys()
	store := timeline.NewStore(tracked)
	capt := capture.New(store, newSource(opts, tracked), capture.Options{})
	if err := capt.Subscribe(); err != nil {
		return nil, nil, err
	}
	return store, capt, nil
}

func runOverlay(ctx context.Context, opts *rootOptions) error {
	ensureHome()

	logFile, err := setupLogging()
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Println("Starting keyoverlay...")

	cfg, path, err := loadConfig(opts)
	if err != nil {
		return err
	}

	store, capt, err := startCapture(opts, cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		if err := capt.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: keyboard capture stopped: %v\n", err)
			log.Fatalf("Keyboard capture stopped: %v", err)
		}
	}()

	a := app.NewWithID(appID)
	ov := overlay.New(a, store, cfg.Params(), overlay.Options{
		Layout: cfg.Layout(),
		Colors: overlay.Colors{
			Active:     config.RGB(cfg.ActiveColor),
			Background: config.RGB(cfg.BackgroundColor),
			Border:     config.RGB(cfg.BorderColor),
		},
		FPS:         cfg.FPS,
		ShowCounter: cfg.ShowCounter,
		ConfigPath:  path,
	})
	ov.Start()
	defer ov.Stop()

	log.Println("Overlay window starting...")
	ov.Window().ShowAndRun()

	stats := capt.Stats()
	log.Printf("Shutting down (received %d events, applied %d)", stats.Received, stats.Applied)
	return nil
}

// ensureHome sets HOME when launched without one (launchctl/open).
func ensureHome() {
	if os.Getenv("HOME") == "" {
		if u, err := user.Current(); err == nil {
			os.Setenv("HOME", u.HomeDir)
		}
	}
}

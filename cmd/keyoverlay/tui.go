package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aayushbajaj/keyoverlay/internal/config"
	"github.com/aayushbajaj/keyoverlay/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Show the overlay in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("tui requires an interactive terminal")
	}

	ensureHome()
	logFile, err := setupLogging()
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Println("Starting keyoverlay tui...")

	cfg, _, err := loadConfig(opts)
	if err != nil {
		return err
	}

	store, capt, err := startCapture(opts, cfg)
	if err != nil {
		return err
	}

	uiOpts := tui.Options{
		FrameInterval: time.Second / time.Duration(cfg.FPS),
		ShowCounter:   cfg.ShowCounter,
	}
	if cfg.Theme == "default" {
		uiOpts.ActiveColor = config.Hex(cfg.ActiveColor)
	}
	if _, ok := tui.Themes[cfg.Theme]; !ok {
		log.Printf("Warning: unknown theme %q, using default", cfg.Theme)
	}
	tui.SetTheme(cfg.Theme)

	program := tea.NewProgram(tui.New(store, cfg.Params(), uiOpts), tea.WithAltScreen())

	parent, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(parent)

	g.Go(func() error {
		err := capt.Run(gctx)
		if err != nil {
			log.Printf("Keyboard capture stopped: %v", err)
			program.Send(tui.CaptureErrMsg{Err: err})
		}
		return err
	})
	g.Go(func() error {
		defer cancel()
		final, err := program.Run()
		if err != nil {
			return err
		}
		if m, ok := final.(tui.Model); ok && m.Err() != nil {
			return m.Err()
		}
		return nil
	})

	err = g.Wait()
	log.Println("Shutting down...")
	return err
}

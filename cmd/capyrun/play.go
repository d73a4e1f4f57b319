package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pr-poehali-dev/capyrun/internal/config"
	"github.com/pr-poehali-dev/capyrun/internal/core"
	"github.com/pr-poehali-dev/capyrun/internal/platform/tui"
	"github.com/pr-poehali-dev/capyrun/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump (also starts the run)
  Enter      - Start
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  capyrun play
  capyrun play --fps 30
  capyrun play --config ./my-config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultRuntimeConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Open run history storage; play without history on failure
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open run history database", "error", err)
		store = nil
	}

	runErr := tui.Run(gameCfg, store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/horsecatdog/gazool/internal/config"
	"github.com/horsecatdog/gazool/internal/core"
	"github.com/horsecatdog/gazool/internal/platform/tui"
	"github.com/horsecatdog/gazool/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  W/A/S/D or arrows  - Shift tiles
  Q                  - Quit to title screen
  Ctrl+C             - Quit immediately

The terminal must be at least 80x25 characters.

Examples:
  gazool play
  gazool play --seed 42
  gazool play --config ./my-gazool.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Check the terminal fits the fixed-size console
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < core.ConsoleWidth || h < core.ConsoleHeight {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n",
				w, h, core.ConsoleWidth, core.ConsoleHeight)
			os.Exit(1)
		}
	}

	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags the user passed override the config file
	cfg := applyFlagOverrides(fileCfg.Runtime(),
		cmd.Flags().Changed("fps"), cmd.Flags().Changed("seed"))

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// capyrun is a terminal endless runner: jump the capybara over obstacles
// scrolling in from the right, for as long as you can.
//
// Usage:
//
//	capyrun play             - Play in the current terminal
//	capyrun serve            - Start SSH server for remote play
//	capyrun history          - Show past runs
//	capyrun version          - Print version information
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--db <path>     - Set database path (default: ~/.capyrun/capyrun.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "capyrun",
	Short: "Capy Run - an endless runner in your terminal",
	Long: `Capy Run is a terminal endless runner. Obstacles scroll in from the
right at a steady pace; jump over them and survive as long as you can.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  history  - View past runs
  version  - Print version information

Examples:
  capyrun play
  capyrun play --config ./my-config.yaml
  capyrun serve --ssh :2222
  capyrun history --limit 20`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.capyrun/capyrun.db", "Path to run history database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

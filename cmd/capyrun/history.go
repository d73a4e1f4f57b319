package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pr-poehali-dev/capyrun/internal/platform/tui"
	"github.com/pr-poehali-dev/capyrun/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past runs",
	Long: `Display the most recent runs, newest first.

By default opens an interactive table. Use --plain for plain text
output suitable for piping.

Examples:
  capyrun history
  capyrun history --limit 20
  capyrun history --plain`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryPlain {
		printHistory(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height, flagHistoryLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(store *storage.Store) {
	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'capyrun play' to record your first run!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %-9s  %s\n", "#", "Score", "Duration", "Milestone", "Finished")
	fmt.Printf("  %-4s  %-8s  %-10s  %-9s  %s\n", "----", "-----", "--------", "---------", "--------")

	for i, r := range runs {
		milestone := ""
		if r.Milestone {
			milestone = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %-9s  %s\n",
			i+1,
			r.Score,
			r.Duration.Truncate(100*time.Millisecond),
			milestone,
			r.FinishedAt.Format("2006-01-02 15:04"),
		)
	}
}

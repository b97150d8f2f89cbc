package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/config"
	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/timeblock"
	"github.com/nvaldez/daygrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  timeblock.Store
	config *config.Config
	root   *cobra.Command
	debug  bool   // Enable debug logging
	date   string // Day to open the timeline on
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(store timeblock.Store, cfg *config.Config) *App {
	a := &App{store: store, config: cfg}

	a.root = &cobra.Command{
		Use:   "daygrid",
		Short: "A keyboard-driven day planner",
		Long: `Daygrid is a terminal day planner built around timeblocks.

Run it without arguments to open the interactive timeline for today.
The subcommands cover scripted use: adding, editing and listing blocks,
and managing the category and task-name catalogs.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if a.date == "" {
				return tui.RunWithDebug(a.store, a.config, a.debug)
			}
			date, err := dateutil.ParseRelativeDate(a.date, time.Now())
			if err != nil {
				return fmt.Errorf("parsing date: %w", err)
			}
			return tui.RunAt(a.store, a.config, date, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.Flags().StringVar(&a.date, "date", "", "Day to open (YYYY-MM-DD, today, tomorrow, or a weekday)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.categoriesCmd())
	a.root.AddCommand(a.namesCmd())
	a.root.AddCommand(a.copyCmd())
	a.root.AddCommand(a.seedCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("daygrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

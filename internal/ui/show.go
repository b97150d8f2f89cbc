package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Show a day's timeblocks",
		Long: `Display one day's timeblocks with per-category totals.

The date accepts YYYY-MM-DD as well as relative forms: today, yesterday,
tomorrow, next-week, or a weekday name. Defaults to today.`,
		Example: `  daygrid show
  daygrid show tomorrow
  daygrid show 2026-09-03`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			date, err := resolveDateArg(args)
			if err != nil {
				return err
			}

			state, err := engine.LoadDay(context.Background(), a.store, dateutil.DayKey(date))
			if err != nil {
				return fmt.Errorf("loading day: %w", err)
			}

			if len(state.Blocks) == 0 {
				fmt.Printf("No timeblocks for %s.\n", dateutil.DisplayDate(date))
				return nil
			}

			fmt.Printf("=== %s ===\n\n", formatHeader(dateutil.DisplayDate(date)))

			width := maxNameWidth(state.Blocks)
			var stats Stats
			for _, tb := range state.Blocks {
				PrintBlockRow(tb, width)
				stats.Accumulate(tb)
			}

			fmt.Println()
			PrintStats(stats, 20)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// resolveDateArg turns an optional positional date into a day, defaulting to
// today.
func resolveDateArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return dateutil.TruncateToDay(time.Now()), nil
	}
	return dateutil.ParseRelativeDate(args[0], time.Now())
}

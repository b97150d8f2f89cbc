package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Add a timeblock",
		Long: `Add a timeblock to a day's schedule.

Times use the 12-hour clock at 5-minute granularity, e.g. "9:05 AM".
The block is rejected when it overlaps an existing one.`,
		Example: `  daygrid add "Deep work" --start="9:00 AM" --end="11:00 AM"
  daygrid add "Review" --date=tomorrow --start="2:00 PM" --end="2:30 PM" --category=Work`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			ctx := context.Background()
			dayKey := dateutil.DayKey(day)

			state, err := engine.LoadDay(ctx, a.store, dayKey)
			if err != nil {
				return fmt.Errorf("loading day: %w", err)
			}

			next, err := engine.Insert(state, args[0], category, start, end)
			if err != nil {
				return err
			}
			if err := engine.SaveDay(ctx, a.store, next); err != nil {
				return fmt.Errorf("saving day: %w", err)
			}

			if args[0] != "" {
				if _, err := a.store.CreateTaskName(ctx, args[0]); err != nil {
					return fmt.Errorf("remembering task name: %w", err)
				}
			}

			fmt.Printf("Created block #%d: %s  %s – %s on %s\n",
				next.LastID, args[0], start, end, dateutil.DisplayDate(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", `Start time ("H:MM AM", required)`)
	cmd.Flags().StringVar(&end, "end", "", `End time ("H:MM AM", required)`)
	cmd.Flags().StringVar(&category, "category", "", "Category name (optional)")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

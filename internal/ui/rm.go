package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
)

func (a *App) rmCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a timeblock",
		Long: `Remove a timeblock from a day's schedule.

Neighboring blocks keep their times; the removed interval becomes a gap.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block id %q", args[0])
			}

			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			ctx := context.Background()
			state, err := engine.LoadDay(ctx, a.store, dateutil.DayKey(day))
			if err != nil {
				return fmt.Errorf("loading day: %w", err)
			}

			next, err := engine.Delete(state, id)
			if err != nil {
				return err
			}
			if err := engine.SaveDay(ctx, a.store, next); err != nil {
				return fmt.Errorf("saving day: %w", err)
			}

			fmt.Printf("Removed block #%d from %s\n", id, dateutil.DisplayDate(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default: today)")
	return cmd
}

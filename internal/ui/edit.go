package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/timeblock"
)

func (a *App) editCmd() *cobra.Command {
	var (
		date     string
		name     string
		start    string
		end      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a timeblock",
		Long: `Edit a timeblock's task name, category, or times.

Only the flags you pass change; the rest of the block stays as it is.
Block ids are shown by 'daygrid show'.`,
		Example: `  daygrid edit 3 --name="Code review"
  daygrid edit 3 --start="9:30 AM" --end="10:30 AM"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			i := timeblock.IndexOf(state.Blocks, id)
			if i < 0 {
				return fmt.Errorf("block #%d: %w", id, timeblock.ErrNotFound)
			}
			tb := state.Blocks[i]

			if !cmd.Flags().Changed("name") {
				name = tb.TaskName
			}
			if !cmd.Flags().Changed("category") {
				category = tb.Category
			}
			if !cmd.Flags().Changed("start") {
				start = tb.Start
			}
			if !cmd.Flags().Changed("end") {
				end = tb.End
			}

			next, err := engine.Update(state, id, name, category, start, end)
			if err != nil {
				return err
			}
			if err := engine.SaveDay(ctx, a.store, next); err != nil {
				return fmt.Errorf("saving day: %w", err)
			}

			fmt.Printf("Updated block #%d: %s  %s – %s\n", id, name, start, end)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&name, "name", "", "New task name")
	cmd.Flags().StringVar(&start, "start", "", `New start time ("H:MM AM")`)
	cmd.Flags().StringVar(&end, "end", "", `New end time ("H:MM AM")`)
	cmd.Flags().StringVar(&category, "category", "", "New category name (empty clears it)")

	return cmd
}

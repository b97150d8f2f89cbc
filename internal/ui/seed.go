package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
	"github.com/nvaldez/daygrid/internal/store"
)

// seedBlock is one demo timeblock placed on today's timeline.
type seedBlock struct {
	name     string
	category string
	start    string
	end      string
}

var seedCategories = []struct{ name, color string }{
	{"Work", "#89b4fa"},
	{"Personal", "#a6e3a1"},
	{"Errands", "#f9e2af"},
}

var seedBlocks = []seedBlock{
	{"Morning review", "Work", "9:00 AM", "9:30 AM"},
	{"Deep work", "Work", "9:30 AM", "11:30 AM"},
	{"Lunch", "Personal", "12:00 PM", "12:45 PM"},
	{"Groceries", "Errands", "5:30 PM", "6:15 PM"},
}

func (a *App) seedCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data into an empty database",
		Long: `Seed the database with a few categories and a demo day so the
timeline has something to show on first run.

Refuses to run when the target day already has blocks.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
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
			if len(state.Blocks) > 0 {
				return fmt.Errorf("%s already has %d blocks, not seeding",
					dateutil.DisplayDate(day), len(state.Blocks))
			}

			for _, c := range seedCategories {
				_, err := a.store.CreateCategory(ctx, c.name, c.color)
				if err != nil && !errors.Is(err, store.ErrDuplicateCategoryName) {
					return fmt.Errorf("creating category %q: %w", c.name, err)
				}
			}

			for _, b := range seedBlocks {
				state, err = engine.Insert(state, b.name, b.category, b.start, b.end)
				if err != nil {
					return fmt.Errorf("placing %q: %w", b.name, err)
				}
				if _, err := a.store.CreateTaskName(ctx, b.name); err != nil {
					return fmt.Errorf("remembering task name: %w", err)
				}
			}

			if err := engine.SaveDay(ctx, a.store, state); err != nil {
				return fmt.Errorf("saving day: %w", err)
			}

			fmt.Printf("Seeded %d blocks and %d categories on %s\n",
				len(seedBlocks), len(seedCategories), dateutil.DisplayDate(day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to seed (YYYY-MM-DD, default: today)")

	return cmd
}

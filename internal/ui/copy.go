package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/nvaldez/daygrid/internal/dateutil"
	"github.com/nvaldez/daygrid/internal/engine"
)

func (a *App) copyCmd() *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:   "copy [date]",
		Short: "Copy a day's schedule to the clipboard",
		Long: `Format one day's timeblocks as plain text and copy it to the
system clipboard, for pasting into notes or a standup message.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			date, err := resolveDateArg(args)
			if err != nil {
				return err
			}

			state, err := engine.LoadDay(context.Background(), a.store, dateutil.DayKey(date))
			if err != nil {
				return fmt.Errorf("loading day: %w", err)
			}

			text := formatDayText(date, state)
			if stdout {
				fmt.Print(text)
				return nil
			}
			if err := clipboard.WriteAll(text); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Printf("Copied %s to the clipboard.\n", dateutil.DisplayDate(date))
			return nil
		},
	}

	cmd.Flags().BoolVar(&stdout, "stdout", false, "Print to stdout instead of the clipboard")
	return cmd
}

// formatDayText renders a day as the plain text that goes on the clipboard.
func formatDayText(date time.Time, state engine.DayState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", dateutil.DisplayDate(date))

	if len(state.Blocks) == 0 {
		b.WriteString("\nNo blocks planned.\n")
		return b.String()
	}

	total := 0
	b.WriteString("\n")
	for _, tb := range state.Blocks {
		name := tb.TaskName
		if name == "" {
			name = "(untitled)"
		}
		fmt.Fprintf(&b, "%s – %s  %s", tb.Start, tb.End, name)
		if tb.Category != "" {
			fmt.Fprintf(&b, " (%s)", tb.Category)
		}
		b.WriteString("\n")
		total += tb.Minutes
	}
	fmt.Fprintf(&b, "\nTotal planned: %s\n", FormatDuration(total))
	return b.String()
}

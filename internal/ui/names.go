package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) namesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names",
		Short: "Manage the task-name catalog",
		Long: `Manage the task names offered as autocomplete in the edit form.

Names are remembered automatically whenever a block is saved with one;
this command lets you seed or inspect the catalog directly.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listNames()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List task names",
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listNames()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a task name",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := a.store.CreateTaskName(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("adding task name: %w", err)
			}
			fmt.Printf("Remembered %q\n", n.Name)
			return nil
		},
	})

	return cmd
}

func (a *App) listNames() error {
	names, err := a.store.TaskNames(context.Background())
	if err != nil {
		return fmt.Errorf("listing task names: %w", err)
	}
	if len(names) == 0 {
		fmt.Println("No task names remembered yet.")
		return nil
	}
	for _, n := range names {
		fmt.Printf("  %s\n", n.Name)
	}
	return nil
}

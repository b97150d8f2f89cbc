package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (a *App) categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cat"},
		Short:   "Manage the category catalog",
		Long: `Manage the global category catalog.

Categories label timeblocks and pick their display color in the timeline.
Removing a category leaves blocks that reference it untouched.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listCategories()
		},
	}

	cmd.AddCommand(a.categoriesListCmd())
	cmd.AddCommand(a.categoriesAddCmd())
	cmd.AddCommand(a.categoriesRenameCmd())
	cmd.AddCommand(a.categoriesRecolorCmd())
	cmd.AddCommand(a.categoriesRmCmd())
	return cmd
}

func (a *App) categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.listCategories()
		},
	}
}

func (a *App) listCategories() error {
	categories, err := a.store.Categories(context.Background())
	if err != nil {
		return fmt.Errorf("listing categories: %w", err)
	}
	if len(categories) == 0 {
		fmt.Println("No categories yet. Add one with 'daygrid categories add'.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("  #%-3d %s  %s\n", c.ID, formatCategory(c.Name), formatMuted(c.Color))
	}
	return nil
}

func (a *App) categoriesAddCmd() *cobra.Command {
	var clr string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Example: `  daygrid categories add Work --color="#89b4fa"
  daygrid categories add Errands`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c, err := a.store.CreateCategory(context.Background(), args[0], clr)
			if err != nil {
				return fmt.Errorf("creating category: %w", err)
			}
			fmt.Printf("Created category #%d: %s %s\n", c.ID, c.Name, c.Color)
			return nil
		},
	}

	cmd.Flags().StringVar(&clr, "color", "", `Display color as hex, e.g. "#89b4fa"`)
	return cmd
}

func (a *App) categoriesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.RenameCategory(context.Background(), id, args[1]); err != nil {
				return fmt.Errorf("renaming category: %w", err)
			}
			fmt.Printf("Renamed category #%d to %s\n", id, args[1])
			return nil
		},
	}
}

func (a *App) categoriesRecolorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recolor <id> <color>",
		Short: "Change a category's color",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.RecolorCategory(context.Background(), id, args[1]); err != nil {
				return fmt.Errorf("recoloring category: %w", err)
			}
			fmt.Printf("Recolored category #%d to %s\n", id, args[1])
			return nil
		},
	}
}

func (a *App) categoriesRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a category",
		Long: `Remove a category from the catalog.

Timeblocks that carry the category keep it as a plain label; they render
with the default block color from then on.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}
			if err := a.store.DeleteCategory(context.Background(), id); err != nil {
				return fmt.Errorf("deleting category: %w", err)
			}
			fmt.Printf("Removed category #%d\n", id)
			return nil
		},
	}
}

func parseCategoryID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid category id %q", s)
	}
	return id, nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-habits/internal/app"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

func (c *cli) listCmd() *cobra.Command {
	var filter services.ListFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with today's status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				habits := a.Habits.List(ctx, filter)
				renderList(cmd.OutOrStdout(), habits, a.Stats.Today())
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&filter.Search, "search", "s", "", "Match name or description")
	cmd.Flags().StringVarP(&filter.Category, "category", "c", "", "Only habits of this category")
	return cmd
}

func (c *cli) addCmd() *cobra.Command {
	var input services.CreateHabitInput

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a habit",
		Example: `  habitctl add "Morning run" -c fitness
  habitctl add Read -d "20 pages" -c learning`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = strings.Join(args, " ")
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				h, err := a.Habits.Create(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", h.Name, shortID(h.ID))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&input.Description, "description", "d", "", "Optional description")
	cmd.Flags().StringVarP(&input.Category, "category", "c", string(domain.DefaultCategory), "Category")
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var name, description, category string

	cmd := &cobra.Command{
		Use:   "edit HABIT",
		Short: "Change name, description or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				h, err := resolve(a.Habits.List(ctx, services.ListFilter{}), args[0])
				if err != nil {
					return err
				}

				input := services.UpdateHabitInput{ID: h.ID}
				if cmd.Flags().Changed("name") {
					input.Name = &name
				}
				if cmd.Flags().Changed("description") {
					input.Description = &description
				}
				if cmd.Flags().Changed("category") {
					input.Category = &category
				}

				updated, err := a.Habits.Update(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s (%s)\n", updated.Name, shortID(updated.ID))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	return cmd
}

func (c *cli) toggleCmd() *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "toggle HABIT",
		Short: "Mark a habit done for today, or undo it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				h, err := resolve(a.Habits.List(ctx, services.ListFilter{}), args[0])
				if err != nil {
					return err
				}

				key := a.Stats.Today()
				if day != "" {
					if key, err = domain.ParseDayKey(day); err != nil {
						return err
					}
				}

				_, done, err := a.Habits.ToggleDay(ctx, h.ID, key)
				if err != nil {
					return err
				}

				state := "not done"
				if done {
					state = "done"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s for %s\n", h.Name, state, key)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day to toggle (YYYY-MM-DD), defaults to today")
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete HABIT",
		Aliases: []string{"rm"},
		Short:   "Delete a habit and its history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				h, err := resolve(a.Habits.List(ctx, services.ListFilter{}), args[0])
				if err != nil {
					return err
				}
				if _, err := a.Habits.Delete(ctx, h.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", h.Name)
				return nil
			})
		},
	}
}

func (c *cli) statsCmd() *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's completion, the last 7 days and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				var stats domain.StatsSnapshot
				if today == "" {
					stats = a.Stats.Snapshot(ctx)
				} else {
					key, err := domain.ParseDayKey(today)
					if err != nil {
						return err
					}
					stats = a.Stats.SnapshotAt(ctx, key)
				}
				renderStats(cmd.OutOrStdout(), stats)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&today, "today", "", "Reference day (YYYY-MM-DD)")
	return cmd
}

func (c *cli) streakCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streak HABIT",
		Short: "Show the current and longest streak of a habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, func(ctx context.Context, a *app.App) error {
				h, err := resolve(a.Habits.List(ctx, services.ListFilter{}), args[0])
				if err != nil {
					return err
				}
				s, err := a.Stats.HabitStreaks(ctx, h.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n  current: %s\n  longest: %s\n",
					titleStyle.Render(h.Name), days(s.Current), days(s.Longest))
				return nil
			})
		},
	}
}

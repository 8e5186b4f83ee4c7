package cli

import (
	"context"
	"fmt"

	"github.com/nadiaferrer/tessera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskListCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var projectRef string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()

			projectID := ""
			if projectRef != "" {
				id, err := resolveProjectID(snap, projectRef)
				if err != nil {
					return err
				}
				projectID = id
			}

			out := formatter.FormatTaskList(snap, projectID)
			if out == "" {
				fmt.Println("No tasks found.")
				return nil
			}
			fmt.Printf("%s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRef, "project", "", "Limit to one project (name, id, or id prefix)")

	return cmd
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove TASK",
		Short: "Remove a task and its logged activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			id, err := resolveTaskID(snap, args[0])
			if err != nil {
				return err
			}
			t, _ := snap.FindTask(id)

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Remove task %q and every activity logged against it?", t.Title))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("aborted (use --yes to skip confirmation)")
				}
			}

			stats, err := app.Workspace.DeleteTask(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Removed task %s: %d activities removed\n", t.Title, stats.ActivitiesRemoved)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompt")

	return cmd
}

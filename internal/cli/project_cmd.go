package cli

import (
	"context"
	"fmt"

	"github.com/nadiaferrer/tessera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProjectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	cmd.AddCommand(
		newProjectListCmd(app),
		newProjectInspectCmd(app),
		newProjectRemoveCmd(app),
		newProjectExportCmd(app),
		newProjectImportCmd(app),
	)

	return cmd
}

func newProjectListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			if len(snap.Projects) == 0 {
				fmt.Println("No projects found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProjectList(snap))
			return nil
		},
	}
}

func newProjectInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROJECT",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			id, err := resolveProjectID(snap, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProjectInspect(snap, id))
			return nil
		},
	}
}

func newProjectRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove PROJECT",
		Short: "Remove a project and everything that depends on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			id, err := resolveProjectID(snap, args[0])
			if err != nil {
				return err
			}
			p, _ := snap.FindProject(id)

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Remove project %q with its tasks, activities, expenses and report?", p.Name))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("aborted (use --yes to skip confirmation)")
				}
			}

			stats, err := app.Workspace.DeleteProject(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Removed project %s: %d tasks, %d activities, %d expenses, %d reports\n",
				p.Name, stats.TasksRemoved, stats.ActivitiesRemoved, stats.ExpensesRemoved, stats.ReportsRemoved)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompt")

	return cmd
}

func newProjectExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export PROJECT",
		Short: "Export a project and its records to a portable file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			id, err := resolveProjectID(snap, args[0])
			if err != nil {
				return err
			}
			if err := app.Workspace.ExportProject(context.Background(), id, out); err != nil {
				return err
			}
			fmt.Printf("Exported project %s to %s\n", id, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file path")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newProjectImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a project export file into the workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Workspace.ImportBundle(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported project %s — %d tasks, %d activities, %d expenses, %d new members (%d matched by email)\n",
				result.Project.Name, result.TaskCount, result.ActivityCount,
				result.ExpenseCount, result.NewMembers, result.MembersDeduped)
			for _, w := range result.Warnings {
				fmt.Printf("  warning: %s\n", w)
			}
			return nil
		},
	}
}

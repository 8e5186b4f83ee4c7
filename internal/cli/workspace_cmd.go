package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newWorkspaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Whole-workspace backup, restore and checks",
	}

	cmd.AddCommand(
		newWorkspaceBackupCmd(app),
		newWorkspaceRestoreCmd(app),
		newWorkspaceCheckCmd(app),
	)

	return cmd
}

func newWorkspaceBackupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup FILE",
		Short: "Write the whole workspace to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Workspace.Backup(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Workspace backed up to %s\n", args[0])
			return nil
		},
	}
}

func newWorkspaceRestoreCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "restore FILE",
		Short: "Replace the whole workspace from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(app, "Restoring replaces every record in the workspace. Continue?")
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("aborted (use --yes to skip confirmation)")
				}
			}

			if err := app.Workspace.Restore(context.Background(), args[0]); err != nil {
				return err
			}

			snap := app.Workspace.Snapshot()
			fmt.Printf("Workspace restored: %d projects, %d members, %d tasks\n",
				len(snap.Projects), len(snap.Members), len(snap.Tasks))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompt")

	return cmd
}

func newWorkspaceCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Scan the workspace for dangling references",
		RunE: func(cmd *cobra.Command, args []string) error {
			violations := app.Workspace.CheckIntegrity(context.Background())
			if len(violations) == 0 {
				fmt.Println("Workspace is consistent.")
				return nil
			}
			for _, v := range violations {
				fmt.Printf("  %s\n", v)
			}
			return fmt.Errorf("%d dangling reference(s) found", len(violations))
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/nadiaferrer/tessera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage members",
	}

	cmd.AddCommand(
		newMemberListCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			if len(snap.Members) == 0 {
				fmt.Println("No members found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatMemberList(snap))
			return nil
		},
	}
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove MEMBER",
		Short: "Remove a member (their logged time is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			id, err := resolveMemberID(snap, args[0])
			if err != nil {
				return err
			}
			m, _ := snap.FindMember(id)

			if !yes {
				ok, err := confirm(app, fmt.Sprintf("Remove member %q? Their tasks become unassigned; logged activities are kept.", m.Name))
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("aborted (use --yes to skip confirmation)")
				}
			}

			stats, err := app.Workspace.DeleteMember(context.Background(), id)
			if err != nil {
				return err
			}
			fmt.Printf("Removed member %s: %d tasks unassigned, %d collaborator entries pruned, %d activities kept\n",
				m.Name, stats.TasksUnassigned, stats.CollaboratorsPruned, stats.ActivitiesRetained)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompt")

	return cmd
}

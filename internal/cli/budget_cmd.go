package cli

import (
	"context"
	"fmt"

	"github.com/nadiaferrer/tessera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget reconciliation",
	}

	cmd.AddCommand(newBudgetReportCmd(app))

	return cmd
}

func newBudgetReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report PROJECT",
		Short: "Show budgeted vs actual figures for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Workspace.Snapshot()
			id, err := resolveProjectID(snap, args[0])
			if err != nil {
				return err
			}

			summary, err := app.Reconcile.BudgetReport(context.Background(), id)
			if err != nil {
				return err
			}

			p, _ := snap.FindProject(id)
			fmt.Printf("%s\n", formatter.FormatBudgetReport(p.Name, summary))
			return nil
		},
	}
}

package cli

import (
	"os"

	"github.com/nadiaferrer/tessera/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Workspace service.WorkspaceService
	Reconcile service.ReconcileService

	// IsInteractive reports whether stdin is a terminal; confirmation
	// prompts are skipped when it returns false.
	IsInteractive func() bool
	NoColor       bool
}

// NewRootCmd creates the top-level "tessera" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tessera",
		Short: "Project, budget and time-tracking workspace",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Styling libraries honor NO_COLOR; set it before first render.
			if app.NoColor {
				os.Setenv("NO_COLOR", "1")
			}
		},
	}

	root.AddCommand(
		newProjectCmd(app),
		newMemberCmd(app),
		newTaskCmd(app),
		newBudgetCmd(app),
		newWorkspaceCmd(app),
	)

	return root
}

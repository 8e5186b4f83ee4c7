package cli

import "github.com/charmbracelet/huh"

// confirm asks the user to approve a destructive operation. Non-interactive
// sessions (pipes, scripts) refuse rather than guess; pass --yes there.
func confirm(app *App, title string) (bool, error) {
	if app.IsInteractive == nil || !app.IsInteractive() {
		return false, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Package tui provides the terminal user interface for CareerCraft.
//
// The App model shows the four-step profile wizard, a spinner while the
// recommendation service runs, and then the personalized roadmap or an
// error panel. Wizard and orchestrator transitions all happen on the
// Bubbletea update loop; the service call runs in a command and reports
// back with a completion message, which the orchestrator discards if the
// user has started over in the meantime.
//
// Usage:
//
//	app := tui.NewApp(ctx, wizard.New(), results.New(svc), logger)
//	_, err := tui.NewProgram(app, true).Run()
package tui

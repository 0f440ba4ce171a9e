package cmd

import (
	"fmt"

	"github.com/five82/lookout/internal/jobsearch"
)

type RunCmd struct {
	NoHistory bool `name:"no-history" help:"Skip printing the refreshed run history."`
}

// Run triggers a manual automation cycle and then prints the refreshed
// history. A history failure after a successful run is only a warning.
func (r *RunCmd) Run(ctx *Context) error {
	ctx.UI.Infof("Running automation cycle...")
	ctx.Logger.Info().Msg("manual run requested")
	if err := ctx.Client.TriggerManualSearch(ctx.Ctx); err != nil {
		return fmt.Errorf("trigger manual search: %w", err)
	}
	if !ctx.JSONOutput {
		ctx.UI.Successf("Manual job search completed! Check your email for results.")
	}
	if r.NoHistory {
		return nil
	}

	results, err := ctx.Client.ListJobResults(ctx.Ctx)
	if err != nil {
		ctx.Logger.Warn().Err(err).Msg("history refresh after manual run failed")
		ctx.UI.Warnf("Could not refresh run history: %v", err)
		return nil
	}
	if ctx.JSONOutput {
		return writeJSON(ctx.Out, struct {
			Triggered bool                            `json:"triggered"`
			History   []jobsearch.SearchResultSummary `json:"history"`
		}{Triggered: true, History: results})
	}
	return renderHistory(ctx, results)
}

type TestEmailCmd struct{}

func (t *TestEmailCmd) Run(ctx *Context) error {
	ctx.UI.Infof("Sending test email...")
	if err := ctx.Client.SendTestNotification(ctx.Ctx); err != nil {
		return fmt.Errorf("send test notification: %w", err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx.Out, map[string]bool{"sent": true})
	}
	ctx.UI.Successf("Test email sent successfully!")
	return nil
}

package cmd

import "fmt"

type HistoryCmd struct{}

func (h *HistoryCmd) Run(ctx *Context) error {
	results, err := ctx.Client.ListJobResults(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("list job results: %w", err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx.Out, results)
	}
	if len(results) == 0 {
		ctx.UI.Warnf("No automated runs recorded yet")
		return nil
	}
	return renderHistory(ctx, results)
}

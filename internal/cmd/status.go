package cmd

import (
	"fmt"
)

type StatusCmd struct{}

func (s *StatusCmd) Run(ctx *Context) error {
	resp, err := ctx.Client.GetStatus(ctx.Ctx)
	if err != nil {
		return fmt.Errorf("get status: %w", err)
	}
	if ctx.JSONOutput {
		return writeJSON(ctx.Out, resp)
	}
	ctx.UI.Successf("%s", resp.Message)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/five82/lookout/internal/app"
)

type DashboardCmd struct {
	NoLinks bool `name:"no-links" help:"Disable clickable job links in the jobs table."`
}

func (d *DashboardCmd) Run(ctx *Context) error {
	if ctx.Env == nil {
		return fmt.Errorf("dashboard: environment not initialised")
	}
	hyperlinks := !d.NoLinks && ctx.UI.ColorEnabled
	return app.Run(ctx.Ctx, ctx.Env, hyperlinks)
}

package cmd

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/app"
	"github.com/five82/lookout/internal/config"
	"github.com/five82/lookout/internal/jobsearch"
)

type Context struct {
	Ctx        context.Context
	Out        io.Writer
	Err        io.Writer
	UI         *UI
	Env        *app.Env
	Config     config.Config
	Logger     zerolog.Logger
	Client     jobsearch.Gateway
	JSONOutput bool
	Version    string
}

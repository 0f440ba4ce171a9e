package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/lookout/internal/config"
	"github.com/five82/lookout/internal/dashboard"
	"github.com/five82/lookout/internal/jobsearch"
	"github.com/five82/lookout/internal/logging"
	"github.com/five82/lookout/internal/schedule"
	"github.com/five82/lookout/internal/ui"
)

// Options configure the lookout environment. Non-empty fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	APIURL     string
	Theme      string
	Verbose    bool
}

// Env is everything a command needs to talk to the backend.
type Env struct {
	Config config.Config
	Logger zerolog.Logger
	Client *jobsearch.Client

	closeLog func() error
}

// Setup loads configuration, opens the log file and builds the API client.
// Call Close when done.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.APIURL); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(opts.Theme); v != "" {
		cfg.Theme = v
	}

	logger, closeLog, err := logging.New(logging.Options{
		File:    cfg.LogFile,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client := jobsearch.NewClient(cfg.APIURL,
		jobsearch.WithTimeout(cfg.RequestTimeout),
		jobsearch.WithLogger(logger.With().Str("component", "gateway").Logger()),
	)
	if client.BaseURL() == "" {
		logger.Warn().Str("api_url", cfg.APIURL).Msg("api url unusable; every call will fail")
	}

	return &Env{Config: cfg, Logger: logger, Client: client, closeLog: closeLog}, nil
}

// Close flushes and closes the log file.
func (e *Env) Close() error {
	if e == nil || e.closeLog == nil {
		return nil
	}
	return e.closeLog()
}

// Run boots the dashboard TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, env *Env, hyperlinks bool) error {
	env.Logger.Info().Str("api_url", env.Client.BaseURL()).Msg("dashboard starting")
	defer env.Logger.Info().Msg("dashboard stopped")
	return ui.Run(uiOptions(ctx, env, hyperlinks))
}

// uiOptions wires the dashboard components and the automation schedule
// into the UI options.
func uiOptions(ctx context.Context, env *Env, hyperlinks bool) ui.Options {
	cfg := env.Config

	dash := dashboard.New(dashboard.Options{
		Context:  ctx,
		Gateway:  env.Client,
		Logger:   env.Logger,
		Query:    cfg.DefaultQuery,
		Location: cfg.DefaultLocation,
	})

	sched, err := schedule.Parse(cfg.Schedule, cfg.Location())
	if err != nil {
		env.Logger.Warn().Err(err).Msg("automation schedule hidden")
		sched = nil
	}

	return ui.Options{
		Context:    ctx,
		Dashboard:  dash,
		Schedule:   sched,
		ThemeName:  cfg.Theme,
		LogPath:    cfg.LogFile,
		Logger:     env.Logger.With().Str("component", "ui").Logger(),
		Hyperlinks: hyperlinks,
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/five82/lookout/internal/app"
	"github.com/five82/lookout/internal/cmd"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	os.Exit(run())
}

func run() int {
	cli := cmd.NewCLI()
	applyEnvDefaults(cli)
	versionString := buildVersion()

	parser, err := kong.New(cli,
		kong.Name("lookout"),
		kong.Description("Operator dashboard for the job-search automation backend."),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": versionString},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		fallbackUI := cmd.NewUI(os.Stdout, os.Stderr, cmd.NormalizeColorMode(os.Getenv("LOOKOUT_COLOR")), false)
		reportError(fallbackUI, err)
		return 1
	}

	userInterface := cmd.NewUI(os.Stdout, os.Stderr, cmd.NormalizeColorMode(cli.Color), cli.JSON)

	env, err := app.Setup(cli.SetupOptions())
	if err != nil {
		reportError(userInterface, err)
		return 1
	}
	defer env.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	runCtx := &cmd.Context{
		Ctx:        ctx,
		Out:        os.Stdout,
		Err:        os.Stderr,
		UI:         userInterface,
		Env:        env,
		Config:     env.Config,
		Logger:     env.Logger.With().Str("command", kctx.Command()).Logger(),
		Client:     env.Client,
		JSONOutput: cli.JSON,
		Version:    versionString,
	}

	if err := kctx.Run(runCtx); err != nil {
		env.Logger.Error().Err(err).Str("command", kctx.Command()).Msg("command failed")
		reportError(userInterface, err)
		return 1
	}
	return 0
}

// reportError prints err to stderr with the program prefix.
func reportError(ui *cmd.UI, err error) {
	ui.Errorf("lookout: %v", err)
}

func buildVersion() string {
	if commit == "" && date == "" {
		return version
	}
	if commit == "" {
		return fmt.Sprintf("%s (%s)", version, date)
	}
	if date == "" {
		return fmt.Sprintf("%s (%s)", version, commit)
	}
	return fmt.Sprintf("%s (%s, %s)", version, commit, date)
}

func applyEnvDefaults(cli *cmd.CLI) {
	if envBool("LOOKOUT_JSON") {
		cli.JSON = true
	}
	if envBool("LOOKOUT_VERBOSE") {
		cli.Verbose = true
	}
	if value := os.Getenv("LOOKOUT_COLOR"); value != "" {
		cli.Color = value
	}
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

package cmd

import (
	"github.com/alecthomas/kong"

	"github.com/five82/lookout/internal/app"
)

// CLI is the kong command tree.
type CLI struct {
	Config  string `help:"Config file path." type:"path" placeholder:"PATH"`
	APIURL  string `name:"api-url" help:"Backend base URL; overrides config and LOOKOUT_API_URL." placeholder:"URL"`
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`
	Theme   string `help:"Dashboard theme: Nightfox, Kanagawa, Slate; overrides config and LOOKOUT_THEME." placeholder:"NAME"`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Dashboard DashboardCmd `cmd:"" default:"1" help:"Open the operator dashboard (default)."`
	Status    StatusCmd    `cmd:"" help:"Print the backend health message."`
	Search    SearchCmd    `cmd:"" help:"Run a one-shot job search."`
	History   HistoryCmd   `cmd:"" help:"Print the automated run history."`
	Run       RunCmd       `cmd:"" help:"Trigger a manual automation run."`
	TestEmail TestEmailCmd `cmd:"" name:"test-email" help:"Send a test notification email."`
	Version   VersionCmd   `cmd:"" help:"Print version."`
}

func NewCLI() *CLI {
	return &CLI{}
}

// SetupOptions maps the global flags onto the environment options.
func (c *CLI) SetupOptions() app.Options {
	return app.Options{
		ConfigPath: c.Config,
		APIURL:     c.APIURL,
		Theme:      c.Theme,
		Verbose:    c.Verbose,
	}
}

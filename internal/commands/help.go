package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskman help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskman                                            List tasks (page 1)
  taskman list [common flags] [--page <n>]           List one page of tasks
  taskman show [common flags] <id>                   Show one task
  taskman add [common flags] --desc <text> --due <YYYY-MM-DD> [--priority <p>] [--assign <name>] <title...>
  taskman edit [common flags] <id> [--title <t>] [--desc <d>] [--due <date>] [--status <s>] [--priority <p>] [--assign <name>]
  taskman status [common flags] [--page <n>] <id> <pending|in-progress|completed>
  taskman done [common flags] [--page <n>] <id>
  taskman rm [common flags] [--force] [--page <n>] <id>
  taskman register [common flags] [--username <name>] [--password <pw>]
  taskman login [common flags] [--username <name>] [--password <pw>]
  taskman logout [common flags]
  taskman help
  taskman version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`

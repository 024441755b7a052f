package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/controller"
	"taskman/internal/exitcode"
	"taskman/internal/output"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command (the task detail screen).
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return []string{"get"} }
func (c *ShowCmd) Synopsis() string  { return "Show one task" }
func (c *ShowCmd) Usage() string     { return "taskman show <id>" }
func (c *ShowCmd) NeedsAuth() bool   { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	dc := controller.NewDetail(svc, args[0])
	if err := dc.Load(ctx); err != nil {
		return reportError(errOut, sess, err)
	}

	output.FormatTaskDetail(out, dc.Task())
	return exitcode.Success
}

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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Bare `taskman` dispatches here as the default screen.
type ListCmd struct {
	page int
}

// SetPage sets the page number (for testing).
func (c *ListCmd) SetPage(page int) {
	c.page = page
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskman list [--page <n>]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.page, "page", 1, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.page < 1 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", c.page)
		return exitcode.UserError
	}
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	lc := controller.NewList(svc)
	if err := lc.Load(ctx, c.page); err != nil {
		return reportError(errOut, sess, err)
	}

	tasks := lc.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
	} else {
		for _, task := range tasks {
			output.FormatTaskRow(out, task)
		}
	}

	if !cfg.Quiet {
		output.FormatPageFooter(out, lc.Page(), lc.TotalPages())
	}
	return exitcode.Success
}

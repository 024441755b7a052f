package commands

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskman/internal/config"
	"taskman/internal/controller"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command (the per-row delete action).
// Deleting requires confirmation unless --force is given.
type RmCmd struct {
	force bool
	page  int
	in    io.Reader
}

// SetForce sets the force flag (for testing).
func (c *RmCmd) SetForce(force bool) { c.force = force }

// SetPage sets the page number (for testing).
func (c *RmCmd) SetPage(page int) { c.page = page }

// SetInput overrides the confirmation input (for testing).
func (c *RmCmd) SetInput(in io.Reader) { c.in = in }

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "taskman rm [--force] [--page <n>] <id>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.IntVar(&c.page, "page", 1, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	if c.page < 1 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", c.page)
		return exitcode.UserError
	}

	confirm := controller.Confirmer(controller.ConfirmerFunc(func(string) bool { return true }))
	if !c.force {
		in := c.in
		if in == nil {
			in = os.Stdin
		}
		confirm = promptConfirmer(in, errOut)
	}

	lc := controller.NewList(svc)
	if err := lc.Load(ctx, c.page); err != nil {
		return reportError(errOut, sess, err)
	}

	deleted, err := lc.Delete(ctx, args[0], confirm)
	if err != nil {
		return reportError(errOut, sess, err)
	}
	if !deleted {
		if !cfg.Quiet {
			fmt.Fprintln(out, "cancelled")
		}
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// promptConfirmer asks a y/N question on errOut and reads the answer.
// Anything but y/yes declines.
func promptConfirmer(in io.Reader, errOut io.Writer) controller.Confirmer {
	return controller.ConfirmerFunc(func(prompt string) bool {
		fmt.Fprintf(errOut, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}

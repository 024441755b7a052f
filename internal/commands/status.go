package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/controller"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&StatusCmd{})
	Register(&DoneCmd{})
}

// StatusCmd implements the status command (the list screen's per-row
// status toggle). The page is re-fetched after the update.
type StatusCmd struct {
	page int
}

// SetPage sets the page number (for testing).
func (c *StatusCmd) SetPage(page int) { c.page = page }

func (c *StatusCmd) Name() string      { return "status" }
func (c *StatusCmd) Aliases() []string { return nil }
func (c *StatusCmd) Synopsis() string  { return "Set a task's status" }
func (c *StatusCmd) Usage() string     { return "taskman status [--page <n>] <id> <pending|in-progress|completed>" }
func (c *StatusCmd) NeedsAuth() bool   { return true }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.page, "page", 1, "")
}

func (c *StatusCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(errOut, "error: task id and status required")
		return exitcode.UserError
	}
	return runSetStatus(ctx, cfg, sess, svc, c.page, args[0], service.Status(args[1]), out, errOut)
}

// DoneCmd is the completed shorthand for StatusCmd.
type DoneCmd struct {
	page int
}

// SetPage sets the page number (for testing).
func (c *DoneCmd) SetPage(page int) { c.page = page }

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskman done [--page <n>] <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.page, "page", 1, "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	return runSetStatus(ctx, cfg, sess, svc, c.page, args[0], service.StatusCompleted, out, errOut)
}

// runSetStatus is the shared implementation for status and done.
func runSetStatus(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, page int, id string, status service.Status, out, errOut io.Writer) int {
	if page < 1 {
		fmt.Fprintf(errOut, "error: invalid page number: %d\n", page)
		return exitcode.UserError
	}

	lc := controller.NewList(svc)
	if err := lc.Load(ctx, page); err != nil {
		return reportError(errOut, sess, err)
	}
	if err := lc.SetStatus(ctx, id, status); err != nil {
		return reportError(errOut, sess, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

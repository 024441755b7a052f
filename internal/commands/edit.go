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
	Register(&EditCmd{})
}

// EditCmd implements the edit command (the edit-task screen).
// The current task is fetched first; flags override individual draft
// fields and the whole draft is submitted back.
type EditCmd struct {
	title       string
	description string
	dueDate     string
	status      string
	priority    string
	assignedTo  string
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskman edit <id> [--title <t>] [--desc <d>] [--due <date>] [--status <s>] [--priority <p>] [--assign <name>]"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.dueDate, "due", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.priority, "priority", "", "")
	fs.StringVar(&c.priority, "p", "", "")
	fs.StringVar(&c.assignedTo, "assign", "", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}

	ed := controller.NewEditor(svc)
	if err := ed.LoadTask(ctx, args[0]); err != nil {
		return reportError(errOut, sess, err)
	}

	draft := ed.Draft()
	if c.title != "" {
		draft.Title = c.title
	}
	if c.description != "" {
		draft.Description = c.description
	}
	if c.dueDate != "" {
		draft.DueDate = c.dueDate
	}
	if c.status != "" {
		draft.Status = service.Status(c.status)
	}
	if c.priority != "" {
		draft.Priority = service.Priority(c.priority)
	}
	if c.assignedTo != "" {
		draft.AssignedTo = c.assignedTo
	}

	task, err := ed.Submit(ctx)
	if err != nil {
		return reportError(errOut, sess, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "updated %s\n", task.ID)
	}
	return exitcode.Success
}

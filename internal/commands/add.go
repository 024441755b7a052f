package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskman/internal/config"
	"taskman/internal/controller"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command (the create-task screen).
type AddCmd struct {
	description string
	dueDate     string
	priority    string
	assignedTo  string
}

// SetFields sets the form fields (for testing).
func (c *AddCmd) SetFields(description, dueDate, priority, assignedTo string) {
	c.description = description
	c.dueDate = dueDate
	c.priority = priority
	c.assignedTo = assignedTo
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskman add --desc <text> --due <YYYY-MM-DD> [--priority <p>] [--assign <name>] <title...>"
}
func (c *AddCmd) NeedsAuth() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
	fs.StringVar(&c.dueDate, "due", "", "")
	fs.StringVar(&c.priority, "priority", string(service.PriorityMedium), "")
	fs.StringVar(&c.priority, "p", string(service.PriorityMedium), "")
	fs.StringVar(&c.assignedTo, "assign", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	ed := controller.NewEditor(svc)
	draft := ed.Draft()
	draft.Title = title
	draft.Description = c.description
	draft.DueDate = c.dueDate
	draft.Priority = service.Priority(c.priority)
	draft.AssignedTo = c.assignedTo

	task, err := ed.Submit(ctx)
	if err != nil {
		return reportError(errOut, sess, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "created %s\n", task.ID)
	}
	return exitcode.Success
}

package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Registration does not log
// the new account in; that stays an explicit second step.
type RegisterCmd struct {
	username string
	password string
	in       io.Reader
}

// SetInput overrides the prompt input (for testing).
func (c *RegisterCmd) SetInput(in io.Reader) { c.in = in }

// SetCredentials sets the credentials (for testing).
func (c *RegisterCmd) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create a new account" }
func (c *RegisterCmd) Usage() string     { return "taskman register [--username <name>] [--password <pw>]" }
func (c *RegisterCmd) NeedsAuth() bool   { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	in := c.in
	if in == nil {
		in = os.Stdin
	}

	username, password, err := promptCredentials(in, errOut, c.username, c.password)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	if strings.TrimSpace(username) == "" || password == "" {
		fmt.Fprintln(errOut, "error: username and password required")
		return exitcode.UserError
	}

	if err := svc.Register(ctx, username, password); err != nil {
		return reportError(errOut, nil, err)
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "registered %s (run: taskman login)\n", username)
	}
	return exitcode.Success
}

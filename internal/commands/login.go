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
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
//
// Running it while already logged in is permitted: the new token simply
// replaces the stored one.
type LoginCmd struct {
	username string
	password string
	in       io.Reader
}

// SetInput overrides the prompt input (for testing).
func (c *LoginCmd) SetInput(in io.Reader) { c.in = in }

// SetCredentials sets the credentials (for testing).
func (c *LoginCmd) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Log in and store the session token" }
func (c *LoginCmd) Usage() string     { return "taskman login [--username <name>] [--password <pw>]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Store, svc service.Service, args []string, out, errOut io.Writer) int {
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

	result, err := svc.Login(ctx, username, password)
	if err != nil {
		// Bad credentials must not clear an existing session, so this
		// does not go through reportError.
		if service.IsAuth(err) {
			fmt.Fprintln(errOut, "error: invalid username or password")
			return exitcode.AuthError
		}
		return reportError(errOut, nil, err)
	}

	if err := sess.Set(result.Token); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		name := result.User.Username
		if name == "" {
			name = username
		}
		fmt.Fprintf(out, "logged in as %s\n", name)
	}
	return exitcode.Success
}

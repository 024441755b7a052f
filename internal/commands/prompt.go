package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readLine reads one input line, trimming the trailing newline.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptCredentials fills in username and password, prompting for whichever
// is missing. Prompts go to errOut so stdout stays clean for scripting.
// The password is read without echo when in is an interactive terminal.
func promptCredentials(in io.Reader, errOut io.Writer, username, password string) (string, string, error) {
	r := bufio.NewReader(in)
	var err error

	if username == "" {
		fmt.Fprint(errOut, "Username: ")
		username, err = readLine(r)
		if err != nil {
			return "", "", fmt.Errorf("failed to read username: %w", err)
		}
	}

	if password == "" {
		fmt.Fprint(errOut, "Password: ")
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			var raw []byte
			raw, err = term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(errOut)
			if err != nil {
				return "", "", fmt.Errorf("failed to read password: %w", err)
			}
			password = string(raw)
		} else {
			password, err = readLine(r)
			if err != nil {
				return "", "", fmt.Errorf("failed to read password: %w", err)
			}
		}
	}

	return strings.TrimSpace(username), password, nil
}

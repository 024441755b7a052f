package commands

import (
	"fmt"
	"io"

	"taskman/internal/exitcode"
	"taskman/internal/service"
	"taskman/internal/session"
)

// reportError prints a screen-local message for a failed gateway call and
// returns the matching exit code.
//
// An auth failure outside the login flow means the stored token is gone or
// rejected: the session is cleared so the next invocation hits the login
// guard instead of failing the same way again.
func reportError(errOut io.Writer, sess *session.Store, err error) int {
	switch service.KindOf(err) {
	case service.KindAuth:
		if sess != nil {
			_ = sess.Clear()
		}
		fmt.Fprintf(errOut, "error: %v (run: taskman login)\n", err)
		return exitcode.AuthError
	case service.KindValidation, service.KindNotFound, service.KindConflict:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case service.KindNetwork:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.BackendError
}

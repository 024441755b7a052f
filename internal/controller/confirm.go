// Package controller holds the screen-local state machines behind the CLI:
// the paginated task list, the create/edit draft, and the single-task
// detail view. Controllers call the service interface and own their state;
// commands render it.
package controller

// Confirmer asks the user to approve a destructive action.
// Deleting goes through a Confirmer so the two-step protocol is explicit
// and testable rather than tied to a terminal prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

// Confirm implements Confirmer.
func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

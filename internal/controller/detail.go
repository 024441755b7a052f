package controller

import (
	"context"
	"fmt"

	"taskman/internal/service"
)

// DetailState is the detail view's render state. The three states are
// exclusive: exactly one applies at any time.
type DetailState int

const (
	// StateLoading means no fetch has completed yet.
	StateLoading DetailState = iota

	// StateError means the initial fetch failed.
	StateError

	// StateLoaded means the task is available.
	StateLoaded
)

// DetailController fetches a single task by identity and offers delete.
type DetailController struct {
	svc     service.Service
	id      string
	state   DetailState
	task    service.Task
	loadErr error
}

// NewDetail creates a detail controller for one task identity,
// starting in the loading state.
func NewDetail(svc service.Service, id string) *DetailController {
	return &DetailController{svc: svc, id: id}
}

// Load fetches the task. Failure replaces the loading state with the
// error state; success moves to loaded.
func (c *DetailController) Load(ctx context.Context) error {
	task, err := c.svc.GetTask(ctx, c.id)
	if err != nil {
		c.state = StateError
		c.loadErr = err
		return err
	}
	c.state = StateLoaded
	c.task = task
	c.loadErr = nil
	return nil
}

// Delete removes the task after confirmation. Returns false with a nil
// error when the user declines. The loaded state is retained on failure
// so the user can retry.
func (c *DetailController) Delete(ctx context.Context, confirm Confirmer) (bool, error) {
	if !confirm.Confirm(fmt.Sprintf("Delete task %s?", c.id)) {
		return false, nil
	}
	if err := c.svc.DeleteTask(ctx, c.id); err != nil {
		return false, err
	}
	return true, nil
}

// State returns the current render state.
func (c *DetailController) State() DetailState { return c.state }

// Task returns the loaded task. Only meaningful in StateLoaded.
func (c *DetailController) Task() service.Task { return c.task }

// Err returns the load error. Only meaningful in StateError.
func (c *DetailController) Err() error { return c.loadErr }

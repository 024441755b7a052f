// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All REST API calls go through this interface.
// Commands and controllers never touch the HTTP client directly.
type Service interface {
	// Login exchanges credentials for a session token.
	// Fails with KindAuth on invalid credentials.
	Login(ctx context.Context, username, password string) (LoginResult, error)

	// Register creates a new account. No auto-login.
	// Fails with KindConflict if the username is taken.
	Register(ctx context.Context, username, password string) error

	// ListTasks returns one page of the task collection in server order.
	// page is 1-based; pageSize is the fixed page window.
	ListTasks(ctx context.Context, page, pageSize int) (TaskPage, error)

	// GetTask fetches a single task by identity.
	GetTask(ctx context.Context, id string) (Task, error)

	// CreateTask creates a task. The returned Task carries the
	// server-assigned identity.
	CreateTask(ctx context.Context, fields NewTask) (Task, error)

	// UpdateTask applies a partial update to an existing task.
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (Task, error)

	// DeleteTask deletes a task by identity.
	DeleteTask(ctx context.Context, id string) error
}

// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"taskman/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks []service.Task
	users map[string]string // username -> password
	seq   int

	// Error injection for testing
	LoginErr      error
	RegisterErr   error
	ListTasksErr  error
	GetTaskErr    error
	CreateTaskErr error
	UpdateTaskErr error
	DeleteTaskErr error

	// Calls counts gateway invocations by operation name.
	Calls map[string]int
}

// NewFakeService creates an empty fake backend.
func NewFakeService() *FakeService {
	return &FakeService{
		users: make(map[string]string),
		Calls: make(map[string]int),
	}
}

// AddUser seeds an account.
func (f *FakeService) AddUser(username, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = password
}

// AddTask seeds a task with a generated identity and returns it.
func (f *FakeService) AddTask(t service.Task) service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	t.ID = fmt.Sprintf("task-%d", f.seq)
	if t.Status == "" {
		t.Status = service.StatusPending
	}
	if t.Priority == "" {
		t.Priority = service.PriorityMedium
	}
	f.tasks = append(f.tasks, t)
	return t
}

// TaskCount returns the number of stored tasks.
func (f *FakeService) TaskCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.tasks)
}

func (f *FakeService) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls[op]++
}

// Login implements service.Service.
func (f *FakeService) Login(ctx context.Context, username, password string) (service.LoginResult, error) {
	f.record("Login")
	if f.LoginErr != nil {
		return service.LoginResult{}, f.LoginErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	if pw, ok := f.users[username]; !ok || pw != password {
		return service.LoginResult{}, service.NewError(service.KindAuth, "invalid username or password")
	}
	return service.LoginResult{
		Token: "fake-token-" + username,
		User:  service.User{ID: "user-" + username, Username: username},
	}, nil
}

// Register implements service.Service.
func (f *FakeService) Register(ctx context.Context, username, password string) error {
	f.record("Register")
	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[username]; exists {
		return service.Errorf(service.KindConflict, "username already taken: %s", username)
	}
	f.users[username] = password
	return nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, page, pageSize int) (service.TaskPage, error) {
	f.record("ListTasks")
	if f.ListTasksErr != nil {
		return service.TaskPage{}, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	totalPages := (len(f.tasks) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	var items []service.Task
	if start < len(f.tasks) {
		end := start + pageSize
		if end > len(f.tasks) {
			end = len(f.tasks)
		}
		items = make([]service.Task, end-start)
		copy(items, f.tasks[start:end])
	}

	return service.TaskPage{Page: page, TotalPages: totalPages, Tasks: items}, nil
}

// GetTask implements service.Service.
func (f *FakeService) GetTask(ctx context.Context, id string) (service.Task, error) {
	f.record("GetTask")
	if f.GetTaskErr != nil {
		return service.Task{}, f.GetTaskErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return service.Task{}, service.Errorf(service.KindNotFound, "task not found: %s", id)
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, fields service.NewTask) (service.Task, error) {
	f.record("CreateTask")
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	if strings.TrimSpace(fields.Title) == "" {
		return service.Task{}, service.NewError(service.KindValidation, "title required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	task := service.Task{
		ID:          fmt.Sprintf("task-%d", f.seq),
		Title:       fields.Title,
		Description: fields.Description,
		DueDate:     fields.DueDate,
		Status:      service.StatusPending,
		Priority:    fields.Priority,
		AssignedTo:  fields.AssignedTo,
	}
	if task.Priority == "" {
		task.Priority = service.PriorityMedium
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, id string, patch service.TaskPatch) (service.Task, error) {
	f.record("UpdateTask")
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		t := &f.tasks[i]
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Status != nil {
			if !service.ValidStatus(*patch.Status) {
				return service.Task{}, service.Errorf(service.KindValidation, "invalid status: %s", *patch.Status)
			}
			t.Status = *patch.Status
		}
		if patch.Priority != nil {
			if !service.ValidPriority(*patch.Priority) {
				return service.Task{}, service.Errorf(service.KindValidation, "invalid priority: %s", *patch.Priority)
			}
			t.Priority = *patch.Priority
		}
		if patch.AssignedTo != nil {
			t.AssignedTo = *patch.AssignedTo
		}
		return *t, nil
	}
	return service.Task{}, service.Errorf(service.KindNotFound, "task not found: %s", id)
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.record("DeleteTask")
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return service.Errorf(service.KindNotFound, "task not found: %s", id)
}

package controller

import (
	"context"
	"strings"
	"time"

	"taskman/internal/service"
)

// Draft is the transient, client-local copy of the task being composed or
// edited. It exists only for the lifetime of one editor and is discarded
// with it, whether or not submission succeeded.
type Draft struct {
	ID          string
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD
	Status      service.Status
	Priority    service.Priority
	AssignedTo  string
}

// NewDraft returns a draft pre-populated with the create-form defaults.
func NewDraft() Draft {
	return Draft{
		Status:   service.StatusPending,
		Priority: service.PriorityMedium,
	}
}

// draftFromTask builds a draft from a fetched task, normalizing the due
// date to a plain calendar date.
func draftFromTask(t service.Task) Draft {
	return Draft{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     DateOnly(t.DueDate),
		Status:      t.Status,
		Priority:    t.Priority,
		AssignedTo:  t.AssignedTo,
	}
}

// DateOnly strips any time component from a server date value.
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// EditorController owns a Draft and submits it as a create or an update,
// decided by whether the draft carries an identity.
type EditorController struct {
	svc     service.Service
	draft   Draft
	editing bool
}

// NewEditor creates an editor in create mode with default draft values.
func NewEditor(svc service.Service) *EditorController {
	return &EditorController{svc: svc, draft: NewDraft()}
}

// LoadTask switches the editor to edit mode, replacing the draft with the
// fetched task's fields. The prior draft is kept on fetch failure.
func (e *EditorController) LoadTask(ctx context.Context, id string) error {
	task, err := e.svc.GetTask(ctx, id)
	if err != nil {
		return err
	}
	e.draft = draftFromTask(task)
	e.editing = true
	return nil
}

// Draft returns the mutable draft.
func (e *EditorController) Draft() *Draft { return &e.draft }

// Editing reports whether the editor is in edit mode.
func (e *EditorController) Editing() bool { return e.editing }

// Submit validates the draft and dispatches it. Create mode posts the
// collected fields; edit mode patches every mutable field of the target
// task. The draft is retained on failure so the caller may resubmit.
func (e *EditorController) Submit(ctx context.Context) (service.Task, error) {
	if err := e.validate(); err != nil {
		return service.Task{}, err
	}

	if !e.editing {
		return e.svc.CreateTask(ctx, service.NewTask{
			Title:       e.draft.Title,
			Description: e.draft.Description,
			DueDate:     e.draft.DueDate,
			Priority:    e.draft.Priority,
			AssignedTo:  e.draft.AssignedTo,
		})
	}

	if e.draft.ID == "" {
		// Edit mode without an identity means the initial fetch never
		// completed; submitting would have no target.
		return service.Task{}, service.NewError(service.KindValidation, "task ID is missing")
	}

	d := e.draft
	return e.svc.UpdateTask(ctx, d.ID, service.TaskPatch{
		Title:       &d.Title,
		Description: &d.Description,
		DueDate:     &d.DueDate,
		Status:      &d.Status,
		Priority:    &d.Priority,
		AssignedTo:  &d.AssignedTo,
	})
}

// validate mirrors the form's required markers: no request is issued
// while a required field is empty or malformed.
func (e *EditorController) validate() error {
	if strings.TrimSpace(e.draft.Title) == "" {
		return service.NewError(service.KindValidation, "title required")
	}
	if strings.TrimSpace(e.draft.Description) == "" {
		return service.NewError(service.KindValidation, "description required")
	}
	if e.draft.DueDate == "" {
		return service.NewError(service.KindValidation, "due date required")
	}
	if _, err := time.Parse("2006-01-02", e.draft.DueDate); err != nil {
		return service.Errorf(service.KindValidation, "invalid due date: %s (want YYYY-MM-DD)", e.draft.DueDate)
	}
	if !service.ValidPriority(e.draft.Priority) {
		return service.Errorf(service.KindValidation, "invalid priority: %s", e.draft.Priority)
	}
	if !service.ValidStatus(e.draft.Status) {
		return service.Errorf(service.KindValidation, "invalid status: %s", e.draft.Status)
	}
	return nil
}

package controller

import (
	"context"
	"fmt"

	"taskman/internal/service"
)

// PageSize is the fixed task list page window.
const PageSize = 10

// ListController owns the current page of the task collection.
//
// A successful load fully replaces the page; a failed load leaves the
// prior page untouched. Mutations never patch local state: the page is
// re-fetched after every successful update or delete.
type ListController struct {
	svc        service.Service
	page       int
	totalPages int
	tasks      []service.Task
	loaded     bool
}

// NewList creates a list controller positioned on page 1 with nothing loaded.
func NewList(svc service.Service) *ListController {
	return &ListController{svc: svc, page: 1, totalPages: 1}
}

// Load fetches the given page and replaces the controller state on success.
func (c *ListController) Load(ctx context.Context, page int) error {
	if page < 1 {
		return service.Errorf(service.KindValidation, "invalid page number: %d", page)
	}

	result, err := c.svc.ListTasks(ctx, page, PageSize)
	if err != nil {
		return err
	}

	c.page = page
	c.totalPages = result.TotalPages
	c.tasks = result.Tasks
	c.loaded = true
	return nil
}

// Next loads the following page. A no-op on the last page.
func (c *ListController) Next(ctx context.Context) error {
	if !c.CanNext() {
		return nil
	}
	return c.Load(ctx, c.page+1)
}

// Prev loads the preceding page. A no-op on page 1.
func (c *ListController) Prev(ctx context.Context) error {
	if !c.CanPrev() {
		return nil
	}
	return c.Load(ctx, c.page-1)
}

// CanNext reports whether a following page exists.
func (c *ListController) CanNext() bool { return c.page < c.totalPages }

// CanPrev reports whether a preceding page exists.
func (c *ListController) CanPrev() bool { return c.page > 1 }

// SetStatus updates one task's status, then re-fetches the current page
// so the view reflects server state.
func (c *ListController) SetStatus(ctx context.Context, id string, status service.Status) error {
	if !service.ValidStatus(status) {
		return service.Errorf(service.KindValidation, "invalid status: %s", status)
	}

	st := status
	if _, err := c.svc.UpdateTask(ctx, id, service.TaskPatch{Status: &st}); err != nil {
		return err
	}
	return c.Load(ctx, c.page)
}

// Delete removes one task after confirmation, then re-fetches the current
// page. Returns false with a nil error when the user declines; no request
// is issued in that case.
//
// The page number is deliberately not renormalized when the deletion
// empties the current page: the next explicit navigation corrects it.
func (c *ListController) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	if !confirm.Confirm(fmt.Sprintf("Delete task %s?", id)) {
		return false, nil
	}

	if err := c.svc.DeleteTask(ctx, id); err != nil {
		return false, err
	}
	if err := c.Load(ctx, c.page); err != nil {
		return true, err
	}
	return true, nil
}

// Page returns the current 1-based page number.
func (c *ListController) Page() int { return c.page }

// TotalPages returns the last known total page count.
func (c *ListController) TotalPages() int { return c.totalPages }

// Tasks returns the current page's tasks in server order.
func (c *ListController) Tasks() []service.Task { return c.tasks }

// Loaded reports whether any page has been fetched successfully.
func (c *ListController) Loaded() bool { return c.loaded }

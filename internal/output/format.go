// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskman/internal/service"
)

// FormatTaskRow formats one task line for the list view.
// Format: "{ID:<24}  {STATUS:<12}  {PRIORITY:<6}  {DUE:<10}  {TITLE}\n"
func FormatTaskRow(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%-24s  %-12s  %-6s  %-10s  %s\n",
		task.ID,
		task.Status,
		task.Priority,
		dueDate(task.DueDate),
		normalizeTitle(task.Title),
	)
}

// FormatPageFooter formats the pagination line for the list view.
func FormatPageFooter(w io.Writer, page, totalPages int) {
	var hints []string
	if page > 1 {
		hints = append(hints, fmt.Sprintf("--page %d for previous", page-1))
	}
	if page < totalPages {
		hints = append(hints, fmt.Sprintf("--page %d for next", page+1))
	}

	if len(hints) > 0 {
		fmt.Fprintf(w, "page %d/%d (%s)\n", page, totalPages, strings.Join(hints, ", "))
		return
	}
	fmt.Fprintf(w, "page %d/%d\n", page, totalPages)
}

// FormatTaskDetail formats the full detail view of one task.
func FormatTaskDetail(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%s\n", normalizeTitle(task.Title))
	fmt.Fprintf(w, "  id:          %s\n", task.ID)
	fmt.Fprintf(w, "  status:      %s\n", task.Status)
	fmt.Fprintf(w, "  priority:    %s\n", task.Priority)
	fmt.Fprintf(w, "  due:         %s\n", dueDate(task.DueDate))
	if task.AssignedTo != "" {
		fmt.Fprintf(w, "  assigned to: %s\n", task.AssignedTo)
	}
	desc := strings.TrimSpace(task.Description)
	if desc == "" {
		desc = "(no description)"
	}
	fmt.Fprintf(w, "  description: %s\n", desc)
}

// dueDate formats a due date for display, stripping any time component.
func dueDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "-"
	}
	return s
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

package service

// Status is a task workflow state.
type Status string

// Task statuses accepted by the API.
const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// ValidStatus reports whether s is one of the accepted statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority is a task priority level.
type Priority string

// Task priorities accepted by the API.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the accepted priorities.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single task as held by the server.
// The ID is server-assigned and never set by the client.
type Task struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"` // calendar date, may carry a time component on the wire
	Status      Status   `json:"status"`
	Priority    Priority `json:"priority"`
	AssignedTo  string   `json:"assignedTo,omitempty"`
}

// TaskPage is one fixed-size window into the server-ordered task collection.
type TaskPage struct {
	Page       int
	TotalPages int
	Tasks      []Task
}

// NewTask holds the fields the create form collects. The server fills in
// the identity and defaults for everything else.
type NewTask struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	DueDate     string   `json:"dueDate"`
	Priority    Priority `json:"priority"`
	AssignedTo  string   `json:"assignedTo,omitempty"`
}

// TaskPatch is a partial update. Nil fields are left untouched by the server.
type TaskPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	DueDate     *string   `json:"dueDate,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	AssignedTo  *string   `json:"assignedTo,omitempty"`
}

// User is the account returned at login.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// LoginResult is the grant returned by a successful login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

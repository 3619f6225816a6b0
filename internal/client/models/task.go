package models

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "TODO"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusDone       TaskStatus = "DONE"
)

// ValidStatus reports whether s is one of the backend's task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	EmployeeID  *int64       `json:"employee_id,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"`

	// Employee is populated by the backend when EmployeeID resolves to an
	// existing employee. The client never fills it in; every fetch replaces
	// it wholesale.
	Employee *EmployeeRef `json:"employee,omitempty"`
}

// EmployeeRef is the denormalized employee embed on a Task.
type EmployeeRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewTask is the creation payload. DueDate and EmployeeID stay nil when the
// form left them blank, so the backend sees them as absent rather than as a
// zero value.
type NewTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	EmployeeID  *int64     `json:"employee_id,omitempty"`
}

// TaskUpdate is a partial update: only non-nil fields are serialized, so a
// status-only change puts exactly {"status": ...} on the wire.
type TaskUpdate struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
	DueDate     *time.Time  `json:"due_date,omitempty"`
	EmployeeID  *int64      `json:"employee_id,omitempty"`
}

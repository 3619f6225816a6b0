// Package forms holds the transient input state of the two creation flows.
// Each form keeps raw string values as entered; Payload converts them into
// wire types, which is the only place form-to-payload coercion happens.
package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

// dueDateLayout matches the HTML datetime-local value shape the task form
// accepts: local wall-clock time without a zone.
const dueDateLayout = "2006-01-02T15:04"

type EmployeeForm struct {
	Name  string
	Email string
	Role  string
}

func (f *EmployeeForm) Reset() {
	*f = EmployeeForm{}
}

func (f *EmployeeForm) Payload() models.NewEmployee {
	return models.NewEmployee{
		Name:  strings.TrimSpace(f.Name),
		Email: strings.TrimSpace(f.Email),
		Role:  strings.TrimSpace(f.Role),
	}
}

type TaskForm struct {
	Title       string
	Description string
	Status      string
	DueDate     string
	EmployeeID  string
}

func NewTaskForm() TaskForm {
	return TaskForm{Status: string(models.StatusTodo)}
}

// Reset restores the initial schema, including the TODO default status.
func (f *TaskForm) Reset() {
	*f = NewTaskForm()
}

// Payload coerces the raw form values into the creation payload.
//
// An empty employee id becomes an absent reference, never 0 or "": the
// backend treats absence as "unassigned" and any other falsy value as a
// malformed reference. An empty due date becomes absent; a non-empty one is
// interpreted as local wall-clock time and normalized to UTC.
func (f *TaskForm) Payload() (models.NewTask, error) {
	payload := models.NewTask{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Status:      models.TaskStatus(f.Status),
	}

	if v := strings.TrimSpace(f.EmployeeID); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return models.NewTask{}, fmt.Errorf("invalid employee id %q: %w", v, err)
		}
		payload.EmployeeID = &id
	}

	if v := strings.TrimSpace(f.DueDate); v != "" {
		due, err := parseDueDate(v)
		if err != nil {
			return models.NewTask{}, err
		}
		payload.DueDate = &due
	}

	return payload, nil
}

func parseDueDate(v string) (time.Time, error) {
	for _, layout := range []string{dueDateLayout, dueDateLayout + ":05", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid due date %q", v)
}

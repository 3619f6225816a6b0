package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

func (a *App) ListTasks(ctx context.Context) error {
	renderTasks(os.Stdout, a.sync.Tasks())
	return nil
}

// AddTask fills the task form from prompts and submits it. Only the title
// is required; status defaults to TODO, and the due date and employee id
// may be left blank (they are sent as absent, not as zero values).
func (a *App) AddTask(ctx context.Context) error {
	title, err := getRequiredText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	status, err := getSimpleText(a.reader, "Status [TODO/IN_PROGRESS/DONE] (default TODO)", os.Stdout)
	if err != nil {
		return err
	}
	if status == "" {
		status = string(models.StatusTodo)
	}
	if !models.ValidStatus(models.TaskStatus(status)) {
		printlnFn("Unknown status:", status)
		return nil
	}
	dueDate, err := getSimpleText(a.reader, "Due date, e.g. 2024-01-01T10:00 (optional)", os.Stdout)
	if err != nil {
		return err
	}
	employeeID, err := getSimpleText(a.reader, "Employee id (optional)", os.Stdout)
	if err != nil {
		return err
	}

	a.taskForm.Title = title
	a.taskForm.Description = description
	a.taskForm.Status = status
	a.taskForm.DueDate = dueDate
	a.taskForm.EmployeeID = employeeID

	if err := a.sync.CreateTask(ctx, &a.taskForm); err != nil {
		printlnFn("Error adding task:", err.Error())
		return err
	}
	printlnFn("Task added.")
	return nil
}

func (a *App) DeleteTask(ctx context.Context) error {
	id, err := getID(a.reader, "Task id to delete", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.sync.RemoveTask(ctx, id); err != nil {
		printlnFn("Error deleting task:", err.Error())
		return err
	}
	printlnFn("Task deleted.")
	return nil
}

func (a *App) MarkDone(ctx context.Context) error {
	id, err := getID(a.reader, "Task id to mark done", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.sync.UpdateTaskStatus(ctx, id, models.StatusDone); err != nil {
		printlnFn("Error updating task:", err.Error())
		return err
	}
	printlnFn("Task marked done.")
	return nil
}

func (a *App) ShowTask(ctx context.Context) error {
	id, err := getID(a.reader, "Task id to show", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	task, err := a.sync.GetTask(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	renderTaskDetails(os.Stdout, task)
	return nil
}

// Reload refetches both collections on demand with the ambient token.
func (a *App) Reload(ctx context.Context) error {
	_ = a.sync.LoadEmployees(ctx)
	_ = a.sync.LoadTasks(ctx)
	return nil
}

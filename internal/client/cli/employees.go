package cli

import (
	"context"
	"os"
)

func (a *App) ListEmployees(ctx context.Context) error {
	renderEmployees(os.Stdout, a.sync.Employees())
	return nil
}

// AddEmployee fills the employee form from required prompts and submits it.
// The form is reset by the synchronizer as part of the submission.
func (a *App) AddEmployee(ctx context.Context) error {
	name, err := getRequiredText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getRequiredText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getRequiredText(a.reader, "Role", os.Stdout)
	if err != nil {
		return err
	}

	a.empForm.Name = name
	a.empForm.Email = email
	a.empForm.Role = role

	if err := a.sync.CreateEmployee(ctx, &a.empForm); err != nil {
		printlnFn("Error adding employee:", err.Error())
		return err
	}
	printlnFn("Employee added.")
	return nil
}

func (a *App) DeleteEmployee(ctx context.Context) error {
	id, err := getID(a.reader, "Employee id to delete", os.Stdout)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := a.sync.RemoveEmployee(ctx, id); err != nil {
		printlnFn("Error deleting employee:", err.Error())
		return err
	}
	printlnFn("Employee deleted.")
	return nil
}

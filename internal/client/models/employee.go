// Package models defines the wire types exchanged with the task manager
// backend. Optional fields are pointers with omitempty so that "absent" and
// "zero" never collide on the wire.
package models

import "time"

type Employee struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Tasks     []TaskRef  `json:"tasks,omitempty"`
}

// TaskRef is the task summary the backend embeds into an Employee.
type TaskRef struct {
	ID     int64      `json:"id"`
	Title  string     `json:"title"`
	Status TaskStatus `json:"status"`
}

// NewEmployee is the creation payload; the id is assigned by the backend.
type NewEmployee struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// EmployeeUpdate is a partial update: nil fields are left untouched.
type EmployeeUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

package api

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/client/models"
)

// Client is the request side of the task manager backend contract.
//
// Every method except Login and Register takes the bearer token explicitly;
// callers decide whether to pass the ambient session token or a freshly
// obtained one (the post-login initial load does the latter).
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error

	ListEmployees(ctx context.Context, token string) ([]models.Employee, error)
	GetEmployee(ctx context.Context, token string, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, token string, payload models.NewEmployee) error
	UpdateEmployee(ctx context.Context, token string, id int64, payload models.EmployeeUpdate) error
	DeleteEmployee(ctx context.Context, token string, id int64) error

	ListTasks(ctx context.Context, token string) ([]models.Task, error)
	GetTask(ctx context.Context, token string, id int64) (*models.Task, error)
	CreateTask(ctx context.Context, token string, payload models.NewTask) error
	UpdateTask(ctx context.Context, token string, id int64, payload models.TaskUpdate) error
	DeleteTask(ctx context.Context, token string, id int64) error
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/forms"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/session"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// SyncService is the collection synchronizer. It is the sole owner of the
// two in-memory collections; every mutation runs through mutateThenSync,
// which reloads the affected collection(s) after the mutating call settles,
// success or failure alike. The backend stays the single source of truth:
// snapshots are replaced wholesale, never patched.
type SyncService interface {
	Employees() []models.Employee
	Tasks() []models.Task

	LoadAll(ctx context.Context, token string) error
	LoadEmployees(ctx context.Context) error
	LoadTasks(ctx context.Context) error

	CreateEmployee(ctx context.Context, form *forms.EmployeeForm) error
	RemoveEmployee(ctx context.Context, id int64) error

	CreateTask(ctx context.Context, form *forms.TaskForm) error
	RemoveTask(ctx context.Context, id int64) error
	UpdateTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error
	GetTask(ctx context.Context, id int64) (*models.Task, error)
}

type syncService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger

	employees []models.Employee
	tasks     []models.Task
}

func NewSyncService(client api.Client, sess *session.Session, log logging.Logger) SyncService {
	return &syncService{client: client, session: sess, log: log}
}

// Employees returns the last fetched employee snapshot.
func (s *syncService) Employees() []models.Employee {
	return s.employees
}

// Tasks returns the last fetched task snapshot.
func (s *syncService) Tasks() []models.Task {
	return s.tasks
}

// LoadAll populates both collections using the explicitly supplied token.
// It is meant for the initial load right after login, where reading the
// token back from session state would be a read-after-write.
func (s *syncService) LoadAll(ctx context.Context, token string) error {
	return errors.Join(
		s.loadEmployees(ctx, token),
		s.loadTasks(ctx, token),
	)
}

func (s *syncService) LoadEmployees(ctx context.Context) error {
	return s.loadEmployees(ctx, s.session.Token())
}

func (s *syncService) LoadTasks(ctx context.Context) error {
	return s.loadTasks(ctx, s.session.Token())
}

// loadEmployees replaces the employee snapshot with a fresh read. On any
// failure the previous snapshot is kept (stale-but-available policy) and
// the failure is only logged.
func (s *syncService) loadEmployees(ctx context.Context, token string) error {
	employees, err := s.client.ListEmployees(ctx, token)
	if err != nil {
		s.logLoadFailure(ctx, "employees", err)
		return fmt.Errorf("loading employees: %w", err)
	}
	s.employees = employees
	return nil
}

func (s *syncService) loadTasks(ctx context.Context, token string) error {
	tasks, err := s.client.ListTasks(ctx, token)
	if err != nil {
		s.logLoadFailure(ctx, "tasks", err)
		return fmt.Errorf("loading tasks: %w", err)
	}
	s.tasks = tasks
	return nil
}

func (s *syncService) logLoadFailure(ctx context.Context, collection string, err error) {
	if errors.Is(err, api.ErrSessionExpired) {
		s.log.Warn(ctx, "session expired", "collection", collection)
		return
	}
	s.log.Error(ctx, "loading collection failed, keeping previous snapshot",
		"collection", collection, "error", err)
}

func (s *syncService) CreateEmployee(ctx context.Context, form *forms.EmployeeForm) error {
	payload := form.Payload()
	defer form.Reset()

	return s.mutateThenSync(ctx, "create employee", func(token string) error {
		return s.client.CreateEmployee(ctx, token, payload)
	}, s.loadEmployees)
}

// RemoveEmployee reloads both collections: deleting an employee may change
// which tasks carry a denormalized employee embed.
func (s *syncService) RemoveEmployee(ctx context.Context, id int64) error {
	return s.mutateThenSync(ctx, "delete employee", func(token string) error {
		return s.client.DeleteEmployee(ctx, token, id)
	}, s.loadEmployees, s.loadTasks)
}

func (s *syncService) CreateTask(ctx context.Context, form *forms.TaskForm) error {
	payload, err := form.Payload()
	if err != nil {
		// Coercion failed before anything was sent: no mutation happened,
		// so there is nothing to refetch and the form keeps its values.
		return err
	}
	defer form.Reset()

	return s.mutateThenSync(ctx, "create task", func(token string) error {
		return s.client.CreateTask(ctx, token, payload)
	}, s.loadTasks)
}

func (s *syncService) RemoveTask(ctx context.Context, id int64) error {
	return s.mutateThenSync(ctx, "delete task", func(token string) error {
		return s.client.DeleteTask(ctx, token, id)
	}, s.loadTasks)
}

// UpdateTaskStatus sends a partial update carrying only the status field.
func (s *syncService) UpdateTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	return s.mutateThenSync(ctx, "update task status", func(token string) error {
		return s.client.UpdateTask(ctx, token, id, models.TaskUpdate{Status: &status})
	}, s.loadTasks)
}

func (s *syncService) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := s.client.GetTask(ctx, s.session.Token(), id)
	if err != nil {
		return nil, fmt.Errorf("fetching task: %w", err)
	}
	return task, nil
}

// mutateThenSync is the single implementation of the refetch-after-mutation
// protocol: run the mutating call with the ambient session token, then
// reload every affected collection regardless of the mutation's outcome.
// The mutation error, if any, is returned for the caller to report; reload
// failures are logged by the loaders themselves.
func (s *syncService) mutateThenSync(ctx context.Context, op string,
	mutate func(token string) error,
	reloads ...func(ctx context.Context, token string) error) error {

	token := s.session.Token()

	err := mutate(token)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			s.log.Warn(ctx, "session expired", "op", op)
		} else {
			s.log.Error(ctx, "mutation failed, refetching anyway", "op", op, "error", err)
		}
	}

	for _, reload := range reloads {
		_ = reload(ctx, token)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/forms"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/session"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

// fakeClient implements api.Client and records every call with the token it
// was given, so tests can assert ordering and header-token usage.
type fakeClient struct {
	calls  []string
	tokens []string

	loginToken    string
	loginErr      error
	lastLoginUser string
	lastLoginPass string

	registerErr error

	employees  []models.Employee
	listEmpErr error

	tasks        []models.Task
	listTasksErr error

	createEmpErr    error
	lastNewEmployee models.NewEmployee

	deleteEmpErr        error
	lastDeletedEmployee int64

	createTaskErr error
	lastNewTask   models.NewTask

	deleteTaskErr   error
	lastDeletedTask int64

	updateTaskErr   error
	lastUpdatedTask int64
	lastTaskUpdate  models.TaskUpdate

	getTaskRet *models.Task
	getTaskErr error
}

func (f *fakeClient) record(call, token string) {
	f.calls = append(f.calls, call)
	f.tokens = append(f.tokens, token)
}

func (f *fakeClient) Login(_ context.Context, username, password string) (string, error) {
	f.record("Login", "")
	f.lastLoginUser, f.lastLoginPass = username, password
	return f.loginToken, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, username, password string) error {
	f.record("Register", "")
	return f.registerErr
}

func (f *fakeClient) ListEmployees(_ context.Context, token string) ([]models.Employee, error) {
	f.record("ListEmployees", token)
	if f.listEmpErr != nil {
		return nil, f.listEmpErr
	}
	return append([]models.Employee(nil), f.employees...), nil
}

func (f *fakeClient) GetEmployee(_ context.Context, token string, id int64) (*models.Employee, error) {
	f.record("GetEmployee", token)
	return nil, errors.New("not used")
}

func (f *fakeClient) CreateEmployee(_ context.Context, token string, payload models.NewEmployee) error {
	f.record("CreateEmployee", token)
	f.lastNewEmployee = payload
	return f.createEmpErr
}

func (f *fakeClient) UpdateEmployee(_ context.Context, token string, id int64, payload models.EmployeeUpdate) error {
	f.record("UpdateEmployee", token)
	return nil
}

func (f *fakeClient) DeleteEmployee(_ context.Context, token string, id int64) error {
	f.record("DeleteEmployee", token)
	f.lastDeletedEmployee = id
	return f.deleteEmpErr
}

func (f *fakeClient) ListTasks(_ context.Context, token string) ([]models.Task, error) {
	f.record("ListTasks", token)
	if f.listTasksErr != nil {
		return nil, f.listTasksErr
	}
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeClient) GetTask(_ context.Context, token string, id int64) (*models.Task, error) {
	f.record("GetTask", token)
	return f.getTaskRet, f.getTaskErr
}

func (f *fakeClient) CreateTask(_ context.Context, token string, payload models.NewTask) error {
	f.record("CreateTask", token)
	f.lastNewTask = payload
	return f.createTaskErr
}

func (f *fakeClient) UpdateTask(_ context.Context, token string, id int64, payload models.TaskUpdate) error {
	f.record("UpdateTask", token)
	f.lastUpdatedTask = id
	f.lastTaskUpdate = payload
	return f.updateTaskErr
}

func (f *fakeClient) DeleteTask(_ context.Context, token string, id int64) error {
	f.record("DeleteTask", token)
	f.lastDeletedTask = id
	return f.deleteTaskErr
}

func newSyncFixture(f *fakeClient) (SyncService, *session.Session) {
	sess := session.New()
	return NewSyncService(f, sess, testLogger()), sess
}

func TestLoadAll_UsesExplicitToken(t *testing.T) {
	f := &fakeClient{
		employees: []models.Employee{{ID: 1, Name: "Bob"}},
		tasks:     []models.Task{{ID: 3, Title: "Ship it", Status: models.StatusTodo}},
	}
	s, sess := newSyncFixture(f)

	// session deliberately left Anonymous: the explicit token must win
	require.NoError(t, s.LoadAll(context.Background(), "tok1"))

	assert.Equal(t, []string{"ListEmployees", "ListTasks"}, f.calls)
	assert.Equal(t, []string{"tok1", "tok1"}, f.tokens)
	assert.Len(t, s.Employees(), 1)
	assert.Len(t, s.Tasks(), 1)
	assert.False(t, sess.IsAuthenticated())
}

func TestLoad_ReplacesSnapshotWholesale(t *testing.T) {
	f := &fakeClient{employees: []models.Employee{{ID: 1, Name: "Bob"}}}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.LoadEmployees(context.Background()))
	require.Len(t, s.Employees(), 1)

	f.employees = []models.Employee{{ID: 2, Name: "Carol"}, {ID: 3, Name: "Dave"}}
	require.NoError(t, s.LoadEmployees(context.Background()))

	got := s.Employees()
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestLoad_IsIdempotent(t *testing.T) {
	f := &fakeClient{tasks: []models.Task{{ID: 3, Title: "Ship it", Status: models.StatusTodo}}}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.LoadTasks(context.Background()))
	first := s.Tasks()
	require.NoError(t, s.LoadTasks(context.Background()))
	assert.Equal(t, first, s.Tasks())
}

func TestLoad_ToleratesEmptyCollection(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.LoadEmployees(context.Background()))
	assert.Empty(t, s.Employees())
}

func TestLoad_FailureKeepsPreviousSnapshot(t *testing.T) {
	f := &fakeClient{employees: []models.Employee{{ID: 1, Name: "Bob"}}}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.LoadEmployees(context.Background()))
	require.Len(t, s.Employees(), 1)

	f.listEmpErr = errors.New("boom")
	err := s.LoadEmployees(context.Background())
	require.Error(t, err)

	assert.Len(t, s.Employees(), 1, "stale snapshot must survive a failed load")
}

func TestCreateEmployee_MutatesThenReloadsAndResetsForm(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	form := &forms.EmployeeForm{Name: "Bob", Email: "bob@x.com", Role: "Eng"}
	require.NoError(t, s.CreateEmployee(context.Background(), form))

	assert.Equal(t, []string{"CreateEmployee", "ListEmployees"}, f.calls)
	assert.Equal(t, models.NewEmployee{Name: "Bob", Email: "bob@x.com", Role: "Eng"}, f.lastNewEmployee)
	assert.Equal(t, forms.EmployeeForm{}, *form)
}

func TestCreateEmployee_FailureStillReloadsAndResets(t *testing.T) {
	f := &fakeClient{createEmpErr: errors.New("boom")}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	form := &forms.EmployeeForm{Name: "Bob", Email: "bob@x.com", Role: "Eng"}
	err := s.CreateEmployee(context.Background(), form)
	require.Error(t, err)

	assert.Equal(t, []string{"CreateEmployee", "ListEmployees"}, f.calls,
		"refetch must run even when the mutation fails")
	assert.Equal(t, forms.EmployeeForm{}, *form)
}

func TestRemoveEmployee_ReloadsBothCollections(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.RemoveEmployee(context.Background(), 7))

	assert.Equal(t, int64(7), f.lastDeletedEmployee)
	assert.Equal(t, []string{"DeleteEmployee", "ListEmployees", "ListTasks"}, f.calls)
}

func TestRemoveTask_ReloadsTasksOnly(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.RemoveTask(context.Background(), 3))

	assert.Equal(t, int64(3), f.lastDeletedTask)
	assert.Equal(t, []string{"DeleteTask", "ListTasks"}, f.calls)
}

func TestUpdateTaskStatus_SendsStatusOnlyPayload(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	require.NoError(t, s.UpdateTaskStatus(context.Background(), 3, models.StatusDone))

	assert.Equal(t, int64(3), f.lastUpdatedTask)
	assert.Equal(t, []string{"UpdateTask", "ListTasks"}, f.calls)

	b, err := json.Marshal(f.lastTaskUpdate)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"DONE"}`, string(b))
}

func TestCreateTask_CoercionErrorSkipsNetworkAndKeepsForm(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	form := forms.NewTaskForm()
	form.Title = "Ship it"
	form.EmployeeID = "seven"

	err := s.CreateTask(context.Background(), &form)
	require.Error(t, err)

	assert.Empty(t, f.calls, "nothing must be sent when coercion fails")
	assert.Equal(t, "Ship it", form.Title, "form keeps its values for correction")
}

func TestCreateTask_CoercesAndResets(t *testing.T) {
	f := &fakeClient{}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	form := forms.NewTaskForm()
	form.Title = "Ship it"
	form.EmployeeID = "7"
	form.DueDate = "2024-01-01T10:00"

	require.NoError(t, s.CreateTask(context.Background(), &form))

	assert.Equal(t, []string{"CreateTask", "ListTasks"}, f.calls)
	require.NotNil(t, f.lastNewTask.EmployeeID)
	assert.Equal(t, int64(7), *f.lastNewTask.EmployeeID)
	require.NotNil(t, f.lastNewTask.DueDate)
	assert.Equal(t, forms.NewTaskForm(), form)
}

func TestMutate_SessionExpiredStillRefetches(t *testing.T) {
	f := &fakeClient{deleteTaskErr: api.ErrSessionExpired}
	s, sess := newSyncFixture(f)
	sess.SetToken("tok1")

	err := s.RemoveTask(context.Background(), 3)
	require.ErrorIs(t, err, api.ErrSessionExpired)

	assert.Equal(t, []string{"DeleteTask", "ListTasks"}, f.calls)
	assert.True(t, sess.IsAuthenticated(), "expired token must not flip the session state")
}

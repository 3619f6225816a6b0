package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/forms"
	"github.com/dmitrijs2005/taskboard/internal/client/services"
	"github.com/dmitrijs2005/taskboard/internal/client/session"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// App wires the session, the services, and the two creation forms behind
// the interactive command loop.
type App struct {
	config  *config.Config
	session *session.Session
	auth    services.AuthService
	sync    services.SyncService
	log     logging.Logger

	empForm  forms.EmployeeForm
	taskForm forms.TaskForm

	userName    string
	loginStatus string

	reader *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout)
	sess := session.New()

	return &App{
		config:   cfg,
		session:  sess,
		auth:     services.NewAuthService(apiClient, sess, log),
		sync:     services.NewSyncService(apiClient, sess, log),
		log:      log,
		taskForm: forms.NewTaskForm(),
		reader:   bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Taskboard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

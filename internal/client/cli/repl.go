package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	ListEmployees(ctx context.Context) error
	ListTasks(ctx context.Context) error
	AddEmployee(ctx context.Context) error
	AddTask(ctx context.Context) error
	DeleteEmployee(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	MarkDone(ctx context.Context) error
	ShowTask(ctx context.Context) error
	Reload(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the taskboard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Data commands are gated on the session: while Anonymous, only register,
// login, help, and exit are available, so stale collections are never
// rendered after a logout.
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tb> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: employees, tasks, addemp, addtask, delemp, deltask, done, show, reload, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "employees", "tasks", "addemp", "addtask", "delemp", "deltask", "done", "show", "reload", "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in. Type 'login' first.")
				continue
			}
			switch cmd {
			case "employees":
				_ = a.ListEmployees(ctx)
			case "tasks":
				_ = a.ListTasks(ctx)
			case "addemp":
				_ = a.AddEmployee(ctx)
			case "addtask":
				_ = a.AddTask(ctx)
			case "delemp":
				_ = a.DeleteEmployee(ctx)
			case "deltask":
				_ = a.DeleteTask(ctx)
			case "done":
				_ = a.MarkDone(ctx)
			case "show":
				_ = a.ShowTask(ctx)
			case "reload":
				_ = a.Reload(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

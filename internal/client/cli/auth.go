package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
)

// getSimpleText, getRequiredText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getRequiredText = GetRequiredText
	getPassword     = GetPassword
	getID           = GetID
)

// Login prompts for credentials and tries to authenticate.
//
// On success the session becomes Authenticated and both collections are
// loaded with the freshly issued token, passed explicitly rather than read
// back from session state. On a rejected login the session stays Anonymous,
// no collections are loaded, and the user sees "Login failed.".
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	token, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.loginStatus = "Login failed."
		} else {
			a.loginStatus = "Error: " + err.Error()
		}
		printlnFn(a.loginStatus)
		return err
	}

	a.userName = userName
	a.loginStatus = "Login successful!"
	printlnFn(a.loginStatus)

	_ = a.sync.LoadAll(ctx, token)
	return nil
}

// Register prompts for a username and password and attempts to create a new
// account. Registering does not log the user in.
func (a *App) Register(ctx context.Context) error {
	userName, err := getRequiredText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.auth.Register(ctx, userName, string(password)); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Success!")
	return nil
}

// Logout clears the token and the transient login state. Purely local: the
// collections keep their last snapshot in memory, but the REPL's login gate
// prevents them from being rendered.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout()
	a.userName = ""
	a.loginStatus = ""
	printlnFn("Logged out.")
	return nil
}

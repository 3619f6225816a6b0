// Package services contains the application services of the taskboard
// client: authentication and collection synchronization over the api.Client.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/session"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// AuthService drives the session lifecycle.
//
// Contract:
//   - Login: authenticate and transition the session to Authenticated.
//     On failure the session is left untouched (a failed login never
//     changes state).
//   - Register: create a new account; does not log in.
//   - Logout: clear the session locally, no endpoint involved.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password string) error
	Logout()
}

type authService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger
}

func NewAuthService(client api.Client, sess *session.Session, log logging.Logger) AuthService {
	return &authService{client: client, session: sess, log: log}
}

// Login returns the issued token in addition to storing it in the session,
// so the caller can run the initial collection load with the explicit token
// instead of reading it back from session state.
func (a *authService) Login(ctx context.Context, username, password string) (string, error) {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	a.session.SetToken(token)
	a.log.Info(ctx, "session authenticated", "username", username)
	return token, nil
}

func (a *authService) Register(ctx context.Context, username, password string) error {
	if err := a.client.Register(ctx, username, password); err != nil {
		return fmt.Errorf("register error: %w", err)
	}
	return nil
}

func (a *authService) Logout() {
	a.session.Clear()
}

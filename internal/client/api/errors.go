package api

import "errors"

var (
	// ErrUnavailable marks transport-level failures: the request never
	// produced an HTTP response.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned when the login endpoint rejects the
	// supplied credentials.
	ErrUnauthorized = errors.New("login failed")

	// ErrSessionExpired is returned when an authenticated call comes back
	// with 401, i.e. the held token is no longer accepted.
	ErrSessionExpired = errors.New("session expired")
)

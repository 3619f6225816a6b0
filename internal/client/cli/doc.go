// Package cli implements the interactive command loop of the taskboard
// client: a login-gated REPL over the auth and sync services, with prompt
// helpers for form input and tabular rendering of the two collections.
package cli

// Package api defines the request side of the task manager backend contract:
// a Client interface consumed by the service layer and an HTTP implementation
// speaking the backend's REST surface with bearer authentication.
package api

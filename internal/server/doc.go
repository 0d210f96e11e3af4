// Package server runs the HTTP transport of the trip planner.
//
// It owns the http.Server lifecycle: startup, SIGINT/SIGTERM/SIGQUIT
// handling and graceful shutdown bounded by the configured timeout.
package server

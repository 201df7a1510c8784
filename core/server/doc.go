// Package server holds the HTTP server configuration.
//
// The main application entry point (cmd/start.go) builds the Fiber app; this
// package only defines the settings it reads: listen port, the optional API
// key, CORS origins and the directory holding the landing page.
//
// # Usage
//
// This package is embedded by core/config and consumed by the start command
// and the landing feature.
package server

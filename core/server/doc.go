// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application lifecycle; this package only
// defines and validates the settings it reads (listen port, API key, body limit).
package server

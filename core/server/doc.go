// Package server holds the HTTP server configuration.
//
// While the cmd package handles server startup, this package defines the
// settings the server and the error handler depend on: listen port, API key,
// body limit and the deployment environment. Development mode makes error
// responses carry raw error text and stack traces.
//
// NewApp builds the Fiber application from these settings, with
// goccy/go-json as the JSON codec.
package server

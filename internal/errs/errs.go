// Package errs defines the error shapes the API returns to clients.
//
// Handlers and services return *HTTPError values; the global error handler
// serializes them as JSON so every failure path produces the same payload.
package errs

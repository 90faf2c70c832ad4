// Package http contains the HTTP handlers for the FlightPulse API.
//
// Handlers are thin adapters: they parse and validate query parameters,
// delegate to the analytics service, and encode responses. All errors are
// reported as RFC 7807 problem details through the central error handler.
// Analytics endpoints return JSON, chart endpoints return self-contained
// HTML pages, and report endpoints manage the exported files on disk.
package http

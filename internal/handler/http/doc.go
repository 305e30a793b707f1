// Package http implements the HTTP transport layer of the admin API.
//
// It exposes route wiring, request handlers and middleware. Tracing, access
// logging, metrics, panic recovery and token authentication run here before
// requests are delegated to the service layer. Every response body is a
// [models.Result] envelope.
package http

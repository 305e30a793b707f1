// Package server runs the admin API's HTTP server.
//
// It covers startup, signal handling and graceful shutdown bounded by the
// configured shutdown timeout.
package server

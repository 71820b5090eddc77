// Package server holds configuration for the read-only reporting HTTP server.
package server

// Package cli wires the drawfetch commands: a one-shot result check for
// terminal use and the long-running HTTP server.
package cli

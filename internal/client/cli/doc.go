// Package cli provides the interactive ESS command-line client.
//
// It wires configuration, the local store, the backend client and the
// feature services into a REPL. On start it restores the stored session and
// decides where to go: onboarding on first run, the login prompt when no
// session is stored, the dashboard otherwise. While logged in a background
// poller keeps the HR chat up to date and prints a notification when HR
// writes.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli

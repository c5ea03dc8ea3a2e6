// Package pathcmd implements bulk path operations for the CLI.
//
// It wraps [pathfs.PathFS] with a concurrent resolver that emits progress
// events, so that frontends (TUI or plain logging) can subscribe to the same
// work without coupling to its implementation.
package pathcmd

// Package syncs provides synchronization primitives and utilities.
//
// This package implements concurrency control mechanisms used by pathfs to
// serialize destructive filesystem operations on the same path while letting
// unrelated paths proceed concurrently.
package syncs

// Package fsys abstracts the host filesystem behind a small interface.
//
// The [FileSystem] interface carries OS-native semantics and is implemented
// by [OS] for real use and [Mock] for tests. Errors from the underlying
// filesystem are propagated unmodified; nothing here wraps, retries, or
// classifies them.
package fsys

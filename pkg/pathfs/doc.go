// Package pathfs provides filesystem operations on purepath values.
//
// Every operation is a thin pass-through to a [fsys.FileSystem]
// collaborator; filesystem errors surface to the caller unmodified. Path
// values are immutable, so the destructive operations (Rename, Replace,
// Resolve) return a new value for the post-operation location instead of
// mutating their receiver. Destructive operations on the same path are
// serialized internally; no other synchronization is provided or required.
package pathfs

// Package purepath models filesystem paths as immutable string-backed values.
//
// A [Path] is fully determined by its raw string and flavor. All derived views
// (drive, root, parts, name, stem, suffixes) are computed on demand and never
// cached, and every operation returns a new value. Nothing in this package
// touches the filesystem; see pathfs for operations that do.
package purepath

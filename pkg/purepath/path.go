package purepath

import (
	"errors"
	"fmt"
)

var (
	// ErrNoName indicates the path has no final component to derive from.
	ErrNoName = errors.New("path has no name")

	// ErrInvalidName indicates a replacement name is empty or contains a separator.
	ErrInvalidName = errors.New("invalid name")

	// ErrNotAncestor indicates the argument is not an ancestor of the path.
	ErrNotAncestor = errors.New("not an ancestor")

	// ErrNotAbsolute indicates an absolute path was required.
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrNoPaths indicates an operation was called without any paths.
	ErrNoPaths = errors.New("no paths provided")
)

// Path is an immutable path value: a raw string plus the [Flavor] it was
// constructed with. Two values are equal exactly when their raw strings are
// equal; no normalization is applied, so differently-spelled but
// filesystem-equivalent paths compare unequal.
type Path struct {
	raw    string
	flavor Flavor
}

// New creates a Path using the host's native flavor.
func New(raw string) Path {
	return NewFlavored(Native(), raw)
}

// NewPosix creates a Posix-flavored Path.
func NewPosix(raw string) Path {
	return NewFlavored(Posix, raw)
}

// NewWindows creates a Windows-flavored Path.
func NewWindows(raw string) Path {
	return NewFlavored(Windows, raw)
}

// NewFlavored creates a Path with an explicit flavor.
func NewFlavored(f Flavor, raw string) Path {
	return Path{raw: raw, flavor: f}
}

// PurePath is a compatibility alias for [New].
func PurePath(raw string) Path { return New(raw) }

// PosixPath is a compatibility alias for [NewPosix].
func PosixPath(raw string) Path { return NewPosix(raw) }

// WindowsPath is a compatibility alias for [NewWindows].
func WindowsPath(raw string) Path { return NewWindows(raw) }

// String returns the raw path string exactly as constructed.
func (p Path) String() string {
	return p.raw
}

// Flavor returns the flavor the path was constructed with.
func (p Path) Flavor() Flavor {
	return p.flavor
}

// Equal reports raw string equality, ignoring flavor.
func (p Path) Equal(other Path) bool {
	return p.raw == other.raw
}

// IsAbs reports whether the path is anchored at a root.
func (p Path) IsAbs() bool {
	return p.Root() != ""
}

// AsPosix returns the path with backslashes replaced by forward slashes.
// Posix-flavored paths are returned unchanged. This is a best-effort string
// rewrite, not a reparse, and is idempotent.
func (p Path) AsPosix() Path {
	if p.flavor == Posix {
		return p
	}

	raw := make([]byte, len(p.raw))

	for i := 0; i < len(p.raw); i++ {
		if p.raw[i] == '\\' {
			raw[i] = '/'
		} else {
			raw[i] = p.raw[i]
		}
	}

	return Path{raw: string(raw), flavor: Posix}
}

// AsURI renders an absolute path as a file URI by prefixing the raw string.
func (p Path) AsURI() (string, error) {
	if !p.IsAbs() {
		return "", fmt.Errorf("%w: %q", ErrNotAbsolute, p.raw)
	}

	return "file://" + p.raw, nil
}

// IsReserved reports whether the path uses a Windows reserved device name.
// Reserved-name checking is intentionally unimplemented; it always returns
// false.
func (p Path) IsReserved() bool {
	return false
}

package purepath

import "runtime"

// Flavor selects the separator and drive rules used to interpret a path
// string. It is resolved at construction and carried by every [Path] value,
// so Posix and Windows behavior differ for real rather than by build tag.
type Flavor int

const (
	// Posix paths use '/' and have no drive concept.
	Posix Flavor = iota
	// Windows paths accept '/' and '\', and recognize "X:" and UNC drives.
	Windows
)

// Native returns the flavor matching the host operating system.
func Native() Flavor {
	if runtime.GOOS == "windows" {
		return Windows
	}

	return Posix
}

// Separator returns the flavor's canonical separator.
func (f Flavor) Separator() string {
	if f == Windows {
		return `\`
	}

	return "/"
}

func (f Flavor) String() string {
	if f == Windows {
		return "windows"
	}

	return "posix"
}

// isSep reports whether c acts as a separator under this flavor.
// Windows inputs may mix '/' and '\'.
func (f Flavor) isSep(c byte) bool {
	return c == '/' || (f == Windows && c == '\\')
}

func (f Flavor) lastSep(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if f.isSep(s[i]) {
			return i
		}
	}

	return -1
}

// splitSeps splits s on separators into at most n parts, like
// [strings.SplitN] but accepting either separator byte under Windows.
func (f Flavor) splitSeps(s string, n int) []string {
	var parts []string

	start := 0

	for i := 0; i < len(s) && len(parts) < n-1; i++ {
		if f.isSep(s[i]) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}

	return append(parts, s[start:])
}

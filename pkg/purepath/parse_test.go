package purepath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/pathlib/pkg/purepath"
)

func TestDrive(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path  purepath.Path
		drive string
	}{
		"letter drive": {
			path:  purepath.NewWindows(`C:\Users\adam`),
			drive: "C:",
		},
		"letter drive without root": {
			path:  purepath.NewWindows("C:config"),
			drive: "C:",
		},
		"unc drive": {
			path:  purepath.NewWindows(`\\host\share\dir\f.txt`),
			drive: `\\host\share`,
		},
		"unc drive with forward slashes": {
			path:  purepath.NewWindows("//host/share/x"),
			drive: `\\host\share`,
		},
		"unc prefix with a single part": {
			path:  purepath.NewWindows(`\\host`),
			drive: "",
		},
		"no drive": {
			path:  purepath.NewWindows(`\Users\adam`),
			drive: "",
		},
		"posix flavor has no drives": {
			path:  purepath.NewPosix("/home/adam"),
			drive: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.drive, tc.path.Drive())
		})
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path purepath.Path
		root string
	}{
		"posix absolute": {
			path: purepath.NewPosix("/home/adam"),
			root: "/",
		},
		"posix relative": {
			path: purepath.NewPosix("home/adam"),
			root: "",
		},
		"windows drive rooted": {
			path: purepath.NewWindows(`C:\x`),
			root: `\`,
		},
		"windows drive rooted with forward slash": {
			path: purepath.NewWindows("C:/x"),
			root: `\`,
		},
		"windows drive relative": {
			path: purepath.NewWindows("C:x"),
			root: "",
		},
		"windows separator rooted without drive": {
			path: purepath.NewWindows(`\x`),
			root: `\`,
		},
		"windows unc": {
			path: purepath.NewWindows(`\\host\share\x`),
			root: `\`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.root, tc.path.Root())
		})
	}
}

func TestNameStemSuffix(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path   purepath.Path
		name   string
		stem   string
		suffix string
	}{
		"simple extension": {
			path:   purepath.NewPosix("code/example.nim"),
			name:   "example.nim",
			stem:   "example",
			suffix: ".nim",
		},
		"multiple extensions": {
			path:   purepath.NewPosix("archive.tar.gz"),
			name:   "archive.tar.gz",
			stem:   "archive.tar",
			suffix: ".gz",
		},
		"no extension": {
			path:   purepath.NewPosix("noext"),
			name:   "noext",
			stem:   "noext",
			suffix: "",
		},
		// Generic split behavior, not Unix dotfile semantics: the whole
		// name is the suffix and the stem is empty.
		"dotfile": {
			path:   purepath.NewPosix(".gitignore"),
			name:   ".gitignore",
			stem:   "",
			suffix: ".gitignore",
		},
		"trailing dot": {
			path:   purepath.NewPosix("a."),
			name:   "a.",
			stem:   "a.",
			suffix: "",
		},
		"root only": {
			path:   purepath.NewPosix("/"),
			name:   "",
			stem:   "",
			suffix: "",
		},
		"trailing separator": {
			path:   purepath.NewPosix("/home/adam/"),
			name:   "",
			stem:   "",
			suffix: "",
		},
		"drive only": {
			path:   purepath.NewWindows("C:"),
			name:   "",
			stem:   "",
			suffix: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.name, tc.path.Name())
			assert.Equal(t, tc.stem, tc.path.Stem())
			assert.Equal(t, tc.suffix, tc.path.Suffix())
		})
	}
}

func TestSuffixes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".tar", ".gz"},
		purepath.NewPosix("archive.tar.gz").Suffixes())
	assert.Empty(t, purepath.NewPosix("noext").Suffixes())
	assert.Equal(t, []string{".gitignore"},
		purepath.NewPosix(".gitignore").Suffixes())
	assert.Equal(t, []string{".nim"},
		purepath.NewPosix("/home/adam/nim/code.nim").Suffixes())
}

func TestParts(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path  purepath.Path
		parts []string
	}{
		// The final name is decomposed into stem and suffix as separate
		// trailing elements, and the root segment is always present. Both
		// are deliberate quirks of the contract.
		"absolute with extension": {
			path:  purepath.NewPosix("/home/adam/nim/code.nim"),
			parts: []string{"/", "home", "adam", "nim", "code", ".nim"},
		},
		"relative with extension": {
			path:  purepath.NewPosix("code/example.nim"),
			parts: []string{"/", "code", "example", ".nim"},
		},
		"no extension": {
			path:  purepath.NewPosix("noext"),
			parts: []string{"/", "noext"},
		},
		"trailing separator": {
			path:  purepath.NewPosix("/home/adam/"),
			parts: []string{"/", "home", "adam"},
		},
		"root": {
			path:  purepath.NewPosix("/"),
			parts: []string{"/"},
		},
		"windows drive": {
			path:  purepath.NewWindows(`C:\Users\adam\file.txt`),
			parts: []string{`\`, "Users", "adam", "file", ".txt"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.parts, tc.path.Parts())
		})
	}
}

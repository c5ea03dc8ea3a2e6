package fsys

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidMode indicates an open-mode string is not recognized.
var ErrInvalidMode = errors.New("invalid open mode")

// File is a byte-stream handle returned by [FileSystem.OpenFile].
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	Name() string
}

// FileSystem provides the filesystem primitives consumed by pathfs.
type FileSystem interface {
	FileExists(name string) bool
	DirExists(name string) bool
	SymlinkExists(name string) bool

	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	Chmod(name string, mode os.FileMode) error

	Rename(oldname, newname string) error
	Remove(name string) error
	RemoveAll(name string) error

	Mkdir(name string, perm os.FileMode) error
	MkdirAll(name string, perm os.FileMode) error

	// Resolve makes the path absolute and expands symlinks per OS rules.
	Resolve(name string) (string, error)

	// Readlink returns the target of a symlink, without following further
	// links. Non-symlinks yield an *os.PathError.
	Readlink(name string) (string, error)

	OpenFile(name string, flag int, perm os.FileMode) (File, error)
}

// ParseOpenMode maps a textual mode string to os.OpenFile flags. Modes are
// "r", "w", "a", "r+" (read-write existing), and "w+" (read-write truncate),
// each with an optional "b" suffix, which is accepted and ignored.
func ParseOpenMode(mode string) (int, error) {
	switch strings.TrimSuffix(mode, "b") {
	case "r":
		return os.O_RDONLY, nil
	case "w":
		return os.O_WRONLY | os.O_CREATE | os.O_TRUNC, nil
	case "a":
		return os.O_WRONLY | os.O_CREATE | os.O_APPEND, nil
	case "r+":
		return os.O_RDWR, nil
	case "w+":
		return os.O_RDWR | os.O_CREATE | os.O_TRUNC, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
}

// OS implements [FileSystem] using the real filesystem.
type OS struct{}

var _ FileSystem = OS{}

// NewOS returns an [OS] filesystem.
func NewOS() OS {
	return OS{}
}

func (OS) FileExists(name string) bool {
	fi, err := os.Stat(name)

	return err == nil && !fi.IsDir()
}

func (OS) DirExists(name string) bool {
	fi, err := os.Stat(name)

	return err == nil && fi.IsDir()
}

func (OS) SymlinkExists(name string) bool {
	fi, err := os.Lstat(name)

	return err == nil && fi.Mode()&os.ModeSymlink != 0
}

func (OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

func (OS) Chmod(name string, mode os.FileMode) error {
	return os.Chmod(name, mode)
}

func (OS) Rename(oldname, newname string) error {
	return os.Rename(oldname, newname)
}

func (OS) Remove(name string) error {
	return os.Remove(name)
}

func (OS) RemoveAll(name string) error {
	return os.RemoveAll(name)
}

func (OS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

func (OS) MkdirAll(name string, perm os.FileMode) error {
	return os.MkdirAll(name, perm)
}

func (OS) Resolve(name string) (string, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		// Nonexistent paths still resolve lexically.
		if os.IsNotExist(err) {
			return abs, nil
		}

		return "", err
	}

	return resolved, nil
}

func (OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

func (OS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return os.OpenFile(name, flag, perm)
}

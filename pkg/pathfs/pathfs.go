package pathfs

import (
	"errors"
	"fmt"
	"os"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/purepath"
	"github.com/macropower/pathlib/pkg/syncs"
)

// ErrTargetExists indicates a rename target is already present.
var ErrTargetExists = errors.New("target already exists")

// PathFS binds purepath values to a filesystem collaborator.
type PathFS struct {
	sys   fsys.FileSystem
	locks *syncs.PathLock
}

// New creates a [PathFS] over the given filesystem.
func New(sys fsys.FileSystem) *PathFS {
	return &PathFS{
		sys:   sys,
		locks: syncs.NewPathLock(),
	}
}

// Sys returns the underlying filesystem collaborator.
func (fs *PathFS) Sys() fsys.FileSystem {
	return fs.sys
}

// Exists reports whether the path names an existing file or directory.
func (fs *PathFS) Exists(p purepath.Path) bool {
	return fs.sys.FileExists(p.String()) || fs.sys.DirExists(p.String())
}

// IsFile reports whether the path names an existing regular file.
func (fs *PathFS) IsFile(p purepath.Path) bool {
	return fs.sys.FileExists(p.String())
}

// IsDir reports whether the path names an existing directory.
func (fs *PathFS) IsDir(p purepath.Path) bool {
	return fs.sys.DirExists(p.String())
}

// IsSymlink reports whether the path names a symlink, without following it.
func (fs *PathFS) IsSymlink(p purepath.Path) bool {
	return fs.sys.SymlinkExists(p.String())
}

// Stat queries size, permissions, and type.
func (fs *PathFS) Stat(p purepath.Path) (os.FileInfo, error) {
	return fs.sys.Stat(p.String())
}

// Chmod updates the permission set.
func (fs *PathFS) Chmod(p purepath.Path, mode os.FileMode) error {
	return fs.sys.Chmod(p.String(), mode)
}

// Rename moves the path to target and returns the moved value. It fails if
// target already exists; use [PathFS.Replace] to overwrite.
func (fs *PathFS) Rename(p purepath.Path, target string) (purepath.Path, error) {
	moved := purepath.NewFlavored(p.Flavor(), target)

	fs.locks.Lock(moved)
	defer fs.locks.Unlock(moved)

	if fs.sys.FileExists(target) || fs.sys.DirExists(target) {
		return purepath.Path{}, fmt.Errorf("%w: %q", ErrTargetExists, target)
	}

	if err := fs.sys.Rename(p.String(), target); err != nil {
		return purepath.Path{}, err
	}

	return moved, nil
}

// Replace moves the path to target, overwriting any existing file, and
// returns the moved value.
func (fs *PathFS) Replace(p purepath.Path, target string) (purepath.Path, error) {
	moved := purepath.NewFlavored(p.Flavor(), target)

	fs.locks.Lock(moved)
	defer fs.locks.Unlock(moved)

	if err := fs.sys.Rename(p.String(), target); err != nil {
		return purepath.Path{}, err
	}

	return moved, nil
}

// Mkdir creates the directory named by the path. The parent must exist.
func (fs *PathFS) Mkdir(p purepath.Path, perm os.FileMode) error {
	return fs.sys.Mkdir(p.String(), perm)
}

// MkdirAll creates the directory and any missing parents.
func (fs *PathFS) MkdirAll(p purepath.Path, perm os.FileMode) error {
	return fs.sys.MkdirAll(p.String(), perm)
}

// RemoveDir removes the file or empty directory named by the path.
func (fs *PathFS) RemoveDir(p purepath.Path) error {
	return fs.sys.Remove(p.String())
}

// RemoveTree removes the path and everything below it.
func (fs *PathFS) RemoveTree(p purepath.Path) error {
	return fs.sys.RemoveAll(p.String())
}

// Resolve expands relative segments and symlinks per OS rules and returns
// the resolved value.
func (fs *PathFS) Resolve(p purepath.Path) (purepath.Path, error) {
	resolved, err := fs.sys.Resolve(p.String())
	if err != nil {
		return purepath.Path{}, err
	}

	return purepath.NewFlavored(p.Flavor(), resolved), nil
}

// Open opens the path with a textual mode string ("r", "w", "a", "r+",
// "w+", optionally suffixed with "b").
func (fs *PathFS) Open(p purepath.Path, mode string) (fsys.File, error) {
	flag, err := fsys.ParseOpenMode(mode)
	if err != nil {
		return nil, err
	}

	return fs.sys.OpenFile(p.String(), flag, 0o644)
}

// Touch creates the file if it does not exist.
func (fs *PathFS) Touch(p purepath.Path) error {
	f, err := fs.sys.OpenFile(p.String(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	return f.Close()
}

// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Licensed under the Apache License, Version 2.0

package pathutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/purepath"
)

var (
	ErrMaxNestingLevelReached = errors.New("maximum nesting level reached")
	ErrResolvePath            = errors.New("internal error: failed to resolve path; check logs for more details")
	ErrResolvedOutsideRoot    = errors.New("path resolved to outside the root")
	ErrResolvedToRoot         = errors.New("path resolved to the root, which is not allowed")
)

// ResolveSymlinkRecursive resolves the symlink path recursively to its
// canonical path on the given filesystem, with a maximum nesting level of
// maxDepth. If path is not a symlink, returns the verbatim copy of path and
// err of nil.
func ResolveSymlinkRecursive(sys fsys.FileSystem, path string, maxDepth int) (string, error) {
	resolved, err := sys.Readlink(path)
	if err != nil {
		// path is not a symbolic link
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return path, nil
		}
		// Other error has occurred
		return "", fmt.Errorf("failed to read link for path '%s': %w", path, err)
	}

	if maxDepth == 0 {
		return "", ErrMaxNestingLevelReached
	}

	// If we resolved to a relative symlink, make sure we use the absolute
	// path for further resolving
	if !strings.HasPrefix(resolved, string(os.PathSeparator)) {
		basePath := filepath.Dir(path)
		resolved = filepath.Join(basePath, resolved)
	}

	return ResolveSymlinkRecursive(sys, resolved, maxDepth-1)
}

// We do not provide the path in the error message, because it will be
// returned to the user and could be used for information gathering.
// Instead, we log the concrete error details.
func resolveFailure(path string, err error) error {
	slog.Error("failed to resolve path", "path", path, "err", err)

	return fmt.Errorf("%w: %w", ErrResolvePath, err)
}

// ResolveWithinRoot resolves fileOrDir and guarantees that the final,
// symlink-free path stays within the boundaries of root.
//
// currentPath is the directory we are operating in. If fileOrDir is
// relative, it is resolved against currentPath; if it is absolute, it is
// treated as relative to root. Symlinks in fileOrDir are resolved
// recursively, and the boundary decision is made on the final resolved
// path. Resolving exactly to root is rejected unless allowRoot is set.
// Symlink data comes from sys, so mock filesystems stay in control of
// resolution in tests.
func ResolveWithinRoot(sys fsys.FileSystem, currentPath, root, fileOrDir string, allowRoot bool) (purepath.Path, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return purepath.Path{}, resolveFailure(root, err)
	}

	path := fileOrDir
	if !filepath.IsAbs(path) {
		absWorkDir, err := filepath.Abs(currentPath)
		if err != nil {
			return purepath.Path{}, resolveFailure(currentPath, err)
		}

		path = filepath.Join(absWorkDir, path)
	} else {
		path = filepath.Join(absRoot, path)
	}

	// Ensure any symbolic link is resolved before we evaluate the path
	delinkedPath, err := ResolveSymlinkRecursive(sys, path, 10)
	if err != nil {
		return purepath.Path{}, resolveFailure(path, err)
	}

	path, err = filepath.Abs(delinkedPath)
	if err != nil {
		return purepath.Path{}, resolveFailure(delinkedPath, err)
	}

	// Ensure our root path has a trailing separator, otherwise the
	// following check would pass for /foo2 when root is /foo
	requiredRoot := absRoot
	if !strings.HasSuffix(requiredRoot, string(os.PathSeparator)) {
		requiredRoot += string(os.PathSeparator)
	}

	if path+string(os.PathSeparator) == requiredRoot {
		if !allowRoot {
			return purepath.Path{}, fmt.Errorf("%w: %s", ErrResolvedToRoot, path)
		}

		return purepath.New(path), nil
	}

	if !strings.HasPrefix(path, requiredRoot) {
		return purepath.Path{}, fmt.Errorf("%w: %s", ErrResolvedOutsideRoot, fileOrDir)
	}

	return purepath.New(path), nil
}

package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/purepath"
)

var (
	ErrNoMatch      = errors.New("no match found")
	ErrOutsideRoot  = errors.New("path is outside the root")
	ErrAbsolutePath = errors.New("could not make path absolute")
)

// FindUp searches bottom-up from path toward root, returning the innermost
// directory that contains an entry named name. It is the programmatic
// equivalent of tools like git that locate their configuration by walking up
// from the working directory.
func FindUp(sys fsys.FileSystem, root, path purepath.Path, name string) (purepath.Path, error) {
	f, err := findClosest(root.String(), path.String(), func(s string) (bool, error) {
		checkPath := filepath.Join(s, name)
		_, err := sys.Lstat(checkPath)
		if err != nil {
			return false, fmt.Errorf("%s: %w", checkPath, err)
		}

		return true, nil
	})
	if err != nil {
		return purepath.Path{}, fmt.Errorf("%s: %w", name, err)
	}

	return purepath.New(f), nil
}

// FindDown searches top-down from root toward path, returning the outermost
// directory on that chain that contains an entry named name.
func FindDown(sys fsys.FileSystem, root, path purepath.Path, name string) (purepath.Path, error) {
	f, err := findTop(root.String(), path.String(), func(s string) (bool, error) {
		checkPath := filepath.Join(s, name)
		_, err := sys.Lstat(checkPath)
		if err != nil {
			return false, fmt.Errorf("%s: %w", checkPath, err)
		}

		return true, nil
	})
	if err != nil {
		return purepath.Path{}, fmt.Errorf("%s: %w", name, err)
	}

	return purepath.New(f), nil
}

func findTop(root, path string, test func(string) (bool, error)) (string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAbsolutePath, err)
	}

	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAbsolutePath, err)
	}

	if !strings.HasPrefix(pathAbs, rootAbs) {
		return "", ErrOutsideRoot
	}

	if match, err := test(rootAbs); err == nil && match {
		return rootAbs, nil
	}

	pathRel, err := filepath.Rel(rootAbs, pathAbs)
	if err != nil {
		return "", fmt.Errorf("get relative path: %w", err)
	}

	currentDir := rootAbs
	for part := range strings.SplitSeq(pathRel, "/") {
		currentDir = filepath.Join(currentDir, part)
		match, err := test(currentDir)
		if err == nil && match {
			return currentDir, nil
		}
	}

	return "", ErrNoMatch
}

// findClosest walks from path upward toward root, returning the first
// directory where test returns true. It is the bottom-up counterpart of
// [findTop].
func findClosest(root, path string, test func(string) (bool, error)) (string, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAbsolutePath, err)
	}

	pathAbs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAbsolutePath, err)
	}

	if !strings.HasPrefix(pathAbs, rootAbs) {
		return "", ErrOutsideRoot
	}

	currentDir := pathAbs
	for {
		match, err := test(currentDir)
		if err == nil && match {
			return currentDir, nil
		}

		if currentDir == rootAbs {
			break
		}

		currentDir = filepath.Dir(currentDir)
	}

	return "", ErrNoMatch
}

package pathfs_test

import (
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/purepath"
)

func newTestFS(t *testing.T) (*fsys.Mock, *pathfs.PathFS) {
	t.Helper()

	m := fsys.NewMock()

	return m, pathfs.New(m)
}

func TestExistence(t *testing.T) {
	t.Parallel()

	m, fs := newTestFS(t)
	m.AddFile("/data/f.txt", []byte("x"))
	m.AddSymlink("/data/link", "/data/f.txt")

	assert.True(t, fs.Exists(purepath.NewPosix("/data/f.txt")))
	assert.True(t, fs.Exists(purepath.NewPosix("/data")))
	assert.False(t, fs.Exists(purepath.NewPosix("/missing")))

	assert.True(t, fs.IsFile(purepath.NewPosix("/data/f.txt")))
	assert.False(t, fs.IsFile(purepath.NewPosix("/data")))
	assert.True(t, fs.IsDir(purepath.NewPosix("/data")))
	assert.True(t, fs.IsSymlink(purepath.NewPosix("/data/link")))
	assert.False(t, fs.IsSymlink(purepath.NewPosix("/data/f.txt")))
}

func TestStat(t *testing.T) {
	t.Parallel()

	m, fs := newTestFS(t)
	m.AddFile("/data/f.txt", []byte("hello"))

	fi, err := fs.Stat(purepath.NewPosix("/data/f.txt"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, fi.Size())

	// Filesystem errors surface unmodified.
	_, err = fs.Stat(purepath.NewPosix("/missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRename(t *testing.T) {
	t.Parallel()

	m, fs := newTestFS(t)
	m.AddFile("/data/old.txt", []byte("x"))

	p := purepath.NewPosix("/data/old.txt")

	moved, err := fs.Rename(p, "/data/new.txt")
	require.NoError(t, err)

	assert.Equal(t, "/data/new.txt", moved.String())
	assert.Equal(t, "/data/old.txt", p.String(), "the original value is unchanged")
	assert.False(t, fs.Exists(p))
	assert.True(t, fs.IsFile(moved))
}

func TestRenameTargetExists(t *testing.T) {
	t.Parallel()

	m, fs := newTestFS(t)
	m.AddFile("/data/a.txt", []byte("a"))
	m.AddFile("/data/b.txt", []byte("b"))

	_, err := fs.Rename(purepath.NewPosix("/data/a.txt"), "/data/b.txt")
	require.ErrorIs(t, err, pathfs.ErrTargetExists)

	moved, err := fs.Replace(purepath.NewPosix("/data/a.txt"), "/data/b.txt")
	require.NoError(t, err)

	f, err := fs.Open(moved, "r")
	require.NoError(t, err)

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.Equal(t, "a", string(data), "replace overwrites the target")
}

func TestMkdirRemove(t *testing.T) {
	t.Parallel()

	_, fs := newTestFS(t)

	err := fs.Mkdir(purepath.NewPosix("/a/b"), 0o755)
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, fs.MkdirAll(purepath.NewPosix("/a/b/c"), 0o755))
	assert.True(t, fs.IsDir(purepath.NewPosix("/a/b/c")))

	require.NoError(t, fs.RemoveDir(purepath.NewPosix("/a/b/c")))
	assert.False(t, fs.Exists(purepath.NewPosix("/a/b/c")))

	require.NoError(t, fs.RemoveTree(purepath.NewPosix("/a")))
	assert.False(t, fs.Exists(purepath.NewPosix("/a")))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	m, fs := newTestFS(t)
	m.AddFile("/real/f.txt", []byte("x"))
	m.AddSymlink("/alias", "/real/f.txt")

	p := purepath.NewPosix("/alias")

	resolved, err := fs.Resolve(p)
	require.NoError(t, err)

	assert.Equal(t, "/real/f.txt", resolved.String())
	assert.Equal(t, "/alias", p.String(), "the original value is unchanged")
}

func TestOpenInvalidMode(t *testing.T) {
	t.Parallel()

	_, fs := newTestFS(t)

	_, err := fs.Open(purepath.NewPosix("/f.txt"), "nope")
	require.ErrorIs(t, err, fsys.ErrInvalidMode)
}

func TestTouch(t *testing.T) {
	t.Parallel()

	_, fs := newTestFS(t)

	p := purepath.NewPosix("/new/file.txt")
	require.NoError(t, fs.Touch(p))
	assert.True(t, fs.IsFile(p))
}

func TestConcurrentReplaceSameTarget(t *testing.T) {
	t.Parallel()

	m, fs := newTestFS(t)

	const n = 8

	paths := make([]purepath.Path, n)
	for i := range n {
		name := "/src/" + string(rune('a'+i)) + ".txt"
		m.AddFile(name, []byte("x"))
		paths[i] = purepath.NewPosix(name)
	}

	var wg sync.WaitGroup
	wg.Add(n)

	for i := range n {
		go func() {
			defer wg.Done()

			_, err := fs.Replace(paths[i], "/dst.txt")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.True(t, fs.IsFile(purepath.NewPosix("/dst.txt")))
}

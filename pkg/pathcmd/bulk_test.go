package pathcmd_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathlib/pkg/fsys"
	"github.com/macropower/pathlib/pkg/pathcmd"
	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/pathutil"
)

// eventRecorder collects broadcast events for assertions.
type eventRecorder struct {
	events []any
	mu     sync.Mutex
}

func (r *eventRecorder) record(evt any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

func (r *eventRecorder) count(match func(any) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, evt := range r.events {
		if match(evt) {
			n++
		}
	}

	return n
}

func TestBulkResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte{}, 0o600))
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")))

	b := pathcmd.NewBulk(pathfs.New(fsys.NewOS()))

	rec := &eventRecorder{}
	b.Subscribe(rec.record)

	in1 := filepath.Join(dir, "a.txt")
	in2 := filepath.Join(dir, "b.txt")

	resolved, err := b.Resolve(in1, in2)
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Equal(t, in1, resolved[in1].String())
	assert.Equal(t, in1, resolved[in2].String())

	assert.Equal(t, 1, rec.count(func(evt any) bool {
		total, ok := evt.(pathcmd.EventSetTotal)

		return ok && int(total) == 2
	}))
	assert.Equal(t, 2, rec.count(func(evt any) bool {
		_, ok := evt.(pathcmd.EventResolving)

		return ok
	}))
	assert.Equal(t, 2, rec.count(func(evt any) bool {
		res, ok := evt.(pathcmd.EventResolved)

		return ok && res.Err == nil
	}))
}

func TestBulkResolveWithRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o750))

	b := pathcmd.NewBulk(pathfs.New(fsys.NewOS()), pathcmd.WithRoot(root))

	rec := &eventRecorder{}
	b.Subscribe(rec.record)

	resolved, err := b.Resolve("/sub", "/sub/../..")
	require.ErrorIs(t, err, pathcmd.ErrResolveFailed)
	require.ErrorIs(t, err, pathutil.ErrResolvedOutsideRoot)

	require.Len(t, resolved, 1)
	assert.Equal(t, filepath.Join(root, "sub"), resolved["/sub"].String())

	assert.Equal(t, 1, rec.count(func(evt any) bool {
		res, ok := evt.(pathcmd.EventResolved)

		return ok && res.Err != nil
	}))
}

func TestBulkResolveWithRootUsesInjectedFS(t *testing.T) {
	t.Parallel()

	sys := fsys.NewMock()
	sys.AddFile("/data/real.txt", []byte("x"))
	sys.AddSymlink("/data/link.txt", "/data/real.txt")
	sys.AddSymlink("/data/escape.txt", "/elsewhere/secret.txt")

	b := pathcmd.NewBulk(pathfs.New(sys), pathcmd.WithRoot("/data"))

	resolved, err := b.Resolve("link.txt", "escape.txt")
	require.ErrorIs(t, err, pathcmd.ErrResolveFailed)
	require.ErrorIs(t, err, pathutil.ErrResolvedOutsideRoot)

	require.Len(t, resolved, 1)
	assert.Equal(t, "/data/real.txt", resolved["link.txt"].String(),
		"symlink data must come from the injected filesystem")
}

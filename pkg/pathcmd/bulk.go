package pathcmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"

	"github.com/macropower/pathlib/pkg/pathfs"
	"github.com/macropower/pathlib/pkg/pathutil"
	"github.com/macropower/pathlib/pkg/purepath"
)

var (
	ErrResolveWorkerFailed = errors.New("resolve worker failed")
	ErrResolveFailed       = errors.New("path resolution failed")
)

// Bulk resolves many paths concurrently against a single [pathfs.PathFS].
type Bulk struct {
	fs      *pathfs.PathFS
	root    string
	subs    []func(any)
	Timeout time.Duration
	mu      sync.Mutex
}

func NewBulk(fs *pathfs.PathFS, opts ...BulkOpts) *Bulk {
	b := &Bulk{
		fs:      fs,
		Timeout: 5 * time.Minute,
		subs:    []func(any){},
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

type BulkOpts func(*Bulk)

// WithRoot constrains resolution to root. Relative paths are resolved
// against root, absolute paths are re-anchored at it, and paths that
// resolve outside it are reported as errors rather than returned.
func WithRoot(root string) BulkOpts {
	return func(b *Bulk) {
		b.root = root
	}
}

func WithTimeout(timeout time.Duration) BulkOpts {
	return func(b *Bulk) {
		b.Timeout = timeout
	}
}

func (b *Bulk) broadcastEvent(evt any) {
	for _, sub := range b.subs {
		sub(evt)
	}
}

func (b *Bulk) Subscribe(f func(any)) {
	b.subs = append(b.subs, f)
}

func (b *Bulk) resolveOne(path string) (purepath.Path, error) {
	if b.root != "" {
		return pathutil.ResolveWithinRoot(b.fs.Sys(), b.root, b.root, path, true)
	}

	return b.fs.Resolve(purepath.New(path))
}

// Resolve resolves all given paths to their canonical absolute forms,
// returning a map of input to result. Work is fanned out across
// GOMAXPROCS workers; per-path failures are aggregated and returned
// after all workers have finished.
func (b *Bulk) Resolve(paths ...string) (map[string]purepath.Path, error) {
	ctx, cancel := context.WithTimeout(context.Background(), b.Timeout)
	defer cancel()

	logger := slog.With(
		slog.String("cmd", "path_resolve"),
	)

	workerCount := int64(runtime.GOMAXPROCS(0))
	pathCount := len(paths)
	sem := semaphore.NewWeighted(workerCount)
	errChan := make(chan error, pathCount)
	resolved := make(map[string]purepath.Path, pathCount)

	b.broadcastEvent(EventSetTotal(pathCount))

	for _, path := range paths {
		pathLogger := logger.With(
			slog.String("path", path),
		)

		err := sem.Acquire(ctx, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResolveWorkerFailed, err)
		}

		b.broadcastEvent(EventResolving(path))

		go func() {
			defer sem.Release(1)

			pathLogger.Debug("resolving path")

			rp, err := b.resolveOne(path)
			if err != nil {
				b.broadcastEvent(EventResolved{Path: path, Err: err})

				errChan <- fmt.Errorf("%w: %q: %w", ErrResolveFailed, path, err)

				return
			}

			b.mu.Lock()
			resolved[path] = rp
			b.mu.Unlock()

			b.broadcastEvent(EventResolved{Path: path, Resolved: rp.String()})

			pathLogger.Debug("resolved path", slog.String("resolved", rp.String()))
		}()
	}

	err := sem.Acquire(ctx, workerCount)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolveWorkerFailed, err)
	}

	close(errChan)

	var merr error
	for err := range errChan {
		merr = multierror.Append(merr, err)
	}
	if merr != nil {
		return resolved, merr
	}

	logger.Debug("resolve complete")

	return resolved, nil
}

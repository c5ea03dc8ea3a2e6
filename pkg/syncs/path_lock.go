package syncs

import (
	"sync"

	"github.com/macropower/pathlib/pkg/purepath"
)

// PathLock serializes destructive operations on the same path while letting
// unrelated paths proceed concurrently. Two paths contend exactly when their
// raw strings are equal, regardless of how they were constructed. The zero
// value is ready to use.
type PathLock struct {
	mutexes map[string]*sync.Mutex
	mu      sync.RWMutex
}

// NewPathLock creates a new [PathLock].
func NewPathLock() *PathLock {
	return &PathLock{
		mutexes: make(map[string]*sync.Mutex),
	}
}

func (pl *PathLock) mutexFor(p purepath.Path) *sync.Mutex {
	key := p.String()

	pl.mu.RLock()
	m, ok := pl.mutexes[key]
	pl.mu.RUnlock()

	if ok {
		return m
	}

	pl.mu.Lock()
	defer pl.mu.Unlock()

	if pl.mutexes == nil {
		pl.mutexes = make(map[string]*sync.Mutex)
	}

	if m, ok := pl.mutexes[key]; ok {
		return m
	}

	m = &sync.Mutex{}
	pl.mutexes[key] = m

	return m
}

// Lock acquires the mutex for the path, blocking while another caller holds it.
func (pl *PathLock) Lock(p purepath.Path) {
	pl.mutexFor(p).Lock()
}

// Unlock releases the mutex for the path.
func (pl *PathLock) Unlock(p purepath.Path) {
	pl.mutexFor(p).Unlock()
}

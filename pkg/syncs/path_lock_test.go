package syncs_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/pathlib/pkg/purepath"
	"github.com/macropower/pathlib/pkg/syncs"
)

func TestPathLock_SerializesSamePath(t *testing.T) {
	t.Parallel()

	pl := syncs.NewPathLock()
	out := purepath.New("/tmp/out.txt")

	counter := 0

	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)

	for range n {
		go func() {
			defer wg.Done()

			pl.Lock(out)
			defer pl.Unlock(out)

			counter++
		}()
	}

	wg.Wait()

	assert.Equal(t, n, counter)
}

func TestPathLock_ContentionIsByRawString(t *testing.T) {
	t.Parallel()

	pl := syncs.NewPathLock()

	// Different constructors, same raw string: must contend.
	paths := []purepath.Path{
		purepath.New("/srv/data/report.pdf"),
		purepath.NewPosix("/srv/data/report.pdf"),
	}

	counter := 0

	const n = 50

	var wg sync.WaitGroup
	wg.Add(n * len(paths))

	for _, p := range paths {
		for range n {
			go func() {
				defer wg.Done()

				pl.Lock(p)
				defer pl.Unlock(p)

				counter++
			}()
		}
	}

	wg.Wait()

	assert.Equal(t, n*len(paths), counter)
}

func TestPathLock_IndependentPaths(t *testing.T) {
	t.Parallel()

	pl := syncs.NewPathLock()

	pl.Lock(purepath.New("/a"))

	// A different path must not block.
	done := make(chan struct{})
	go func() {
		pl.Lock(purepath.New("/b"))
		close(done)
	}()

	<-done

	pl.Unlock(purepath.New("/a"))
	pl.Unlock(purepath.New("/b"))
}

func TestPathLock_ZeroValue(t *testing.T) {
	t.Parallel()

	var pl syncs.PathLock

	p := purepath.New("x/y")
	pl.Lock(p)
	pl.Unlock(p)
}

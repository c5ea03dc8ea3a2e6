package pathtui_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/require"

	"github.com/macropower/pathlib/pkg/pathcmd"
	"github.com/macropower/pathlib/pkg/pathtui"
)

func TestResolveModel_OneSuccess(t *testing.T) {
	t.Parallel()

	m := pathtui.NewResolveModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)

	time.Sleep(100 * time.Millisecond)

	tm.Send(pathcmd.EventSetTotal(1))
	tm.Send(pathcmd.EventResolving("link.txt"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("link.txt")) &&
				bytes.Contains(bts, []byte("0/1"))
		},
	)

	tm.Send(pathcmd.EventResolved{Path: "link.txt", Resolved: "/srv/target.txt"})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✓ link.txt -> /srv/target.txt"))
		},
	)

	tm.Send(pathcmd.EventDone{})

	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(10*time.Second)))
	require.NoError(t, err)
	require.Contains(t, string(out), "Done! Resolved 1 paths.")
}

func TestResolveModel_OneError(t *testing.T) {
	t.Parallel()

	m := pathtui.NewResolveModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)

	time.Sleep(100 * time.Millisecond)

	tm.Send(pathcmd.EventSetTotal(1))
	tm.Send(pathcmd.EventResolving("bad"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("bad")) &&
				bytes.Contains(bts, []byte("0/1"))
		},
	)

	tm.Send(pathcmd.EventResolved{Path: "bad", Err: errors.New("test error")})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✗ bad"))
		},
	)

	tm.Send(pathcmd.EventDone{Err: errors.New("test error")})

	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(10*time.Second)))
	require.NoError(t, err)
	require.Contains(t, string(out), "test error")
}

func TestResolveModel_MultipleSuccess(t *testing.T) {
	t.Parallel()

	m := pathtui.NewResolveModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)

	time.Sleep(100 * time.Millisecond)

	tm.Send(pathcmd.EventSetTotal(2))

	tm.Send(pathcmd.EventResolving("a"))
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("a")) &&
				bytes.Contains(bts, []byte("0/2"))
		},
	)

	tm.Send(pathcmd.EventResolving("b"))
	tm.Send(pathcmd.EventResolved{Path: "a", Resolved: "/a"})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✓ a -> /a"))
		},
	)

	tm.Send(pathcmd.EventResolved{Path: "b", Resolved: "/b"})
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("✓ b -> /b"))
		},
	)

	tm.Send(pathcmd.EventDone{})

	out, err := io.ReadAll(tm.FinalOutput(t, teatest.WithFinalTimeout(10*time.Second)))
	require.NoError(t, err)
	require.Contains(t, string(out), "Done! Resolved 2 paths.")
}

func TestResolveModel_QuitKey(t *testing.T) {
	t.Parallel()

	m := pathtui.NewResolveModel()
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(300, 100),
	)

	time.Sleep(100 * time.Millisecond)

	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(10*time.Second))
}
